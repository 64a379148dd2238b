// Package speech abstracts the device text-to-speech service. The
// controller only ever talks to the Engine interface; completion is a
// channel signal rather than a callback so consumers subscribe once and
// drain it on their own goroutine.
package speech

// Engine converts text to audible speech. Speak starts an utterance and
// returns immediately; one value arrives on Done for every utterance
// that finishes on its own (a stopped utterance does not signal).
type Engine interface {
	SetLanguage(tag string)
	SetPitch(pitch float64)
	SetSpeechRate(rate float64)
	Speak(text string) error
	Stop() error
	Done() <-chan struct{}
	Close() error
}
