package speech

// NopEngine discards utterances and reports immediate completion. Used
// when no synthesizer command is configured.
type NopEngine struct {
	done chan struct{}
}

func NewNopEngine() *NopEngine {
	return &NopEngine{done: make(chan struct{}, 1)}
}

func (e *NopEngine) SetLanguage(string)    {}
func (e *NopEngine) SetPitch(float64)      {}
func (e *NopEngine) SetSpeechRate(float64) {}
func (e *NopEngine) Done() <-chan struct{} { return e.done }
func (e *NopEngine) Stop() error           { return nil }
func (e *NopEngine) Close() error          { return nil }

func (e *NopEngine) Speak(string) error {
	select {
	case e.done <- struct{}{}:
	default:
	}
	return nil
}
