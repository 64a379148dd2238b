package speech

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

const DefaultCommand = "espeak"

// espeak's neutral values: pitch runs 0-99 around 50, rate is words per
// minute around 175. Engine-level pitch/rate are multipliers of those.
const (
	basePitch = 50
	baseRate  = 175
)

// ExecEngine synthesizes speech by running an espeak-compatible command,
// one subprocess per utterance. Completion is observed by waiting on the
// subprocess; a killed utterance never signals Done.
type ExecEngine struct {
	command string

	mu       sync.Mutex
	language string
	pitch    float64
	rate     float64
	cur      *exec.Cmd
	closed   bool

	done chan struct{}
}

func NewExecEngine(command string) *ExecEngine {
	if command == "" {
		command = DefaultCommand
	}
	return &ExecEngine{
		command:  command,
		language: "en-US",
		pitch:    1.0,
		rate:     1.0,
		done:     make(chan struct{}, 1),
	}
}

func (e *ExecEngine) SetLanguage(tag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.language = tag
}

func (e *ExecEngine) SetPitch(pitch float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pitch = pitch
}

func (e *ExecEngine) SetSpeechRate(rate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rate = rate
}

func (e *ExecEngine) Done() <-chan struct{} { return e.done }

func (e *ExecEngine) Speak(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errors.New("speech: engine closed")
	}
	if e.cur != nil {
		// Callers are expected to stop before speaking again; drop the
		// stale utterance rather than overlap two.
		_ = e.cur.Process.Kill()
		e.cur = nil
	}

	cmd := exec.Command(e.command, append(e.argsLocked(), text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start synthesizer: %w", err)
	}
	e.cur = cmd

	go func() {
		_ = cmd.Wait()
		e.mu.Lock()
		finished := e.cur == cmd && !e.closed
		if e.cur == cmd {
			e.cur = nil
		}
		e.mu.Unlock()
		if finished {
			select {
			case e.done <- struct{}{}:
			default:
			}
		}
	}()
	return nil
}

func (e *ExecEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopLocked()
}

func (e *ExecEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.stopLocked()
	e.closed = true
	return err
}

func (e *ExecEngine) stopLocked() error {
	if e.cur == nil {
		return nil
	}
	cmd := e.cur
	e.cur = nil // wait goroutine sees the utterance as interrupted
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop synthesizer: %w", err)
	}
	return nil
}

func (e *ExecEngine) argsLocked() []string {
	voice := strings.ToLower(e.language)
	pitch := int(e.pitch * basePitch)
	if pitch < 0 {
		pitch = 0
	}
	if pitch > 99 {
		pitch = 99
	}
	rate := int(e.rate * baseRate)
	if rate < 80 {
		rate = 80
	}
	return []string{
		"-v", voice,
		"-p", strconv.Itoa(pitch),
		"-s", strconv.Itoa(rate),
	}
}
