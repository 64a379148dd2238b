package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"geochat/internal/credentials"
	"geochat/internal/history"
	"geochat/internal/llm"
	"geochat/internal/speech"
)

// promptTemplate wraps every submission. The coordinate-appending
// behavior is a contract with the remote model, not validated locally.
const promptTemplate = `user wrote this "%s". answer that and add that location coordinates in square brackets at the end of answer... Keep the response concise.`

var (
	// ErrBusy rejects a submission while another one is in flight.
	ErrBusy = errors.New("chat: a submission is already in flight")
	// ErrClosed rejects submissions after teardown.
	ErrClosed = errors.New("chat: controller closed")
)

// Notifier surfaces transient, non-conversation notices to the user.
// MissingCredential is expected to offer a way into the settings screen.
type Notifier interface {
	Notify(text string)
	MissingCredential()
}

// InputField is the text entry the user typed into; the controller
// clears it once a submission is accepted.
type InputField interface {
	Clear()
}

// Controller owns the conversation log and orchestrates
// submit -> credential check -> completion request -> append -> speak.
type Controller struct {
	conversation *history.Log
	creds        credentials.Source
	client       llm.Client
	engine       speech.Engine
	notifier     Notifier
	input        InputField

	mu       sync.Mutex
	loading  bool
	speaking bool
	closed   bool

	quit chan struct{}
}

func New(creds credentials.Source, client llm.Client, engine speech.Engine, notifier Notifier, input InputField) *Controller {
	c := &Controller{
		conversation: history.NewLog(),
		creds:        creds,
		client:       client,
		engine:       engine,
		notifier:     notifier,
		input:        input,
		quit:         make(chan struct{}),
	}
	go c.watchSpeech()
	return c
}

// watchSpeech drains the engine's completion signal for the lifetime of
// the controller. Subscribed exactly once so no other consumer races on
// the speaking flag.
func (c *Controller) watchSpeech() {
	for {
		select {
		case <-c.engine.Done():
			c.mu.Lock()
			if !c.closed {
				c.speaking = false
			}
			c.mu.Unlock()
		case <-c.quit:
			return
		}
	}
}

// Submit runs one full user turn. Empty input is a silent no-op. A
// missing credential surfaces a settings notice and leaves the log and
// flags untouched. Every request failure is recovered here: the log gets
// an assistant-authored error entry and the loading flag is always
// cleared, even on panic.
func (c *Controller) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.loading {
		c.mu.Unlock()
		return ErrBusy
	}

	key, err := c.creds.APIKey()
	if err != nil {
		log.Printf("credential lookup failed: %v", err)
		key = ""
	}
	if key == "" {
		c.mu.Unlock()
		c.notifier.MissingCredential()
		return nil
	}

	c.input.Clear()
	c.conversation.AppendUser(text)
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	reply, err := c.client.Generate(ctx, wrapPrompt(text), key)

	c.mu.Lock()
	if c.closed {
		// Screen torn down while the request was in flight; drop the
		// outcome instead of mutating a dead conversation.
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("generation failed: %v", err)
		c.conversation.AppendAssistant(fmt.Sprintf("Error: %v", err))
		c.notifier.Notify(err.Error())
		return nil
	}

	c.conversation.AppendAssistant(reply)
	c.Speak(reply)
	return nil
}

// Speak toggles playback: starting an utterance while one is already
// playing stops it instead, it never queues a second one.
func (c *Controller) Speak(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.speaking {
		c.speaking = false
		c.mu.Unlock()
		if err := c.engine.Stop(); err != nil {
			log.Printf("failed to stop speech: %v", err)
		}
		return
	}
	c.speaking = true
	c.mu.Unlock()

	if err := c.engine.Speak(text); err != nil {
		log.Printf("failed to start speech: %v", err)
		c.mu.Lock()
		c.speaking = false
		c.mu.Unlock()
	}
}

// Close stops any in-flight utterance and releases the engine. Safe to
// call more than once; state updates arriving afterwards are no-ops.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.speaking = false
	c.mu.Unlock()
	close(c.quit)

	err := c.engine.Stop()
	if closeErr := c.engine.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *Controller) Messages() []history.Message {
	return c.conversation.Messages()
}

// LastAssistant returns the most recent model response, if any.
func (c *Controller) LastAssistant() (history.Message, bool) {
	return c.conversation.Last(history.OriginAssistant)
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) Speaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

func wrapPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
