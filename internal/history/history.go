package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// Message is an immutable conversation entry. Once appended it is never
// edited; the log only grows.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Origin    Origin    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(text string, origin Origin) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Origin:    origin,
		Timestamp: time.Now(),
	}
}

// Log is an ordered, append-only sequence of messages for one session.
type Log struct {
	mu       sync.RWMutex
	messages []Message
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *Log) AppendUser(text string) Message {
	msg := NewMessage(text, OriginUser)
	l.Append(msg)
	return msg
}

func (l *Log) AppendAssistant(text string) Message {
	msg := NewMessage(text, OriginAssistant)
	l.Append(msg)
	return msg
}

// Messages returns a copy; callers cannot mutate the log through it.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Last returns the most recent message with the given origin, if any.
func (l *Log) Last(origin Origin) (Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Origin == origin {
			return l.messages[i], true
		}
	}
	return Message{}, false
}
