package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage = errors.New("message content is empty")
	ErrStreamActive = errors.New("a reply is already streaming for this session")
)

// Session holds one user's conversation. A session allows a single
// in-flight reply at a time: a Send while streaming is a rejected
// no-op rather than a queued turn.
type Session struct {
	mu        sync.Mutex
	messages  []Message
	streaming bool
	partial   strings.Builder
}

func NewSession() *Session {
	return &Session{}
}

func newMessage(role Role, content string) Message {
	return Message{ID: uuid.New(), Role: role, Content: content, CreatedAt: time.Now()}
}

// Send appends the user turn, streams the assistant reply through the
// client and commits it to the history. Deltas are forwarded to
// onDelta as they arrive; onDelta may be nil. When the upstream stream
// fails the canned fallback is committed instead and the error
// returned, so history stays balanced either way.
func (s *Session) Send(ctx context.Context, client CompletionClient, content string, onDelta func(string) error) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.streaming {
		s.mu.Unlock()
		return Message{}, ErrStreamActive
	}
	s.streaming = true
	s.messages = append(s.messages, newMessage(RoleUser, content))

	wire := make([]wireMessage, 0, len(s.messages)+1)
	wire = append(wire, wireMessage{Role: RoleSystem, Content: systemPrompt})
	for _, m := range s.messages {
		wire = append(wire, wireMessage{Role: m.Role, Content: m.Content})
	}
	s.mu.Unlock()

	streamErr := client.StreamCompletion(ctx, wire, func(delta string) error {
		s.mu.Lock()
		s.partial.WriteString(delta)
		s.mu.Unlock()
		if onDelta != nil {
			return onDelta(delta)
		}
		return nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	reply := s.partial.String()
	if streamErr != nil {
		reply = fallbackReply
	}
	msg := newMessage(RoleAssistant, reply)
	s.messages = append(s.messages, msg)
	s.partial.Reset()
	s.streaming = false

	return msg, streamErr
}

// History returns a copy of the committed messages. The in-flight
// partial reply is not part of history until the stream finishes.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Streaming reports whether a reply is currently in flight.
func (s *Session) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

// Clear drops the history. An in-flight reply keeps streaming but its
// commit lands on the emptied history.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}
