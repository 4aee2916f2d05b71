package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Service keeps one in-memory conversation per user. Sessions are
// created lazily on first use and live until the process exits;
// conversations are deliberately not persisted.
type Service struct {
	client CompletionClient

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewService(client CompletionClient) *Service {
	return &Service{client: client, sessions: make(map[uuid.UUID]*Session)}
}

func (s *Service) session(userID uuid.UUID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = NewSession()
		s.sessions[userID] = sess
	}
	return sess
}

func (s *Service) Send(ctx context.Context, userID uuid.UUID, content string, onDelta func(string) error) (Message, error) {
	return s.session(userID).Send(ctx, s.client, content, onDelta)
}

func (s *Service) History(userID uuid.UUID) []Message {
	return s.session(userID).History()
}

func (s *Service) Clear(userID uuid.UUID) {
	s.session(userID).Clear()
}
