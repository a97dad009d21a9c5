package checkout

import (
	"sync"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

// Session pairs one user's checkout form with the pipeline driving it.
type Session struct {
	Form     *Form
	Pipeline *Pipeline
}

// Sessions hands out one checkout session per user. A session lives until
// its pipeline reaches SUCCEEDED or the user abandons the checkout; the next
// entry then starts with a fresh, empty form.
type Sessions struct {
	mu     sync.Mutex
	byUser map[string]*Session
	cfg    Config
}

func NewSessions(cfg Config) *Sessions {
	return &Sessions{
		byUser: make(map[string]*Session),
		cfg:    cfg,
	}
}

// Enter returns the user's current session, creating a new one when there
// is none yet or the previous checkout already succeeded.
func (s *Sessions) Enter(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.byUser[userID]; ok {
		if status, _ := sess.Pipeline.Status(); !status.IsTerminal() {
			return sess
		}
	}

	form := NewForm()
	sess := &Session{
		Form:     form,
		Pipeline: NewPipeline(userID, form, s.cfg),
	}
	s.byUser[userID] = sess
	return sess
}

// Current returns the user's session without creating one.
func (s *Sessions) Current(userID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byUser[userID]
	return sess, ok
}

// Abandon discards the user's session and its form contents.
func (s *Sessions) Abandon(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, userID)
}

// Status reports the user's pipeline status, treating "no session" as IDLE.
func (s *Sessions) Status(userID string) (domain.SubmissionStatus, error) {
	sess, ok := s.Current(userID)
	if !ok {
		return domain.SubmissionIdle, nil
	}
	return sess.Pipeline.Status()
}
