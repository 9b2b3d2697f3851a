package mail

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gauthamtours/travels-backend/logger"
)

// Message is one email captured by the sandbox mailbox.
type Message struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	HTML       string    `json:"html"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Sandbox is a disposable in-process mailbox used when no SMTP credentials
// are configured, so local and test runs still produce inspectable mail
// instead of silently no-opping. Created at most once per process.
type Sandbox struct {
	mu       sync.RWMutex
	account  string
	messages map[string]Message
	order    []string
}

func NewSandbox() *Sandbox {
	return &Sandbox{
		account:  fmt.Sprintf("dev-%s@sandbox.gauthamtoursandtravels.com", uuid.NewString()[:8]),
		messages: make(map[string]Message),
	}
}

// Account is the disposable sender address for this process.
func (s *Sandbox) Account() string {
	return s.account
}

// Store captures an email and returns it with its assigned id.
func (s *Sandbox) Store(from, to, subject, html string) Message {
	msg := Message{
		ID:         uuid.NewString(),
		From:       from,
		To:         to,
		Subject:    subject,
		HTML:       html,
		ReceivedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.messages[msg.ID] = msg
	s.order = append(s.order, msg.ID)
	s.mu.Unlock()

	return msg
}

// Message looks up a captured email by id.
func (s *Sandbox) Message(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.messages[id]
	return msg, ok
}

// Messages returns all captured emails in arrival order.
func (s *Sandbox) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.messages[id])
	}
	return out
}

type sandboxTransport struct {
	box  *Sandbox
	from string
}

func (t *sandboxTransport) Send(to, subject, htmlBody string) (string, error) {
	msg := t.box.Store(t.from, to, subject, htmlBody)
	previewURL := "/api/mail-preview/" + msg.ID
	logger.InfoLogger.Infof("Sandboxed email %q captured for %s, preview at %s", subject, to, previewURL)
	return previewURL, nil
}
