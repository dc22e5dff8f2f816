package services

import (
	"log"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/example/essencia/internal/models"
)

// ContactService validates and accepts contact-form submissions. Messages
// are kept in memory; delivery is simulated with the same kind of delay as
// checkout processing.
type ContactService struct {
	delay time.Duration
	sleep func(time.Duration)

	mu       sync.Mutex
	messages []models.ContactMessage
}

// NewContactService creates the service with the given submission delay.
func NewContactService(delay time.Duration) *ContactService {
	return &ContactService{delay: delay, sleep: time.Sleep}
}

// NewContactServiceWithSleeper injects the sleep function for tests.
func NewContactServiceWithSleeper(delay time.Duration, sleep func(time.Duration)) *ContactService {
	return &ContactService{delay: delay, sleep: sleep}
}

// Validate checks the required fields and returns per-field error
// messages, empty when the message is valid.
func (s *ContactService) Validate(msg models.ContactMessage) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(msg.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(msg.Email) == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(msg.Email); err != nil {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(msg.Subject) == "" {
		errs["subject"] = "Subject is required"
	}
	if strings.TrimSpace(msg.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// Submit accepts a validated message after the simulated delivery delay.
func (s *ContactService) Submit(msg models.ContactMessage) models.ContactMessage {
	s.sleep(s.delay)

	msg.ReceivedAt = time.Now()
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	count := len(s.messages)
	s.mu.Unlock()

	log.Printf("[Contact] Message %d received from %s: %s", count, msg.Email, msg.Subject)
	return msg
}

// Messages returns the received messages in arrival order.
func (s *ContactService) Messages() []models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
