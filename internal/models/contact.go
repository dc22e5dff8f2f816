package models

import "time"

// ContactMessage is a submitted contact-form entry.
type ContactMessage struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
