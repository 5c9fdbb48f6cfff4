package models

import (
	"strings"
	"time"
)

// ContactMessage is written by the contact form and never read back.
type ContactMessage struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   *string   `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (m *ContactMessage) Prepare() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
}
