package model

import "time"

// ContactFormType identifies which public form produced a contact request.
type ContactFormType string

const (
	ContactFormGeneral ContactFormType = "general"
	ContactFormArtist  ContactFormType = "artist"
	ContactFormSponsor ContactFormType = "sponsor"
)

// ContactStatus tracks how far an admin has processed a contact request.
type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactReplied  ContactStatus = "replied"
	ContactArchived ContactStatus = "archived"
)

// Contact is a message submitted through one of the public contact forms.
type Contact struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Subject   string          `json:"subject,omitempty"`
	Message   string          `json:"message"`
	FormType  ContactFormType `json:"formType"`
	Status    ContactStatus   `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
