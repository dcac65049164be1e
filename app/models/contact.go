package models

// ContactMessage is the payload of the public contact form. Name, email,
// subject and message are mandatory; the rest is free context.
type ContactMessage struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	StudentClass string `json:"studentClass"`
	Subject      string `json:"subject" validate:"required"`
	Message      string `json:"message" validate:"required"`
}
