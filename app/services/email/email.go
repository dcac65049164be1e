// Package email abstracts outbound mail behind a small interface so the
// contact form can run against SendGrid in production and against the
// console when no provider is configured.
package email

import "context"

// Message is a single plain-text mail.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Service delivers messages.
type Service interface {
	Send(ctx context.Context, msg Message) error
}
