package email

import (
	"context"
	"log"
)

type consoleService struct{}

var _ Service = consoleService{}

// NewConsoleService returns a Service that logs messages instead of
// sending them. Used when no mail provider is configured.
func NewConsoleService() Service {
	return consoleService{}
}

func (consoleService) Send(_ context.Context, msg Message) error {
	log.Printf("mail (console): to=%s reply-to=%s subject=%q\n%s", msg.To, msg.ReplyTo, msg.Subject, msg.Body)
	return nil
}
