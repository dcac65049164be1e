package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridService struct {
	client *sendgrid.Client
}

var _ Service = (*sendgridService)(nil)

// NewSendGridService builds a Service backed by the SendGrid v3 API.
func NewSendGridService(apiKey string) Service {
	return &sendgridService{client: sendgrid.NewSendClient(apiKey)}
}

func (svc *sendgridService) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail("", msg.From)
	to := sgmail.NewEmail("", msg.To)
	m := sgmail.NewSingleEmailPlainText(from, msg.Subject, to, msg.Body)
	if msg.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}

	res, err := svc.client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
