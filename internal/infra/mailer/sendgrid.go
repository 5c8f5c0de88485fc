package mailer

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/pkg/errs"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrNoRecipient = errs.New("email recipient is not configured")

type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier delivers booking emails through the SendGrid v3 API.
type SendGridNotifier struct {
	client   sendClient
	from     *mail.Email
	composer *Composer
}

func NewSendGridNotifier(apiKey, fromName, fromAddress string, composer *Composer) *SendGridNotifier {
	return newSendGridNotifier(sendgrid.NewSendClient(apiKey), fromName, fromAddress, composer)
}

func newSendGridNotifier(client sendClient, fromName, fromAddress string, composer *Composer) *SendGridNotifier {
	return &SendGridNotifier{
		client:   client,
		from:     mail.NewEmail(fromName, fromAddress),
		composer: composer,
	}
}

func (n *SendGridNotifier) Send(ctx context.Context, kind booking.NotificationKind, b *booking.Booking) error {
	msg, err := n.composer.Compose(kind, b)
	if err != nil {
		return err
	}
	if msg.ToAddress == "" {
		return errs.Mark(errs.Wrap(ErrNoRecipient, string(kind)), errs.ErrNotificationDeliveryFail)
	}

	email := mail.NewSingleEmail(n.from, msg.Subject, mail.NewEmail(msg.ToName, msg.ToAddress), msg.PlainText, msg.HTML)
	resp, err := n.client.SendWithContext(ctx, email)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "sendgrid request failed"), errs.ErrNotificationDeliveryFail)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(
			errs.New("sendgrid returned status "+strconv.Itoa(resp.StatusCode)+": "+resp.Body),
			errs.ErrNotificationDeliveryFail,
		)
	}

	slog.Info("Email sent",
		slog.String("kind", string(kind)),
		slog.String("confirmation_code", b.Code().String()),
		slog.Int("status", resp.StatusCode))
	return nil
}
