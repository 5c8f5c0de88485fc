package mailer

import (
	"context"
	"log/slog"

	"github.com/Varma0099/lill-things/internal/domain/booking"
)

// LogNotifier stands in for a real provider when SENDGRID_API_KEY is unset.
// It renders the email and logs it, so development flows still flip the
// emailSent flags.
type LogNotifier struct {
	composer *Composer
}

func NewLogNotifier(composer *Composer) *LogNotifier {
	return &LogNotifier{composer: composer}
}

func (n *LogNotifier) Send(_ context.Context, kind booking.NotificationKind, b *booking.Booking) error {
	msg, err := n.composer.Compose(kind, b)
	if err != nil {
		return err
	}
	slog.Info("Email delivery disabled, logging message instead",
		slog.String("kind", string(kind)),
		slog.String("to", msg.ToAddress),
		slog.String("subject", msg.Subject),
		slog.String("confirmation_code", b.Code().String()))
	return nil
}
