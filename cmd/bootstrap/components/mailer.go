package components

import (
	"log/slog"
	"time"

	"github.com/Varma0099/lill-things/internal/infra/mailer"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewComposer,
		NewBookingNotifier,
	),
)

func NewComposer(cfg config.Config) (*mailer.Composer, error) {
	loc, err := time.LoadLocation(cfg.Jobs.CompletionTimezone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JOBS_COMPLETION_TIMEZONE")
	}
	return mailer.NewComposer(cfg.Mail.OwnerEmail, loc), nil
}

// NewBookingNotifier falls back to logging emails when no SendGrid key is set.
func NewBookingNotifier(cfg config.Config, composer *mailer.Composer) commands.BookingNotifier {
	if cfg.Mail.SendGridAPIKey == "" {
		slog.Warn("SENDGRID_API_KEY is not set, booking emails will only be logged")
		return mailer.NewLogNotifier(composer)
	}
	return mailer.NewSendGridNotifier(cfg.Mail.SendGridAPIKey, cfg.Mail.FromName, cfg.Mail.FromAddress, composer)
}
