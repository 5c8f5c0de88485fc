package mailer

import (
	"bytes"
	"html/template"
	"strconv"
	textTemplate "text/template"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
)

const (
	dateLayout     = "Monday, 2 January 2006"
	dateTimeLayout = "2 Jan 2006, 3:04 PM"
)

var ErrUnknownKind = errs.New("unknown notification kind")

// Message is a composed email, independent of the delivery provider.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	PlainText string
	HTML      string
}

type templateData struct {
	Name         string
	Email        string
	Phone        string
	Participants int
	Activity     string
	Date         string
	TimeSlot     string
	Code         string
	BookedAt     string
}

var customerHTML = template.Must(template.New("customer").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #fdf2f8; padding: 30px; border-radius: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #ec4899; font-size: 28px; margin-bottom: 10px;">Booking Confirmed!</h1>
    <p style="color: #6b7280; font-size: 16px;">Your creative journey awaits at Little Things</p>
  </div>
  <div style="background: rgba(255,255,255,0.7); padding: 25px; border-radius: 15px; margin: 20px 0;">
    <h2 style="color: #1f2937; margin-bottom: 20px;">Booking Details</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Activity:</strong> {{.Activity}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.TimeSlot}}</p>
    <p><strong>Participants:</strong> {{.Participants}}</p>
    <p><strong>Confirmation:</strong> <code style="background: #f3f4f6; padding: 2px 6px; border-radius: 4px;">{{.Code}}</code></p>
  </div>
  <div style="text-align: center; margin-top: 30px;">
    <p style="color: #6b7280;">We can't wait to see you create something amazing!</p>
  </div>
</div>`))

var ownerHTML = template.Must(template.New("owner").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #dc2626;">New Booking Alert!</h2>
  <div style="background: #f9fafb; padding: 20px; border-radius: 10px; margin: 20px 0;">
    <h3>Customer Details:</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Participants:</strong> {{.Participants}}</p>
    <h3>Booking Details:</h3>
    <p><strong>Activity:</strong> {{.Activity}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.TimeSlot}}</p>
    <p><strong>Confirmation Code:</strong> {{.Code}}</p>
    <p><strong>Booked At:</strong> {{.BookedAt}}</p>
  </div>
</div>`))

var plainText = textTemplate.Must(textTemplate.New("plain").Parse(`Activity: {{.Activity}}
Date: {{.Date}}
Time: {{.TimeSlot}}
Name: {{.Name}}
Participants: {{.Participants}}
Confirmation code: {{.Code}}
`))

// Composer renders booking emails. Times are shown in the studio's zone.
type Composer struct {
	ownerEmail string
	location   *time.Location
}

func NewComposer(ownerEmail string, loc *time.Location) *Composer {
	if loc == nil {
		loc = time.UTC
	}
	return &Composer{ownerEmail: ownerEmail, location: loc}
}

func (c *Composer) Compose(kind booking.NotificationKind, b *booking.Booking) (Message, error) {
	customer := b.Customer()
	data := templateData{
		Name:         customer.Name(),
		Email:        customer.Email(),
		Phone:        customer.Phone(),
		Participants: customer.Participants(),
		Activity:     b.ActivityName(),
		Date:         b.BookingDate().Format(dateLayout),
		TimeSlot:     b.TimeSlot().String(),
		Code:         b.Code().String(),
		BookedAt:     b.CreatedAt().In(c.location).Format(dateTimeLayout),
	}

	var msg Message
	var html *template.Template
	switch kind {
	case booking.NotificationCustomerConfirmation:
		msg = Message{
			ToName:    customer.Name(),
			ToAddress: customer.Email(),
			Subject:   "🎨 Booking Confirmed - " + b.ActivityName() + " at Little Things",
		}
		html = customerHTML
	case booking.NotificationOwner:
		msg = Message{
			ToName:    "Little Things",
			ToAddress: c.ownerEmail,
			Subject:   "📅 New Booking: " + b.ActivityName() + " - " + customer.Name(),
		}
		html = ownerHTML
	default:
		return Message{}, errs.Wrap(ErrUnknownKind, strconv.Quote(string(kind)))
	}

	var buf bytes.Buffer
	if err := html.Execute(&buf, data); err != nil {
		return Message{}, errs.Wrap(err, "failed to render email")
	}
	msg.HTML = buf.String()

	buf.Reset()
	if err := plainText.Execute(&buf, data); err != nil {
		return Message{}, errs.Wrap(err, "failed to render email")
	}
	msg.PlainText = buf.String()
	return msg, nil
}
