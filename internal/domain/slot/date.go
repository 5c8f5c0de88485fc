package slot

import (
	"strings"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("date must be formatted as YYYY-MM-DD")

// ParseDate turns a calendar date into midnight UTC. Full RFC 3339 timestamps
// are accepted as well and truncated to their own calendar day.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return TruncateDate(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
