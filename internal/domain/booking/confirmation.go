package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/Varma0099/lill-things/internal/pkg/clock"
)

const (
	codePrefix    = "LT"
	codeSuffixLen = 6
	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codePattern = regexp.MustCompile(`^LT\d{4}[A-Z0-9]{6}$`)

// ConfirmationCode is the public booking reference, e.g. LT2025K7Q2ZD.
type ConfirmationCode string

func (c ConfirmationCode) String() string { return string(c) }

func (c ConfirmationCode) IsValid() bool {
	return codePattern.MatchString(string(c))
}

// ParseConfirmationCode upper-cases and validates a code typed by a customer.
func ParseConfirmationCode(raw string) (ConfirmationCode, error) {
	code := ConfirmationCode(strings.ToUpper(strings.TrimSpace(raw)))
	if !code.IsValid() {
		return "", ErrInvalidConfirmationCode
	}
	return code, nil
}

// CodeGenerator produces candidate codes. Uniqueness is enforced by storage;
// callers retry on collision.
type CodeGenerator interface {
	Generate() (ConfirmationCode, error)
}

type RandomCodeGenerator struct {
	clock clock.Clock
}

func NewRandomCodeGenerator(clk clock.Clock) *RandomCodeGenerator {
	return &RandomCodeGenerator{clock: clk}
}

func (g *RandomCodeGenerator) Generate() (ConfirmationCode, error) {
	var sb strings.Builder
	sb.Grow(len(codePrefix) + 4 + codeSuffixLen)
	sb.WriteString(codePrefix)
	fmt.Fprintf(&sb, "%04d", g.clock.Now().Year())

	limit := big.NewInt(int64(len(codeAlphabet)))
	for range codeSuffixLen {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate confirmation code: %w", err)
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return ConfirmationCode(sb.String()), nil
}
