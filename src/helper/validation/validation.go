package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"socialgraph/src/domain"
)

// DateLayout é o formato de data aceito na entrada: dd/MM/yyyy.
const DateLayout = "02/01/2006"

var (
	validate    = validator.New()
	datePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// ValidateEmail checks the address shape.
func ValidateEmail(raw string) error {
	if err := validate.Var(strings.TrimSpace(raw), "required,email"); err != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}

// ValidateDate parses a dd/MM/yyyy date. A malformed string fails with
// ErrBadDateFormat, a well formed but impossible one (31/02) with ErrDateDoesNotExist.
func ValidateDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if !datePattern.MatchString(raw) {
		return time.Time{}, domain.ErrBadDateFormat
	}

	date, err := time.Parse("2/1/2006", raw)
	if err != nil {
		return time.Time{}, domain.ErrDateDoesNotExist
	}
	return date, nil
}
