package core

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type (
	// Type distinguishes income from expense transactions.
	Type string

	// Date is a calendar date in YYYY-MM-DD form. It is kept as the raw
	// string so that malformed values loaded from persistence survive
	// round-trips; windowing simply skips them.
	Date string

	// MonthKey identifies a calendar month in YYYY-MM form.
	MonthKey string

	// Transaction is a single recorded income or expense event.
	// Immutable once created, except for deletion.
	Transaction struct {
		ID          string    `json:"id"`
		Amount      Money     `json:"amount"`
		Type        Type      `json:"type"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
		Date        Date      `json:"date"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// Draft carries user-supplied transaction fields before validation.
	// Amount arrives as the raw input string.
	Draft struct {
		Amount      string
		Type        Type
		Category    string
		Description string
		Date        Date
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidType        = errors.New("invalid transaction type")
)

// IsValidationError reports whether err is one of the draft validation
// errors. These are the only errors that cross the engine boundary.
func IsValidationError(err error) bool {
	for _, target := range []error{ErrInvalidAmount, ErrEmptyDescription, ErrDescriptionTooLong, ErrInvalidDate, ErrInvalidType} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (t Type) Validate() error {
	switch t {
	case TypeIncome, TypeExpense:
		return nil
	}
	return ErrInvalidType
}

func (d Date) Validate() error {
	if _, err := time.Parse(time.DateOnly, string(d)); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// MonthKey returns the YYYY-MM prefix of the date. ok is false for
// missing or malformed dates, which are excluded from all windowing.
func (d Date) MonthKey() (MonthKey, bool) {
	if len(d) < 7 {
		return "", false
	}
	key := MonthKey(d[:7])
	if key.Validate() != nil {
		return "", false
	}
	return key, true
}

// Today returns the current calendar date.
func Today() Date {
	return Date(time.Now().Format(time.DateOnly))
}

// MonthKeyOf returns the month key for the calendar month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

func (k MonthKey) Validate() error {
	if _, err := time.Parse("2006-01", string(k)); err != nil {
		return errors.New("invalid month key")
	}
	return nil
}

// Time returns midnight UTC on the first day of the month.
func (k MonthKey) Time() (time.Time, error) {
	return time.Parse("2006-01", string(k))
}

// Label formats the month for display, e.g. "Jun 2024". Malformed keys
// fall back to the raw string.
func (k MonthKey) Label() string {
	t, err := k.Time()
	if err != nil {
		return string(k)
	}
	return t.Format("Jan 2006")
}

// Parse validates the draft and returns the transaction it describes.
// ID and CreatedAt are left for the store to assign.
func (d Draft) Parse() (Transaction, error) {
	cents, err := ParseAmountToCents(d.Amount)
	if err != nil {
		return Transaction{}, err
	}
	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		return Transaction{}, ErrEmptyDescription
	}
	if len(desc) > 200 {
		return Transaction{}, ErrDescriptionTooLong
	}
	if err := d.Type.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := d.Date.Validate(); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Amount:      Money{Cents: cents},
		Type:        d.Type,
		Category:    strings.TrimSpace(d.Category),
		Description: desc,
		Date:        d.Date,
	}, nil
}
