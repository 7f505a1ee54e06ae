package core

import (
	"encoding/json"
	"errors"
	"strings"
)

// MaxAmount is the largest transaction amount the backend accepts.
const MaxAmount = 1_000_000

type (
	User struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Balance int64  `json:"balance"`
	}

	// Bill is a named balance-holding account owned by a user.
	Bill struct {
		ID      int64   `json:"id"`
		Name    string  `json:"name"`
		Balance float64 `json:"balance"`
		UserID  int64   `json:"user_id"`
	}

	Tag struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		UserID int64  `json:"userId"`
	}

	// Transaction as returned by the backend. Amount is always a
	// non-negative magnitude; direction lives in Type (true = income).
	// Date is in wire format, DD.MM.YYYY.
	Transaction struct {
		ID          int64    `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Type        bool     `json:"type"`
		Amount      float64  `json:"amount"`
		Date        string   `json:"date"`
		UserID      int64    `json:"userId"`
		BillID      int64    `json:"billId"`
		Tags        []TagRef `json:"tags,omitempty"`
	}

	// TagRef is a tag reference as it appears on a transaction. The
	// backend serializes either a bare id or a full tag object depending
	// on the endpoint, so decoding tolerates both.
	TagRef struct {
		ID int64
	}

	// Draft holds the raw field values of the transaction form, exactly
	// as entered. Amount stays a string until validation; Date is in
	// input format, YYYY-MM-DD.
	Draft struct {
		Name        string
		Amount      string
		Description string
		Date        string
	}
)

var (
	ErrEmptyName        = errors.New("name is required")
	ErrMissingAmount    = errors.New("amount is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidAmount    = errors.New("amount must be a number greater than 0")
	ErrAmountTooLarge   = errors.New("amount cannot exceed 1,000,000")
	ErrInvalidDate      = errors.New("invalid date format")
)

func (r *TagRef) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}
	var obj struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	return nil
}

func (r TagRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// TagIDs returns the ids of the transaction's tags.
func (t Transaction) TagIDs() []int64 {
	ids := make([]int64, 0, len(t.Tags))
	for _, ref := range t.Tags {
		ids = append(ids, ref.ID)
	}
	return ids
}

// Validate checks the draft fields in a fixed order and returns the
// first failure. Presence checks come before format checks so the user
// sees missing fields before malformed ones. The date check is
// syntactic only; calendar validity is not enforced.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if d.Amount == "" {
		return ErrMissingAmount
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return err
	}
	if amount > MaxAmount {
		return ErrAmountTooLarge
	}
	if !IsWireDate(InputDateToWire(d.Date)) {
		return ErrInvalidDate
	}
	return nil
}
