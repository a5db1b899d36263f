package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrAlreadyClaimed      = errors.New("order already claimed")
	ErrForbidden           = errors.New("forbidden")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidOrder        = errors.New("invalid order data")
	ErrStoreUnavailable    = fmt.Errorf("order store %w", ErrUpstreamUnavailable)

	ErrNotFound           = errors.New("not found")
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrAssignmentNotFound = fmt.Errorf("assignment %w", ErrNotFound)
	ErrDriverNotFound     = fmt.Errorf("driver %w", ErrNotFound)
	ErrPromoNotFound      = fmt.Errorf("promo %w", ErrNotFound)
	ErrCallNotFound       = fmt.Errorf("call %w", ErrNotFound)
	ErrMessageNotFound    = fmt.Errorf("message %w", ErrNotFound)
)

// Validationf оборачивает ErrValidation с причиной, понятной пользователю.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(LineItem{})
	gob.Register(Address{})
	gob.Register(Coordinates{})
}
