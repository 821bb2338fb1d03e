package order

import (
	"fmt"
	"strings"

	"meatmanager/internal/pkg/errs"
)

// Source is the channel an order was taken through.
type Source string

const (
	SourceCall     Source = "call"
	SourceWhatsApp Source = "whatsapp"
	SourceSelf     Source = "self"

	// DefaultSource is used when no source is given for a new order.
	DefaultSource = SourceCall
)

// ParseSource maps user input onto a Source. Blank input yields fallback.
func ParseSource(raw string, fallback Source) (Source, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return fallback, nil
	}

	s := Source(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Source) Validate() error {
	switch s {
	case SourceCall, SourceWhatsApp, SourceSelf:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%q is not one of call, whatsapp, self", string(s)))
	}
}

func (s Source) String() string {
	return string(s)
}
