// Package toolerr defines the closed set of errors a scan can fail with.
package toolerr

import (
	"errors"
	"fmt"

	"github.com/gridscout/scanner/pkg/core"
)

// Kind classifies a scan failure so callers can branch on it.
type Kind int

const (
	KindUnclassified Kind = iota
	KindInvalidShapeParameter
	KindEmptyCandidateSet
	KindInsufficientResource
	KindDisclosureExhausted
)

func (k Kind) String() string {
	switch k {
	case KindInvalidShapeParameter:
		return "InvalidShapeParameter"
	case KindEmptyCandidateSet:
		return "EmptyCandidateSet"
	case KindInsufficientResource:
		return "InsufficientResource"
	case KindDisclosureExhausted:
		return "DisclosureExhausted"
	default:
		return "Unclassified"
	}
}

var (
	// ErrInvalidShapeParameter is returned before any external call when a
	// shape's extent breaks its validity rule.
	ErrInvalidShapeParameter = errors.New("invalid shape parameter")
	// ErrEmptyCandidateSet is returned when no covered cell lies inside the world.
	ErrEmptyCandidateSet = errors.New("empty candidate set")
	// ErrInsufficientResource is returned when the agent cannot pay for disclosure.
	ErrInsufficientResource = errors.New("insufficient resource")
	// ErrDisclosureExhausted is returned when the map service's disclosure ceiling is reached.
	ErrDisclosureExhausted = errors.New("disclosure exhausted")
)

// Unclassified carries any other failure through with a readable description.
type Unclassified struct {
	Description string
	Err         error
}

func (e *Unclassified) Error() string {
	return e.Description
}

func (e *Unclassified) Unwrap() error {
	return e.Err
}

// Unclassifiedf builds an Unclassified error from a format string.
func Unclassifiedf(format string, args ...any) error {
	return &Unclassified{Description: fmt.Sprintf(format, args...)}
}

// Classify maps a map service failure to a tool-level error. The underlying
// error stays in the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, core.ErrNotEnoughEnergy):
		return fmt.Errorf("%w: %w", ErrInsufficientResource, err)
	case errors.Is(err, core.ErrNoMoreDiscovery):
		return fmt.Errorf("%w: %w", ErrDisclosureExhausted, err)
	case KindOf(err) != KindUnclassified:
		return err
	default:
		var u *Unclassified
		if errors.As(err, &u) {
			return err
		}
		return &Unclassified{Description: err.Error(), Err: err}
	}
}

// KindOf returns the kind of err. Unknown errors are Unclassified.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidShapeParameter):
		return KindInvalidShapeParameter
	case errors.Is(err, ErrEmptyCandidateSet):
		return KindEmptyCandidateSet
	case errors.Is(err, ErrInsufficientResource):
		return KindInsufficientResource
	case errors.Is(err, ErrDisclosureExhausted):
		return KindDisclosureExhausted
	default:
		return KindUnclassified
	}
}
