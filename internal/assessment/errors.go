package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for malformed items, pools or sample sizes.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientPool is returned when a category holds fewer items than
	// the requested sample size.
	ErrInsufficientPool = errors.New("insufficient pool size")

	// ErrInvalidOption is returned when an answer is not one of the current
	// item's options.
	ErrInvalidOption = errors.New("invalid option")

	// ErrSessionCompleted is returned when answering a session that has no
	// questions left.
	ErrSessionCompleted = errors.New("session completed")

	// ErrNotCompleted is returned when scoring a session that is still in progress.
	ErrNotCompleted = errors.New("session not completed")

	// ErrNotStarted is returned when answering a session drawn from an empty pool.
	ErrNotStarted = errors.New("session not started")
)

// PoolError reports which category could not satisfy a sample request.
type PoolError struct {
	Category string
	Have     int
	Want     int
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("%s: category %q has %d items, %d requested", ErrInsufficientPool, e.Category, e.Have, e.Want)
}

func (e *PoolError) Unwrap() error { return ErrInsufficientPool }

// OptionError reports an answer that the current item does not offer.
type OptionError struct {
	ItemID string
	Answer string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: %q is not an option of item %q", ErrInvalidOption, e.Answer, e.ItemID)
}

func (e *OptionError) Unwrap() error { return ErrInvalidOption }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
