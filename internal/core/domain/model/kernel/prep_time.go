package kernel

import (
	"fmt"
	"time"

	"pos/internal/pkg/errs"
)

const (
	// MinPrepTimeMinutes is the smallest accepted preparation estimate.
	MinPrepTimeMinutes = 1

	// MaxPrepTimeMinutes caps the preparation estimate at one day.
	// Anything longer is a data-entry mistake, not a kitchen plan.
	MaxPrepTimeMinutes = 24 * 60
)

// PrepTime is a value object representing the estimated preparation time of an
// order in whole minutes. It is required when a restaurant accepts an order and
// when it announces a delay.
//
// The zero value of PrepTime is invalid and must be constructed via NewPrepTime.
// PrepTime is immutable and safe for concurrent use.
//
// Example usage:
//
//	prepTime, err := kernel.NewPrepTime(20)
//	if err != nil {
//	    // handle validation error
//	}
//	readyAt := time.Now().Add(prepTime.Duration())
type PrepTime struct {
	minutes int
}

// NewPrepTime creates a PrepTime from a minute count.
// Returns a ValueIsOutOfRangeError when minutes is outside
// [MinPrepTimeMinutes, MaxPrepTimeMinutes].
func NewPrepTime(minutes int) (PrepTime, error) {
	if minutes < MinPrepTimeMinutes || minutes > MaxPrepTimeMinutes {
		return PrepTime{}, errs.NewValueIsOutOfRangeError(
			"estimated_prep_time", minutes, MinPrepTimeMinutes, MaxPrepTimeMinutes)
	}
	return PrepTime{minutes: minutes}, nil
}

// Minutes returns the estimate as a whole minute count.
func (p PrepTime) Minutes() int {
	return p.minutes
}

// Duration returns the estimate as a time.Duration, suitable for computing
// the promised ready time from the current moment.
func (p PrepTime) Duration() time.Duration {
	return time.Duration(p.minutes) * time.Minute
}

// String implements fmt.Stringer, e.g. "20m".
func (p PrepTime) String() string {
	return fmt.Sprintf("%dm", p.minutes)
}

// Validate checks that the PrepTime was built via NewPrepTime.
// The zero value (0 minutes) is below MinPrepTimeMinutes and therefore invalid.
func (p PrepTime) Validate() error {
	if p.minutes < MinPrepTimeMinutes || p.minutes > MaxPrepTimeMinutes {
		return errs.NewValueIsRequiredError("estimated_prep_time")
	}
	return nil
}

// IsEqual compares two preparation estimates by value.
func (p PrepTime) IsEqual(other PrepTime) bool {
	return p.minutes == other.minutes
}
