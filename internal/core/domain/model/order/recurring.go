package order

import (
	"fmt"
	"time"

	"pos/internal/pkg/errs"
)

// Frequency is the unit of a recurring order's schedule.
type Frequency int

const (
	FrequencyUnknown Frequency = iota
	FrequencyDaily
	FrequencyWeekly
	FrequencyMonthly
	FrequencyQuarterly
	FrequencyYearly
)

// String returns the human-readable name of the frequency.
func (f Frequency) String() string {
	switch f {
	case FrequencyDaily:
		return "Daily"
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyMonthly:
		return "Monthly"
	case FrequencyQuarterly:
		return "Quarterly"
	case FrequencyYearly:
		return "Yearly"
	case FrequencyUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ParseFrequency converts a frequency name back into a value.
func ParseFrequency(name string) (Frequency, error) {
	frequencies := []Frequency{
		FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly,
	}
	for _, f := range frequencies {
		if f.String() == name {
			return f, nil
		}
	}
	return FrequencyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"frequency", fmt.Errorf("%q is not a valid frequency", name))
}

// Validate checks if the Frequency value is valid.
func (f Frequency) Validate() error {
	if f < FrequencyDaily || f > FrequencyYearly {
		return errs.NewValueIsInvalidErrorWithCause("frequency", fmt.Errorf("%d is not a valid frequency", f))
	}
	return nil
}

// Next advances t by interval frequency units: days for daily, weeks for
// weekly, calendar months for monthly, three calendar months per quarter,
// calendar years for yearly.
func (f Frequency) Next(t time.Time, interval int) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, interval)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7*interval)
	case FrequencyMonthly:
		return t.AddDate(0, interval, 0)
	case FrequencyQuarterly:
		return t.AddDate(0, 3*interval, 0)
	case FrequencyYearly:
		return t.AddDate(interval, 0, 0)
	case FrequencyUnknown:
		return t
	}
	return t
}

// RecurringConfig makes an order a live recurring template: while Enabled,
// the scheduler stamps out a fresh instance each time NextOrderDate passes
// and then advances this config on the original order.
//
// MaxOccurrences of 0 means unlimited. EndDate of nil means no end date.
type RecurringConfig struct {
	Enabled           bool
	Frequency         Frequency
	Interval          int
	NextOrderDate     time.Time
	EndDate           *time.Time
	MaxOccurrences    int
	CurrentOccurrence int
	AutoApprove       bool
}

// Validate checks structural consistency of the recurrence settings.
func (c RecurringConfig) Validate() error {
	if err := c.Frequency.Validate(); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"recurring interval", fmt.Errorf("%d is not greater than 0", c.Interval))
	}
	if c.MaxOccurrences < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max occurrences", fmt.Errorf("%d is negative", c.MaxOccurrences))
	}
	return nil
}

// IsDue reports whether the recurrence should generate an instance now.
func (c RecurringConfig) IsDue(now time.Time) bool {
	return c.Enabled && !c.NextOrderDate.After(now)
}

// IsRecurringDue reports whether this order is a live recurring template
// whose next instance is due. Cancelled templates never generate instances.
func (o *Order) IsRecurringDue(now time.Time) bool {
	return o.recurring != nil && o.status != StatusCancelled && o.recurring.IsDue(now)
}

// AdvanceRecurrence advances this order's recurrence configuration after an
// instance was generated. Fails when the order has no recurrence attached.
func (o *Order) AdvanceRecurrence(nextDate time.Time) error {
	if o.recurring == nil {
		return errs.NewValueIsRequiredError("recurring configuration")
	}
	o.recurring.Advance(nextDate)
	return nil
}

// Advance records one generated occurrence: it increments the occurrence
// counter, schedules the next run at nextDate, and disables the recurrence
// when MaxOccurrences is reached or nextDate falls past EndDate.
func (c *RecurringConfig) Advance(nextDate time.Time) {
	c.CurrentOccurrence++
	c.NextOrderDate = nextDate

	if c.MaxOccurrences > 0 && c.CurrentOccurrence >= c.MaxOccurrences {
		c.Enabled = false
	}
	if c.EndDate != nil && nextDate.After(*c.EndDate) {
		c.Enabled = false
	}
}
