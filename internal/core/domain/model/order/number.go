package order

import (
	"fmt"
	"time"
)

// FormatOrderNumber renders the tenant-scoped order number for the given
// day and per-day sequence value, e.g. ORD-20260514-0007. Sequences are
// allocated per tenant per day by the repository layer.
func FormatOrderNumber(day time.Time, sequence int) string {
	return fmt.Sprintf("ORD-%s-%04d", day.Format("20060102"), sequence)
}
