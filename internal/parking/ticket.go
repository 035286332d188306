package parking

import (
	"time"

	"github.com/google/uuid"
)

// Ticket records one parked vehicle from entry until it leaves.
type Ticket struct {
	ID         string
	Vehicle    *Vehicle
	SlotNumber int
	EntryTime  time.Time
}

func NewTicket(vehicle *Vehicle, slotNumber int, entry time.Time) *Ticket {
	return &Ticket{
		ID:         uuid.New().String(),
		Vehicle:    vehicle,
		SlotNumber: slotNumber,
		EntryTime:  entry,
	}
}

// Fee charges ratePerMinute for the time parked up to now, with partial
// minutes rounded up. A vehicle leaving within the first minute pays for
// one minute.
func (t *Ticket) Fee(now time.Time, ratePerMinute float64) float64 {
	minutes := now.Sub(t.EntryTime).Minutes()
	billed := int(minutes)
	if minutes > float64(billed) || billed == 0 {
		billed++
	}
	return float64(billed) * ratePerMinute
}
