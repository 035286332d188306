package parking

import (
	"fmt"
	"sort"
	"time"
)

// DefaultFeeRate is charged per started minute of parking.
const DefaultFeeRate = 2.0

type ParkingLot struct {
	capacity int
	slots    []*Slot
	strategy AssignmentStrategy
	tickets  map[string]*Ticket
	feeRate  float64
	now      func() time.Time
}

// NewParkingLot creates a lot of capacity car slots.
func NewParkingLot(capacity int) *ParkingLot {
	layout := make([]string, capacity)
	for i := range layout {
		layout[i] = KindCar
	}
	return NewParkingLotWithLayout(layout)
}

// NewParkingLotWithLayout creates a lot whose slot kinds follow layout
// in order; slot numbers start at 1.
func NewParkingLotWithLayout(layout []string) *ParkingLot {
	slots := make([]*Slot, len(layout))
	for i, kind := range layout {
		slots[i] = NewSlot(i+1, kind)
	}

	return &ParkingLot{
		capacity: len(layout),
		slots:    slots,
		strategy: FirstAvailable{},
		tickets:  make(map[string]*Ticket),
		feeRate:  DefaultFeeRate,
		now:      time.Now,
	}
}

// SetStrategy swaps the slot assignment strategy.
func (pl *ParkingLot) SetStrategy(s AssignmentStrategy) {
	if s != nil {
		pl.strategy = s
	}
}

// Park admits a vehicle of the given kind and issues a ticket. Vehicles
// only take slots of their own kind; an already parked registration is
// rejected.
func (pl *ParkingLot) Park(registrationNumber, color, kind string) (*Ticket, error) {
	if _, parked := pl.tickets[registrationNumber]; parked {
		return nil, fmt.Errorf("%s: %w", registrationNumber, ErrDuplicateRegistration)
	}

	vehicle, err := NewVehicle(kind, registrationNumber, color)
	if err != nil {
		return nil, err
	}

	slot := pl.strategy.FindSlot(pl.slots, kind)
	if slot == nil {
		return nil, ErrLotFull
	}

	slot.Park(vehicle)
	ticket := NewTicket(vehicle, slot.Number, pl.now())
	pl.tickets[registrationNumber] = ticket
	return ticket, nil
}

// Leave frees the slot and returns the fee owed for the stay.
func (pl *ParkingLot) Leave(slotNumber int) (float64, error) {
	if slotNumber < 1 || slotNumber > pl.capacity {
		return 0, ErrInvalidSlot
	}

	slot := pl.slots[slotNumber-1]
	if !slot.IsOccupied {
		return 0, ErrSlotEmpty
	}

	vehicle := slot.Leave()
	ticket := pl.tickets[vehicle.RegistrationNumber]
	delete(pl.tickets, vehicle.RegistrationNumber)

	if ticket == nil {
		return 0, nil
	}
	return ticket.Fee(pl.now(), pl.feeRate), nil
}

// GetStatus returns the occupied slots ordered by slot number.
func (pl *ParkingLot) GetStatus() []*Slot {
	var occupiedSlots []*Slot
	for _, slot := range pl.slots {
		if slot.IsOccupied {
			occupiedSlots = append(occupiedSlots, slot)
		}
	}

	sort.Slice(occupiedSlots, func(i, j int) bool {
		return occupiedSlots[i].Number < occupiedSlots[j].Number
	})

	return occupiedSlots
}

// Capacity returns the total number of slots.
func (pl *ParkingLot) Capacity() int {
	return pl.capacity
}

// Layout returns the slot kinds in slot-number order.
func (pl *ParkingLot) Layout() []string {
	layout := make([]string, len(pl.slots))
	for i, slot := range pl.slots {
		layout[i] = slot.Kind
	}
	return layout
}

func (pl *ParkingLot) GetSlotByRegistrationNumber(registrationNumber string) (int, error) {
	ticket, ok := pl.tickets[registrationNumber]
	if !ok {
		return 0, ErrVehicleNotFound
	}
	return ticket.SlotNumber, nil
}

// TicketFor returns the active ticket for a registration, if any.
func (pl *ParkingLot) TicketFor(registrationNumber string) (*Ticket, bool) {
	ticket, ok := pl.tickets[registrationNumber]
	return ticket, ok
}
