package parking

// AssignmentStrategy picks the slot a vehicle is sent to. Returns nil
// when no suitable slot is free.
type AssignmentStrategy interface {
	FindSlot(slots []*Slot, kind string) *Slot
}

// FirstAvailable assigns the lowest-numbered free slot of the matching
// kind.
type FirstAvailable struct{}

func (FirstAvailable) FindSlot(slots []*Slot, kind string) *Slot {
	for _, slot := range slots {
		if !slot.IsOccupied && slot.Kind == kind {
			return slot
		}
	}
	return nil
}
