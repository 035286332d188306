package parking

import (
	"errors"
	"testing"
	"time"

	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

func TestNewParkingLot(t *testing.T) {
	capacity := 6
	pl := NewParkingLot(capacity)

	if pl.capacity != capacity {
		t.Errorf("Expected capacity %d, got %d", capacity, pl.capacity)
	}

	if len(pl.slots) != capacity {
		t.Errorf("Expected %d slots, got %d", capacity, len(pl.slots))
	}

	for i, slot := range pl.slots {
		if slot.Number != i+1 {
			t.Errorf("Expected slot number %d, got %d", i+1, slot.Number)
		}
		if slot.Kind != KindCar {
			t.Errorf("Expected slot %d to be a car slot, got %s", i+1, slot.Kind)
		}
		if slot.IsOccupied {
			t.Errorf("Expected slot %d to be unoccupied", i+1)
		}
	}
}

func TestParkingLotPark(t *testing.T) {
	pl := NewParkingLot(3)

	ticket, err := pl.Park("KA01HH1234", "White", KindCar)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if ticket.SlotNumber != 1 {
		t.Errorf("Expected slot number 1, got %d", ticket.SlotNumber)
	}
	if ticket.ID == "" {
		t.Error("Expected ticket to carry an ID")
	}

	ticket, err = pl.Park("KA01HH9999", "Black", KindCar)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if ticket.SlotNumber != 2 {
		t.Errorf("Expected slot number 2, got %d", ticket.SlotNumber)
	}

	ticket, err = pl.Park("KA01BB0001", "Red", KindCar)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if ticket.SlotNumber != 3 {
		t.Errorf("Expected slot number 3, got %d", ticket.SlotNumber)
	}

	_, err = pl.Park("KA01HH7777", "Blue", KindCar)
	if !errors.Is(err, ErrLotFull) {
		t.Errorf("Expected ErrLotFull when parking lot is full, got %v", err)
	}
}

func TestParkingLotRejectsUnknownKind(t *testing.T) {
	pl := NewParkingLot(3)

	_, err := pl.Park("KA01HH1234", "White", "hovercraft")
	if !errors.Is(err, create.ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant for unknown kind, got %v", err)
	}
}

func TestParkingLotRejectsDuplicateRegistration(t *testing.T) {
	pl := NewParkingLot(3)

	if _, err := pl.Park("KA01HH1234", "White", KindCar); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	_, err := pl.Park("KA01HH1234", "White", KindCar)
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("Expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestParkingLotLeave(t *testing.T) {
	pl := NewParkingLot(3)
	pl.Park("KA01HH1234", "White", KindCar)
	pl.Park("KA01HH9999", "Black", KindCar)

	_, err := pl.Leave(1)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}

	if pl.slots[0].IsOccupied {
		t.Error("Expected slot 1 to be unoccupied after leaving")
	}

	ticket, err := pl.Park("KA01BB0001", "Red", KindCar)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if ticket.SlotNumber != 1 {
		t.Errorf("Expected to reuse slot 1, got slot %d", ticket.SlotNumber)
	}
}

func TestParkingLotLeaveErrors(t *testing.T) {
	pl := NewParkingLot(2)

	if _, err := pl.Leave(0); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Expected ErrInvalidSlot for slot 0, got %v", err)
	}
	if _, err := pl.Leave(3); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Expected ErrInvalidSlot for slot 3, got %v", err)
	}
	if _, err := pl.Leave(1); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Expected ErrSlotEmpty for empty slot, got %v", err)
	}
}

func TestParkingLotLeaveFee(t *testing.T) {
	pl := NewParkingLot(1)

	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	current := entry
	pl.now = func() time.Time { return current }

	if _, err := pl.Park("KA01HH1234", "White", KindCar); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	current = entry.Add(30 * time.Minute)
	fee, err := pl.Leave(1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if fee != 30*DefaultFeeRate {
		t.Errorf("Expected fee %.2f for 30 minutes, got %.2f", 30*DefaultFeeRate, fee)
	}
}

func TestParkingLotTypedSlots(t *testing.T) {
	pl := NewParkingLotWithLayout([]string{KindCar, KindBike, KindTruck})

	ticket, err := pl.Park("KA01BK0001", "Green", KindBike)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if ticket.SlotNumber != 2 {
		t.Errorf("Expected bike to take slot 2, got %d", ticket.SlotNumber)
	}

	// Only one truck slot; a second truck must be turned away even
	// though car and bike slots are free.
	if _, err := pl.Park("KA01TR0001", "Blue", KindTruck); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if _, err := pl.Park("KA01TR0002", "Blue", KindTruck); !errors.Is(err, ErrLotFull) {
		t.Errorf("Expected ErrLotFull for second truck, got %v", err)
	}
}

func TestParkingLotGetSlotByRegistrationNumber(t *testing.T) {
	pl := NewParkingLot(3)
	pl.Park("KA01HH1234", "White", KindCar)
	pl.Park("KA01HH9999", "Black", KindCar)

	slotNumber, err := pl.GetSlotByRegistrationNumber("KA01HH9999")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if slotNumber != 2 {
		t.Errorf("Expected slot number 2, got %d", slotNumber)
	}

	_, err = pl.GetSlotByRegistrationNumber("NOTFOUND")
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("Expected ErrVehicleNotFound, got %v", err)
	}
}

func TestParkingLotGetStatus(t *testing.T) {
	pl := NewParkingLot(6)
	pl.Park("KA01HH1234", "White", KindCar)
	pl.Park("KA01HH9999", "White", KindCar)
	pl.Park("KA01BB0001", "Black", KindCar)
	pl.Park("KA01HH7777", "Red", KindCar)
	pl.Park("KA01HH2701", "Blue", KindCar)
	pl.Park("KA01HH3141", "Black", KindCar)

	pl.Leave(4)

	status := pl.GetStatus()
	expectedSlots := []int{1, 2, 3, 5, 6}

	if len(status) != len(expectedSlots) {
		t.Errorf("Expected %d occupied slots, got %d", len(expectedSlots), len(status))
	}

	for i, slot := range status {
		if slot.Number != expectedSlots[i] {
			t.Errorf("Expected slot number %d at position %d, got %d", expectedSlots[i], i, slot.Number)
		}
	}
}
