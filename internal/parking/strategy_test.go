package parking

import "testing"

func TestFirstAvailableMatchesKind(t *testing.T) {
	slots := []*Slot{
		NewSlot(1, KindBike),
		NewSlot(2, KindCar),
		NewSlot(3, KindCar),
	}

	var strategy FirstAvailable

	slot := strategy.FindSlot(slots, KindCar)
	if slot == nil || slot.Number != 2 {
		t.Fatalf("Expected first free car slot 2, got %v", slot)
	}

	vehicle, err := NewVehicle(KindCar, "KA01HH1234", "White")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	slot.Park(vehicle)

	slot = strategy.FindSlot(slots, KindCar)
	if slot == nil || slot.Number != 3 {
		t.Fatalf("Expected next free car slot 3, got %v", slot)
	}
}

func TestFirstAvailableNoneFree(t *testing.T) {
	slots := []*Slot{NewSlot(1, KindBike)}

	var strategy FirstAvailable
	if slot := strategy.FindSlot(slots, KindTruck); slot != nil {
		t.Errorf("Expected nil for missing kind, got slot %d", slot.Number)
	}
}
