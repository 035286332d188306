package parking

import (
	"errors"
	"testing"

	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

func TestNewVehicle(t *testing.T) {
	regNumber := "KA01HH1234"
	color := "White"

	vehicle, err := NewVehicle(KindCar, regNumber, color)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if vehicle.RegistrationNumber != regNumber {
		t.Errorf("Expected registration number %s, got %s", regNumber, vehicle.RegistrationNumber)
	}

	if vehicle.Color != color {
		t.Errorf("Expected color %s, got %s", color, vehicle.Color)
	}

	if vehicle.Kind != KindCar {
		t.Errorf("Expected kind %s, got %s", KindCar, vehicle.Kind)
	}
}

func TestNewVehicleUnknownKind(t *testing.T) {
	_, err := NewVehicle("boat", "KA01HH1234", "White")
	if !errors.Is(err, create.ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestVehicleKinds(t *testing.T) {
	kinds := VehicleKinds()
	expected := []string{KindBike, KindCar, KindTruck}

	if len(kinds) != len(expected) {
		t.Fatalf("Expected %d kinds, got %d", len(expected), len(kinds))
	}
	for i, kind := range kinds {
		if kind != expected[i] {
			t.Errorf("Expected kind %s at position %d, got %s", expected[i], i, kind)
		}
	}
}
