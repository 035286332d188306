package parking

import "errors"

// Sentinel errors returned by ParkingLot operations. Branch with
// errors.Is; messages are part of the console contract.
var (
	ErrLotFull               = errors.New("parking lot is full")
	ErrInvalidSlot           = errors.New("invalid slot number")
	ErrSlotEmpty             = errors.New("slot is already empty")
	ErrVehicleNotFound       = errors.New("not found")
	ErrDuplicateRegistration = errors.New("vehicle already parked")
)
