package parking

import "github.com/Shubham8223/LLD-patterns/pkg/create"

// Vehicle kinds; each kind only parks in slots of the same kind.
const (
	KindCar   = "car"
	KindBike  = "bike"
	KindTruck = "truck"
)

type Vehicle struct {
	RegistrationNumber string
	Color              string
	Kind               string
}

// kinds maps a kind tag to a blank vehicle of that kind.
var kinds = func() *create.Factory[*Vehicle] {
	f := create.NewFactory[*Vehicle]()
	f.Register(KindCar, func() *Vehicle { return &Vehicle{Kind: KindCar} })
	f.Register(KindBike, func() *Vehicle { return &Vehicle{Kind: KindBike} })
	f.Register(KindTruck, func() *Vehicle { return &Vehicle{Kind: KindTruck} })
	return f
}()

// NewVehicle constructs a vehicle of the given kind. Unknown kinds fail
// with create.ErrUnknownVariant.
func NewVehicle(kind, registrationNumber, color string) (*Vehicle, error) {
	v, err := kinds.Create(kind)
	if err != nil {
		return nil, err
	}
	v.RegistrationNumber = registrationNumber
	v.Color = color
	return v, nil
}

// VehicleKinds returns the accepted kind tags in sorted order.
func VehicleKinds() []string {
	return kinds.Variants()
}
