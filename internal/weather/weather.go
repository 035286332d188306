// Package weather demonstrates the observer pattern: displays subscribe
// to a station and receive every temperature update.
package weather

import "fmt"

// Observer receives temperature updates from a Station.
type Observer interface {
	Update(temperature float64)
}

// Station is the subject: it keeps a flat observer list and notifies
// all current subscribers whenever the temperature changes.
type Station struct {
	observers   []Observer
	temperature float64
}

// NewStation returns a station with no subscribers.
func NewStation() *Station {
	return &Station{}
}

// Subscribe registers obs for future updates.
func (s *Station) Subscribe(obs Observer) {
	s.observers = append(s.observers, obs)
}

// Unsubscribe removes obs; unknown observers are ignored.
func (s *Station) Unsubscribe(obs Observer) {
	for i, o := range s.observers {
		if o == obs {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// SetTemperature records temp and notifies every subscriber.
func (s *Station) SetTemperature(temp float64) {
	s.temperature = temp
	for _, obs := range s.observers {
		obs.Update(temp)
	}
}

// Temperature returns the last recorded temperature.
func (s *Station) Temperature() float64 {
	return s.temperature
}

// Display is a named observer that formats updates as console lines.
type Display struct {
	Name string
	Out  func(string)
}

// Update renders the temperature line for this display.
func (d *Display) Update(temperature float64) {
	if d.Out != nil {
		d.Out(fmt.Sprintf("%s: Current temperature is %.1f°C", d.Name, temperature))
	}
}
