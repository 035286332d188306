package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []float64
}

func (r *recorder) Update(temperature float64) {
	r.got = append(r.got, temperature)
}

func TestAllObserversNotified(t *testing.T) {
	station := NewStation()
	a := &recorder{}
	b := &recorder{}
	station.Subscribe(a)
	station.Subscribe(b)

	station.SetTemperature(25.5)
	station.SetTemperature(30.0)

	assert.Equal(t, []float64{25.5, 30.0}, a.got)
	assert.Equal(t, []float64{25.5, 30.0}, b.got)
	assert.InDelta(t, 30.0, station.Temperature(), 1e-9)
}

func TestUnsubscribedObserverStopsReceiving(t *testing.T) {
	station := NewStation()
	a := &recorder{}
	b := &recorder{}
	station.Subscribe(a)
	station.Subscribe(b)

	station.SetTemperature(25.5)
	station.Unsubscribe(b)
	station.SetTemperature(28.2)

	assert.Equal(t, []float64{25.5, 28.2}, a.got)
	assert.Equal(t, []float64{25.5}, b.got)
}

func TestUnsubscribeUnknownObserverIsNoop(t *testing.T) {
	station := NewStation()
	a := &recorder{}
	station.Subscribe(a)
	station.Unsubscribe(&recorder{})

	station.SetTemperature(20)
	assert.Equal(t, []float64{20}, a.got)
}

func TestDisplayFormatting(t *testing.T) {
	var lines []string
	d := &Display{Name: "Phone Display", Out: func(s string) { lines = append(lines, s) }}

	station := NewStation()
	station.Subscribe(d)
	station.SetTemperature(25.5)

	assert.Equal(t, []string{"Phone Display: Current temperature is 25.5°C"}, lines)
}
