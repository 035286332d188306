// Package navigation demonstrates the strategy pattern: route planning
// algorithms swapped at runtime behind one interface.
package navigation

import (
	"errors"
	"fmt"

	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

// Strategy tags accepted by Strategies.
const (
	Driving = "driving"
	Walking = "walking"
	Cycling = "cycling"
)

// ErrNoStrategy is returned by Navigate when no strategy has been set.
var ErrNoStrategy = errors.New("navigation: no strategy set")

// RouteStrategy computes a route description between two points.
type RouteStrategy interface {
	Route(start, end string) string
}

type routeFunc string

func (r routeFunc) Route(start, end string) string {
	return fmt.Sprintf("Calculating %s route from %s to %s", string(r), start, end)
}

// Navigator holds the currently selected strategy.
type Navigator struct {
	strategy RouteStrategy
}

// SetStrategy selects the algorithm used by subsequent Navigate calls.
func (n *Navigator) SetStrategy(s RouteStrategy) {
	n.strategy = s
}

// Navigate runs the current strategy, or fails if none is set.
func (n *Navigator) Navigate(start, end string) (string, error) {
	if n.strategy == nil {
		return "", ErrNoStrategy
	}
	return n.strategy.Route(start, end), nil
}

// Strategies returns a factory over the built-in route strategies.
func Strategies() *create.Factory[RouteStrategy] {
	f := create.NewFactory[RouteStrategy]()
	f.Register(Driving, func() RouteStrategy { return routeFunc("driving") })
	f.Register(Walking, func() RouteStrategy { return routeFunc("walking") })
	f.Register(Cycling, func() RouteStrategy { return routeFunc("cycling") })
	return f
}
