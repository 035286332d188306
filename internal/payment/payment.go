// Package payment demonstrates the adapter pattern: a legacy-facing
// Processor interface bridged onto a gateway with an incompatible API.
package payment

import "fmt"

// Processor is the interface the existing checkout code expects.
type Processor interface {
	Process(amount float64) string
}

// Gateway is the new provider with its own method shape.
type Gateway struct {
	Name string
}

// MakePayment charges through the gateway.
func (g *Gateway) MakePayment(amount float64) string {
	return fmt.Sprintf("Processing payment of $%.2f through %s.", amount, g.Name)
}

// GatewayAdapter makes a Gateway usable wherever a Processor is expected.
type GatewayAdapter struct {
	gateway *Gateway
}

// NewGatewayAdapter wraps gateway behind the Processor interface.
func NewGatewayAdapter(gateway *Gateway) *GatewayAdapter {
	return &GatewayAdapter{gateway: gateway}
}

// Process delegates to the gateway's native method.
func (a *GatewayAdapter) Process(amount float64) string {
	return a.gateway.MakePayment(amount)
}
