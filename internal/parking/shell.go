package parking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Shubham8223/LLD-patterns/internal/telemetry"
	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

// Shell drives an instrumented parking lot from stdin commands.
type Shell struct {
	parkingLot *InstrumentedParkingLot
	scanner    *bufio.Scanner
	telemetry  *telemetry.Provider
}

func NewShell(provider *telemetry.Provider) *Shell {
	return &Shell{
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: provider,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for {
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		// Create a new span for each command
		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))

		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := parts[0]

	switch command {
	case "create_parking_lot":
		s.handleCreateParkingLot(parts)
	case "park":
		s.handlePark(ctx, parts)
	case "leave":
		s.handleLeave(ctx, parts)
	case "status":
		s.handleStatus(ctx)
	case "slot_number_for_registration_number":
		s.handleSlotNumberForRegistrationNumber(ctx, parts)
	default:
		fmt.Printf("Unknown command: %s\n", command)
	}
}

func (s *Shell) handleCreateParkingLot(parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: create_parking_lot <capacity>")
		return
	}

	capacity, err := strconv.Atoi(parts[1])
	if err != nil || capacity <= 0 {
		fmt.Println("Invalid capacity")
		return
	}

	parkingLot, err := NewInstrumentedParkingLot(capacity, s.telemetry)
	if err != nil {
		fmt.Printf("Error creating parking lot: %s\n", err.Error())
		return
	}

	s.parkingLot = parkingLot
	fmt.Printf("Created a parking lot with %d slots\n", capacity)
}

func (s *Shell) handlePark(ctx context.Context, parts []string) {
	if s.parkingLot == nil {
		fmt.Println("Parking lot not created")
		return
	}

	if len(parts) != 3 && len(parts) != 4 {
		fmt.Println("Usage: park <registration_number> <color> [kind]")
		return
	}

	registrationNumber := parts[1]
	color := parts[2]
	kind := KindCar
	if len(parts) == 4 {
		kind = parts[3]
	}

	ticket, err := s.parkingLot.Park(ctx, registrationNumber, color, kind)
	switch {
	case errors.Is(err, create.ErrUnknownVariant):
		fmt.Printf("Unknown vehicle kind: %s\n", kind)
	case errors.Is(err, ErrLotFull):
		fmt.Println("Sorry, parking lot is full")
	case err != nil:
		fmt.Printf("Error: %s\n", err.Error())
	default:
		fmt.Printf("Allocated slot number: %d\n", ticket.SlotNumber)
	}
}

func (s *Shell) handleLeave(ctx context.Context, parts []string) {
	if s.parkingLot == nil {
		fmt.Println("Parking lot not created")
		return
	}

	if len(parts) != 2 {
		fmt.Println("Usage: leave <slot_number>")
		return
	}

	slotNumber, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Println("Invalid slot number")
		return
	}

	fee, err := s.parkingLot.Leave(ctx, slotNumber)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Slot number %d is free. Charge: %.2f\n", slotNumber, fee)
}

func (s *Shell) handleStatus(ctx context.Context) {
	if s.parkingLot == nil {
		fmt.Println("Parking lot not created")
		return
	}

	occupiedSlots := s.parkingLot.GetStatus(ctx)
	if len(occupiedSlots) == 0 {
		fmt.Println("Parking lot is empty")
		return
	}

	fmt.Println("Slot No.\tRegistration No\tColour")
	for _, slot := range occupiedSlots {
		fmt.Printf("%d\t\t%s\t%s\n", slot.Number, slot.Vehicle.RegistrationNumber, slot.Vehicle.Color)
	}
}

func (s *Shell) handleSlotNumberForRegistrationNumber(ctx context.Context, parts []string) {
	if s.parkingLot == nil {
		fmt.Println("Parking lot not created")
		return
	}

	if len(parts) != 2 {
		fmt.Println("Usage: slot_number_for_registration_number <registration_number>")
		return
	}

	registrationNumber := parts[1]

	slotNumber, err := s.parkingLot.GetSlotByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		fmt.Println("Not found")
		return
	}

	fmt.Printf("%d\n", slotNumber)
}
