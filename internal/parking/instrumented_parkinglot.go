package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Shubham8223/LLD-patterns/internal/telemetry"
)

// InstrumentedParkingLot decorates ParkingLot with traces and metrics.
// Every operation delegates to the embedded lot and records the outcome.
type InstrumentedParkingLot struct {
	*ParkingLot
	telemetry *telemetry.Provider

	// Metrics
	parkingOperations metric.Int64Counter
	leavingOperations metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
	totalSlotsGauge   metric.Int64UpDownCounter
	collectedFees     metric.Float64Counter
}

func NewInstrumentedParkingLot(capacity int, provider *telemetry.Provider) (*InstrumentedParkingLot, error) {
	return newInstrumented(NewParkingLot(capacity), provider)
}

func NewInstrumentedParkingLotWithLayout(layout []string, provider *telemetry.Provider) (*InstrumentedParkingLot, error) {
	return newInstrumented(NewParkingLotWithLayout(layout), provider)
}

func newInstrumented(baseParkingLot *ParkingLot, provider *telemetry.Provider) (*InstrumentedParkingLot, error) {
	meter := provider.Meter()

	parkingOperations, err := meter.Int64Counter("parking_operations_total",
		metric.WithDescription("Total number of parking operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	leavingOperations, err := meter.Int64Counter("leaving_operations_total",
		metric.WithDescription("Total number of leaving operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("parking_lot_occupancy",
		metric.WithDescription("Current number of occupied parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of parking lot operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	totalSlotsGauge, err := meter.Int64UpDownCounter("parking_lot_total_slots",
		metric.WithDescription("Total number of parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	collectedFees, err := meter.Float64Counter("parking_fees_collected_total",
		metric.WithDescription("Total fees charged to leaving vehicles"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	ipl := &InstrumentedParkingLot{
		ParkingLot:        baseParkingLot,
		telemetry:         provider,
		parkingOperations: parkingOperations,
		leavingOperations: leavingOperations,
		occupancyGauge:    occupancyGauge,
		operationDuration: operationDuration,
		totalSlotsGauge:   totalSlotsGauge,
		collectedFees:     collectedFees,
	}

	// Set initial total slots metric
	totalSlotsGauge.Add(context.Background(), int64(baseParkingLot.Capacity()))

	return ipl, nil
}

func (ipl *InstrumentedParkingLot) Park(ctx context.Context, registrationNumber, color, kind string) (*Ticket, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.park",
		trace.WithAttributes(
			attribute.String("vehicle.registration_number", registrationNumber),
			attribute.String("vehicle.color", color),
			attribute.String("vehicle.kind", kind),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("finding_available_slot")

	ticket, err := ipl.ParkingLot.Park(registrationNumber, color, kind)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "park"),
		attribute.String("vehicle_kind", kind),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ipl.parkingOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.Int("allocated_slot", ticket.SlotNumber),
		)
		span.SetAttributes(
			attribute.Int("allocated_slot_number", ticket.SlotNumber),
			attribute.String("ticket.id", ticket.ID),
		)
		span.AddEvent("slot_allocated", trace.WithAttributes(
			attribute.Int("slot_number", ticket.SlotNumber),
		))

		ipl.parkingOperations.Add(ctx, 1, metric.WithAttributes(labels...))
		ipl.occupancyGauge.Add(ctx, 1)
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return ticket, err
}

func (ipl *InstrumentedParkingLot) Leave(ctx context.Context, slotNumber int) (float64, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.leave",
		trace.WithAttributes(
			attribute.Int("slot_number", slotNumber),
		))
	defer span.End()

	start := time.Now()

	// Get vehicle info before leaving for metrics
	var vehicleInfo *Vehicle
	if slotNumber >= 1 && slotNumber <= ipl.capacity {
		slot := ipl.slots[slotNumber-1]
		if slot.IsOccupied {
			vehicleInfo = slot.Vehicle
		}
	}

	span.AddEvent("releasing_slot")

	fee, err := ipl.ParkingLot.Leave(slotNumber)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "leave"),
		attribute.Int("slot_number", slotNumber),
	}

	if vehicleInfo != nil {
		labels = append(labels,
			attribute.String("vehicle_registration", vehicleInfo.RegistrationNumber),
			attribute.String("vehicle_kind", vehicleInfo.Kind),
		)
		span.SetAttributes(
			attribute.String("vehicle.registration_number", vehicleInfo.RegistrationNumber),
			attribute.String("vehicle.color", vehicleInfo.Color),
		)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.Float64("parking.fee", fee))
		span.AddEvent("slot_released")
		ipl.occupancyGauge.Add(ctx, -1)
		ipl.collectedFees.Add(ctx, fee)
	}

	ipl.leavingOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return fee, err
}

func (ipl *InstrumentedParkingLot) GetStatus(ctx context.Context) []*Slot {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.get_status")
	defer span.End()

	start := time.Now()

	span.AddEvent("retrieving_status")

	occupiedSlots := ipl.ParkingLot.GetStatus()

	duration := time.Since(start).Seconds()

	span.SetAttributes(
		attribute.Int("occupied_slots_count", len(occupiedSlots)),
		attribute.Int("total_capacity", ipl.capacity),
	)

	labels := []attribute.KeyValue{
		attribute.String("operation", "get_status"),
		attribute.String("status", "success"),
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return occupiedSlots
}

func (ipl *InstrumentedParkingLot) GetSlotByRegistrationNumber(ctx context.Context, registrationNumber string) (int, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.get_slot_by_registration",
		trace.WithAttributes(
			attribute.String("registration_number", registrationNumber),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("searching_by_registration")

	slotNumber, err := ipl.ParkingLot.GetSlotByRegistrationNumber(registrationNumber)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "get_slot_by_registration"),
		attribute.String("registration_number", registrationNumber),
	}

	if err != nil {
		span.AddEvent("vehicle_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	} else {
		span.SetAttributes(attribute.Int("found_slot_number", slotNumber))
		span.AddEvent("vehicle_found", trace.WithAttributes(
			attribute.Int("slot_number", slotNumber),
		))
		labels = append(labels,
			attribute.String("status", "found"),
			attribute.Int("slot_number", slotNumber),
		)
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return slotNumber, err
}
