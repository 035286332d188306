package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Shubham8223/LLD-patterns/internal/parking"
	"github.com/Shubham8223/LLD-patterns/internal/telemetry"
	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

type Handler struct {
	serviceName string
	telemetry   *telemetry.Provider

	mu         sync.RWMutex
	parkingLot *parking.InstrumentedParkingLot
}

func NewHandler(serviceName string, provider *telemetry.Provider) *Handler {
	return &Handler{
		serviceName: serviceName,
		telemetry:   provider,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": h.serviceName,
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) CreateParkingLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ParkingLotCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		parkingLot *parking.InstrumentedParkingLot
		err        error
	)
	switch {
	case len(req.Layout) > 0:
		parkingLot, err = parking.NewInstrumentedParkingLotWithLayout(req.Layout, h.telemetry)
	case req.Capacity > 0:
		parkingLot, err = parking.NewInstrumentedParkingLot(req.Capacity, h.telemetry)
	default:
		WriteError(ctx, w, http.StatusBadRequest, "Capacity must be greater than 0")
		return
	}
	if err != nil {
		WriteError(ctx, w, http.StatusInternalServerError, "Failed to create parking lot")
		return
	}

	h.mu.Lock()
	h.parkingLot = parkingLot
	h.mu.Unlock()

	WriteSuccess(ctx, w, "Parking lot created successfully", map[string]any{
		"capacity": parkingLot.Capacity(),
		"layout":   parkingLot.Layout(),
	})
}

func (h *Handler) lot() (*parking.InstrumentedParkingLot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.parkingLot, h.parkingLot != nil
}

func (h *Handler) ParkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lot, ok := h.lot()
	if !ok {
		WriteError(ctx, w, http.StatusBadRequest, "Parking lot not created. Create parking lot first")
		return
	}

	var req ParkVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Registration == "" || req.Color == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration and color are required")
		return
	}
	if req.Kind == "" {
		req.Kind = parking.KindCar
	}

	ticket, err := lot.Park(ctx, req.Registration, req.Color, req.Kind)
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, create.ErrUnknownVariant) {
			status = http.StatusBadRequest
		}
		WriteError(ctx, w, status, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle parked successfully", map[string]any{
		"ticket_id":    ticket.ID,
		"slot_number":  ticket.SlotNumber,
		"registration": req.Registration,
		"color":        req.Color,
		"kind":         req.Kind,
	})
}

func (h *Handler) LeaveSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lot, ok := h.lot()
	if !ok {
		WriteError(ctx, w, http.StatusBadRequest, "Parking lot not created. Create parking lot first")
		return
	}

	var req LeaveSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SlotNumber <= 0 {
		WriteError(ctx, w, http.StatusBadRequest, "Slot number must be greater than 0")
		return
	}

	fee, err := lot.Leave(ctx, req.SlotNumber)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Slot vacated successfully", map[string]any{
		"slot_number": req.SlotNumber,
		"fee":         fee,
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lot, ok := h.lot()
	if !ok {
		WriteError(ctx, w, http.StatusBadRequest, "Parking lot not created. Create parking lot first")
		return
	}

	occupiedSlots := lot.GetStatus(ctx)
	layout := lot.Layout()

	slots := make([]SlotStatus, 0, len(layout))
	for i, kind := range layout {
		slot := SlotStatus{
			SlotNumber: i + 1,
			Kind:       kind,
		}

		for _, occupiedSlot := range occupiedSlots {
			if occupiedSlot.Number == i+1 {
				slot.Occupied = true
				slot.Registration = occupiedSlot.Vehicle.RegistrationNumber
				slot.Color = occupiedSlot.Vehicle.Color
				break
			}
		}

		slots = append(slots, slot)
	}

	response := StatusResponse{
		Capacity:  len(layout),
		Occupied:  len(occupiedSlots),
		Available: len(layout) - len(occupiedSlots),
		Slots:     slots,
	}

	WriteSuccess(ctx, w, "Status retrieved successfully", response)
}

func (h *Handler) FindByRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lot, ok := h.lot()
	if !ok {
		WriteError(ctx, w, http.StatusBadRequest, "Parking lot not created. Create parking lot first")
		return
	}

	registration := chi.URLParam(r, "registration")
	if registration == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration number is required")
		return
	}

	slotNumber, err := lot.GetSlotByRegistrationNumber(ctx, registration)
	if err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	occupiedSlots := lot.GetStatus(ctx)
	var vehicleInfo *parking.Vehicle

	for _, slot := range occupiedSlots {
		if slot.Number == slotNumber {
			vehicleInfo = slot.Vehicle
			break
		}
	}

	if vehicleInfo == nil {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	response := FindVehicleResponse{
		SlotNumber:   slotNumber,
		Registration: vehicleInfo.RegistrationNumber,
		Color:        vehicleInfo.Color,
		Kind:         vehicleInfo.Kind,
	}

	WriteSuccess(ctx, w, "Vehicle found", response)
}
