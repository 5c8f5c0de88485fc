package response

import (
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
)

type SlotAvailabilityResponse struct {
	TimeSlot  string `json:"timeSlot"`
	Available bool   `json:"available"`
	SpotsLeft int    `json:"spotsLeft"`
}

type AvailabilityResponse struct {
	Date           string                     `json:"date"`
	Activity       string                     `json:"activity"`
	AvailableSlots []SlotAvailabilityResponse `json:"availableSlots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		Date:           v.Date,
		Activity:       v.Activity,
		AvailableSlots: make([]SlotAvailabilityResponse, len(v.Slots)),
	}
	for i, s := range v.Slots {
		res.AvailableSlots[i] = SlotAvailabilityResponse{
			TimeSlot:  s.TimeSlot.String(),
			Available: s.Available,
			SpotsLeft: s.SpotsLeft,
		}
	}
	return res
}

type SlotResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	MaxCapacity     int    `json:"maxCapacity"`
	CurrentBookings int    `json:"currentBookings"`
	IsAvailable     bool   `json:"isAvailable"`
	SpotsLeft       int    `json:"spotsLeft"`
}

func FromSlot(s *slot.Slot) *SlotResponse {
	spotsLeft := s.SpotsLeft()
	if !s.IsAvailable() {
		spotsLeft = 0
	}
	return &SlotResponse{
		ID:              s.ID().String(),
		Date:            slot.FormatDate(s.Date()),
		TimeSlot:        s.TimeSlot().String(),
		MaxCapacity:     s.MaxCapacity(),
		CurrentBookings: s.CurrentBookings(),
		IsAvailable:     s.IsAvailable(),
		SpotsLeft:       spotsLeft,
	}
}
