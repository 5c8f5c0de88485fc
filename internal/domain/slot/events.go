package slot

// UpdatedEvent is broadcast to everyone watching an activity whenever a
// slot's remaining capacity changes.
type UpdatedEvent struct {
	Activity  string `json:"activity"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	SpotsLeft int    `json:"spotsLeft"`
}
