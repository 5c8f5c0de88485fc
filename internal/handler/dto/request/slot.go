package request

import "github.com/Varma0099/lill-things/internal/usecase/commands"

type AvailabilityQuery struct {
	Activity string `form:"activity"`
	Date     string `form:"date"`
}

type UpdateSlotRequest struct {
	Activity    string `json:"activity" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
	MaxCapacity *int   `json:"maxCapacity"`
}

func (r *UpdateSlotRequest) ToInput() commands.UpdateSlotSettingsInput {
	return commands.UpdateSlotSettingsInput{
		Activity:    r.Activity,
		Date:        r.Date,
		TimeSlot:    r.Time,
		IsAvailable: r.IsAvailable,
		MaxCapacity: r.MaxCapacity,
	}
}
