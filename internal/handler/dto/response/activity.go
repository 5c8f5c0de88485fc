package response

import (
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var activityCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

type ActivityResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	DurationMinutes int    `json:"duration"`
	MaxCapacity     int    `json:"maxCapacity"`
	PriceCents      int64  `json:"priceCents"`
	IsActive        bool   `json:"isActive"`
}

type ActivityListResponse struct {
	Activities []*ActivityResponse `json:"activities"`
}

func FromActivityView(v *queries.ActivityView) (*ActivityResponse, error) {
	var res ActivityResponse
	if err := copier.CopyWithOption(&res, v, activityCopyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromActivityViews(views []*queries.ActivityView) (*ActivityListResponse, error) {
	res := &ActivityListResponse{Activities: make([]*ActivityResponse, 0, len(views))}
	for _, v := range views {
		a, err := FromActivityView(v)
		if err != nil {
			return nil, err
		}
		res.Activities = append(res.Activities, a)
	}
	return res, nil
}
