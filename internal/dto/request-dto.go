package dto

import "github.com/aarondl/null/v8"

type CreateRequestDTO struct {
	Subject       string      `json:"subject" validate:"required,min=1,max=255"`
	Description   null.String `json:"description,omitempty"`
	EquipmentID   string      `json:"equipment_id" validate:"required"`
	RequestType   string      `json:"request_type" validate:"required,oneof=corrective preventive"`
	ScheduledDate null.String `json:"scheduled_date,omitempty"`
}

// UpdateRequestDTO - частичное обновление: nil-поля не трогаются.
type UpdateRequestDTO struct {
	Subject       *string  `json:"subject,omitempty" validate:"omitempty,min=1,max=255"`
	Description   *string  `json:"description,omitempty"`
	Stage         *string  `json:"stage,omitempty" validate:"omitempty,oneof=new in_progress repaired scrap"`
	AssignedTo    *string  `json:"assigned_to,omitempty"`
	Duration      *float64 `json:"duration,omitempty" validate:"omitempty,gte=0"`
	ScheduledDate *string  `json:"scheduled_date,omitempty"`
}
