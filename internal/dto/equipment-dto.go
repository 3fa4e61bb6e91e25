package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name             string      `json:"name" validate:"required,min=1,max=255"`
	SerialNumber     string      `json:"serial_number" validate:"required,min=1,max=255"`
	Category         string      `json:"category" validate:"required,min=1,max=255"`
	Department       null.String `json:"department,omitempty"`
	AssignedEmployee null.String `json:"assigned_employee,omitempty"`
	TeamID           null.String `json:"team_id,omitempty"`
	Location         null.String `json:"location,omitempty"`
	PurchaseDate     null.String `json:"purchase_date,omitempty"`
	WarrantyExpiry   null.String `json:"warranty_expiry,omitempty"`
}

type UpdateEquipmentDTO struct {
	Name             *string     `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	SerialNumber     *string     `json:"serial_number,omitempty" validate:"omitempty,min=1,max=255"`
	Category         *string     `json:"category,omitempty" validate:"omitempty,min=1,max=255"`
	Department       null.String `json:"department,omitempty"`
	AssignedEmployee null.String `json:"assigned_employee,omitempty"`
	TeamID           null.String `json:"team_id,omitempty"`
	Location         null.String `json:"location,omitempty"`
	PurchaseDate     null.String `json:"purchase_date,omitempty"`
	WarrantyExpiry   null.String `json:"warranty_expiry,omitempty"`
	// Прямое редактирование статуса разрешено и обходит связь
	// "стадия заявки -> статус оборудования" (известная несогласованность).
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance scrapped"`
}
