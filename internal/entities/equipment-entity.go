package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	SerialNumber     string      `json:"serial_number"`
	Category         string      `json:"category"`
	Department       null.String `json:"department"`
	AssignedEmployee null.String `json:"assigned_employee"`
	TeamID           null.String `json:"team_id"`
	Location         null.String `json:"location"`
	PurchaseDate     null.String `json:"purchase_date"`
	WarrantyExpiry   null.String `json:"warranty_expiry"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}
