package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceRequest - заявка на обслуживание оборудования.
// EquipmentName, EquipmentCategory и TeamName - снимки на момент создания,
// с последующими правками оборудования/бригады они не синхронизируются.
type MaintenanceRequest struct {
	ID                string      `json:"id"`
	Subject           string      `json:"subject"`
	Description       null.String `json:"description"`
	EquipmentID       string      `json:"equipment_id"`
	EquipmentName     null.String `json:"equipment_name"`
	EquipmentCategory null.String `json:"equipment_category"`
	TeamID            null.String `json:"team_id"`
	TeamName          null.String `json:"team_name"`
	AssignedTo        null.String `json:"assigned_to"`
	RequestType       string      `json:"request_type"`
	Stage             string      `json:"stage"`
	ScheduledDate     null.String `json:"scheduled_date"`
	Duration          null.Float64 `json:"duration"`
	CreatedBy         string      `json:"created_by"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
