package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceTeam - бригада обслуживания. Целостность member_ids при записи
// не проверяется: недействительные участники отфильтровываются при рассылке.
type MaintenanceTeam struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	MemberIDs   []string    `json:"member_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}
