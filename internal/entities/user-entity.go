package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type User struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Password  string      `json:"-"` // хеш, наружу не отдаём никогда
	Name      string      `json:"name"`
	Role      string      `json:"role"`
	TeamID    null.String `json:"team_id"`
	CreatedAt time.Time   `json:"created_at"`
}
