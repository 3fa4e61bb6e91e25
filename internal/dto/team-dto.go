package dto

import "github.com/aarondl/null/v8"

type CreateTeamDTO struct {
	Name        string      `json:"name" validate:"required,min=1,max=255"`
	Description null.String `json:"description,omitempty"`
	MemberIDs   []string    `json:"member_ids"`
}

type UpdateTeamDTO struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description null.String `json:"description,omitempty"`
	MemberIDs   *[]string   `json:"member_ids,omitempty"`
}
