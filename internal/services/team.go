// Файл: internal/services/team.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
	UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error)
	DeleteTeam(ctx context.Context, id string) error
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	members := payload.MemberIDs
	if members == nil {
		members = []string{}
	}
	team := &entities.MaintenanceTeam{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Description: payload.Description,
		MemberIDs:   members,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error) {
	fields := map[string]interface{}{}
	if payload.Name != nil {
		fields["name"] = *payload.Name
	}
	if payload.Description.Valid {
		fields["description"] = payload.Description.String
	}
	if payload.MemberIDs != nil {
		fields["member_ids"] = *payload.MemberIDs
	}

	if err := s.teamRepo.UpdateTeam(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}
