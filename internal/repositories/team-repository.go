package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

type TeamRepositoryInterface interface {
	CreateTeam(ctx context.Context, team *entities.MaintenanceTeam) error
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	UpdateTeam(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteTeam(ctx context.Context, id string) error
}

type TeamRepository struct {
	storage querier
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team *entities.MaintenanceTeam) error {
	query := `INSERT INTO teams (id, name, description, member_ids, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.storage.Exec(ctx, query,
		team.ID, team.Name, team.Description, team.MemberIDs, team.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания бригады: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, description, member_ids, created_at FROM teams ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка бригад: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		var team entities.MaintenanceTeam
		if err := rows.Scan(&team.ID, &team.Name, &team.Description, &team.MemberIDs, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования бригады в списке: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	var team entities.MaintenanceTeam
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, description, member_ids, created_at FROM teams WHERE id = $1`, id).
		Scan(&team.ID, &team.Name, &team.Description, &team.MemberIDs, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования бригады: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("teams").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса обновления бригады: %w", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления бригады: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления бригады: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
