package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/dto"
)

type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardRepository struct {
	storage querier
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{}

	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipment`).Scan(&stats.TotalEquipment); err != nil {
		return nil, fmt.Errorf("ошибка подсчета оборудования: %w", err)
	}
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&stats.TotalTeams); err != nil {
		return nil, fmt.Errorf("ошибка подсчета бригад: %w", err)
	}

	query, args, err := sq.Select(
		"COUNT(*)",
		"COUNT(CASE WHEN stage = 'new' THEN 1 END)",
		"COUNT(CASE WHEN stage = 'in_progress' THEN 1 END)",
		"COUNT(CASE WHEN stage = 'repaired' THEN 1 END)",
		"COUNT(CASE WHEN request_type = 'corrective' THEN 1 END)",
		"COUNT(CASE WHEN request_type = 'preventive' THEN 1 END)",
	).From("maintenance_requests").PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&stats.TotalRequests,
		&stats.NewRequests,
		&stats.InProgressRequests,
		&stats.RepairedRequests,
		&stats.CorrectiveRequests,
		&stats.PreventiveRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчета заявок: %w", err)
	}

	return stats, nil
}
