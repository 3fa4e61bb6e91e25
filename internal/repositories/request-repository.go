package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

type RequestRepositoryInterface interface {
	CreateRequest(ctx context.Context, req *entities.MaintenanceRequest) error
	GetRequests(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteRequest(ctx context.Context, id string) error
}

type RequestRepository struct {
	storage querier
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

const requestColumns = `id, subject, description, equipment_id, equipment_name, equipment_category,
	team_id, team_name, assigned_to, request_type, stage, scheduled_date, duration,
	created_by, created_at, updated_at`

func (r *RequestRepository) CreateRequest(ctx context.Context, req *entities.MaintenanceRequest) error {
	query := `INSERT INTO maintenance_requests (id, subject, description, equipment_id, equipment_name,
	            equipment_category, team_id, team_name, assigned_to, request_type, stage,
	            scheduled_date, duration, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.storage.Exec(ctx, query,
		req.ID, req.Subject, req.Description, req.EquipmentID, req.EquipmentName,
		req.EquipmentCategory, req.TeamID, req.TeamName, req.AssignedTo, req.RequestType, req.Stage,
		req.ScheduledDate, req.Duration, req.CreatedBy, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания заявки: %w", err)
	}
	return nil
}

func (r *RequestRepository) GetRequests(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM maintenance_requests ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *RequestRepository) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	var req entities.MaintenanceRequest
	row := r.storage.QueryRow(ctx, `SELECT `+requestColumns+` FROM maintenance_requests WHERE id = $1`, id)
	if err := scanRequest(row, &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования заявки: %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM maintenance_requests WHERE equipment_id = $1 ORDER BY created_at DESC`
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заявок по оборудованию: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

func scanRequest(row pgx.Row, req *entities.MaintenanceRequest) error {
	return row.Scan(
		&req.ID, &req.Subject, &req.Description, &req.EquipmentID, &req.EquipmentName,
		&req.EquipmentCategory, &req.TeamID, &req.TeamName, &req.AssignedTo, &req.RequestType,
		&req.Stage, &req.ScheduledDate, &req.Duration, &req.CreatedBy, &req.CreatedAt, &req.UpdatedAt)
}

func collectRequests(rows pgx.Rows) ([]entities.MaintenanceRequest, error) {
	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		var req entities.MaintenanceRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, fmt.Errorf("ошибка сканирования заявки в списке: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateRequest применяет частичное обновление. updated_at штампуется всегда,
// даже если набор полей пуст.
func (r *RequestRepository) UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	setMap := map[string]interface{}{"updated_at": time.Now().UTC()}
	for col, val := range fields {
		setMap[col] = val
	}

	query, args, err := sq.Update("maintenance_requests").
		SetMap(setMap).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса обновления заявки: %w", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления заявки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления заявки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
