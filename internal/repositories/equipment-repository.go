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

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, eq *entities.Equipment) error
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentRepository struct {
	storage querier
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

const equipmentColumns = `id, name, serial_number, category, department, assigned_employee,
	team_id, location, purchase_date, warranty_expiry, status, created_at`

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq *entities.Equipment) error {
	query := `INSERT INTO equipment (id, name, serial_number, category, department, assigned_employee,
	            team_id, location, purchase_date, warranty_expiry, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.storage.Exec(ctx, query,
		eq.ID, eq.Name, eq.SerialNumber, eq.Category, eq.Department, eq.AssignedEmployee,
		eq.TeamID, eq.Location, eq.PurchaseDate, eq.WarrantyExpiry, eq.Status, eq.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания оборудования: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка оборудования: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		var eq entities.Equipment
		if err := scanEquipment(rows, &eq); err != nil {
			return nil, err
		}
		list = append(list, eq)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	var eq entities.Equipment
	row := r.storage.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
	if err := scanEquipment(row, &eq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &eq, nil
}

func scanEquipment(row pgx.Row, eq *entities.Equipment) error {
	return row.Scan(
		&eq.ID, &eq.Name, &eq.SerialNumber, &eq.Category, &eq.Department, &eq.AssignedEmployee,
		&eq.TeamID, &eq.Location, &eq.PurchaseDate, &eq.WarrantyExpiry, &eq.Status, &eq.CreatedAt)
}

// UpdateEquipment применяет частичное обновление: меняются только переданные колонки.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("equipment").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса обновления оборудования: %w", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления оборудования: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления оборудования: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
