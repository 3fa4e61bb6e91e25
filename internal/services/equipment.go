// Файл: internal/services/equipment.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment := &entities.Equipment{
		ID:               uuid.NewString(),
		Name:             payload.Name,
		SerialNumber:     payload.SerialNumber,
		Category:         payload.Category,
		Department:       payload.Department,
		AssignedEmployee: payload.AssignedEmployee,
		TeamID:           payload.TeamID,
		Location:         payload.Location,
		PurchaseDate:     payload.PurchaseDate,
		WarrantyExpiry:   payload.WarrantyExpiry,
		Status:           constants.EquipmentStatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.equipmentRepo.CreateEquipment(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	fields := map[string]interface{}{}
	if payload.Name != nil {
		fields["name"] = *payload.Name
	}
	if payload.SerialNumber != nil {
		fields["serial_number"] = *payload.SerialNumber
	}
	if payload.Category != nil {
		fields["category"] = *payload.Category
	}
	if payload.Department.Valid {
		fields["department"] = payload.Department.String
	}
	if payload.AssignedEmployee.Valid {
		fields["assigned_employee"] = payload.AssignedEmployee.String
	}
	if payload.TeamID.Valid {
		fields["team_id"] = payload.TeamID.String
	}
	if payload.Location.Valid {
		fields["location"] = payload.Location.String
	}
	if payload.PurchaseDate.Valid {
		fields["purchase_date"] = payload.PurchaseDate.String
	}
	if payload.WarrantyExpiry.Valid {
		fields["warranty_expiry"] = payload.WarrantyExpiry.String
	}
	if payload.Status != nil {
		fields["status"] = *payload.Status
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}
