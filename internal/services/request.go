// Файл: internal/services/request.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type RequestService struct {
	requestRepo         repositories.RequestRepositoryInterface
	equipmentRepo       repositories.EquipmentRepositoryInterface
	teamRepo            repositories.TeamRepositoryInterface
	notificationService NotificationServiceInterface
	logger              *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	notificationService NotificationServiceInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:         requestRepo,
		equipmentRepo:       equipmentRepo,
		teamRepo:            teamRepo,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequests(ctx, 1000)
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequestsByEquipment(ctx, equipmentID)
}

// CreateRequest создаёт заявку с денормализованным снимком оборудования и бригады.
// Оборудование обязано существовать; бригада - нет: если её уже удалили,
// заявка создаётся без имени бригады и без рассылки.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	creatorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	request := &entities.MaintenanceRequest{
		ID:                uuid.NewString(),
		Subject:           payload.Subject,
		Description:       payload.Description,
		EquipmentID:       equipment.ID,
		EquipmentName:     null.StringFrom(equipment.Name),
		EquipmentCategory: null.StringFrom(equipment.Category),
		TeamID:            equipment.TeamID,
		RequestType:       payload.RequestType,
		Stage:             constants.StageNew,
		ScheduledDate:     payload.ScheduledDate,
		CreatedBy:         creatorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if request.TeamID.Valid {
		team, err := s.teamRepo.FindTeam(ctx, request.TeamID.String)
		if err != nil {
			s.logger.Warn("CreateRequest: бригада оборудования не найдена, снимок имени пропущен",
				zap.String("teamId", request.TeamID.String), zap.Error(err))
		} else {
			request.TeamName = null.StringFrom(team.Name)
		}
	}

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	if request.TeamID.Valid {
		s.notificationService.NotifyTeam(ctx, request.TeamID.String, creatorID, request)
	}

	return request, nil
}

// UpdateRequest применяет частичное обновление в строгом порядке:
// 1) детект переназначения по снимку заявки ДО правок;
// 2) синхронизация статуса оборудования со стадией;
// 3) запись изменённых полей.
// Сбой уведомления никогда не отменяет само обновление.
func (s *RequestService) UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	existing, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	// Переназначение: новый исполнитель задан, непуст и отличается от прежнего.
	// Снятие исполнителя уведомления не порождает.
	if payload.AssignedTo != nil && *payload.AssignedTo != "" && *payload.AssignedTo != existing.AssignedTo.String {
		s.notificationService.NotifyAssignee(ctx, *payload.AssignedTo, existing)
	}

	if payload.Stage != nil {
		if status, ok := constants.EquipmentStatusForStage(*payload.Stage); ok {
			err := s.equipmentRepo.UpdateEquipment(ctx, existing.EquipmentID, map[string]interface{}{
				"status": status,
			})
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					s.logger.Warn("UpdateRequest: оборудование для синхронизации статуса не найдено",
						zap.String("equipmentId", existing.EquipmentID))
				} else {
					return nil, err
				}
			}
		}
	}

	fields := map[string]interface{}{}
	if payload.Subject != nil {
		fields["subject"] = *payload.Subject
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.Stage != nil {
		fields["stage"] = *payload.Stage
	}
	if payload.AssignedTo != nil {
		if *payload.AssignedTo == "" {
			fields["assigned_to"] = nil
		} else {
			fields["assigned_to"] = *payload.AssignedTo
		}
	}
	if payload.Duration != nil {
		fields["duration"] = *payload.Duration
	}
	if payload.ScheduledDate != nil {
		fields["scheduled_date"] = *payload.ScheduledDate
	}

	if err := s.requestRepo.UpdateRequest(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, id)
}

// DeleteRequest удаляет заявку. Связанные уведомления намеренно не трогаются:
// история "у вас была заявка" остаётся у получателей.
func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}
