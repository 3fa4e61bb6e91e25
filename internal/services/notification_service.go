// Файл: internal/services/notification_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/mailer"
	"maintenance-system/pkg/utils"
)

// NotificationServiceInterface - диспетчер уведомлений. NotifyTeam и NotifyAssignee
// работают по принципу best-effort: любая ошибка логируется и не возвращается,
// чтобы не блокировать основную запись в жизненном цикле заявки.
type NotificationServiceInterface interface {
	NotifyTeam(ctx context.Context, teamID, excludeUserID string, req *entities.MaintenanceRequest)
	NotifyAssignee(ctx context.Context, userID string, req *entities.MaintenanceRequest)
	GetMyNotifications(ctx context.Context) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	teamRepo         repositories.TeamRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	mailer           mailer.Mailer
	logger           *zap.Logger
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	mailSender mailer.Mailer,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		teamRepo:         teamRepo,
		userRepo:         userRepo,
		mailer:           mailSender,
		logger:           logger,
	}
}

// NotifyTeam рассылает внутрисистемные уведомления всем участникам бригады,
// кроме excludeUserID (автор заявки не уведомляет сам себя), и ставит в очередь
// ОДНО письмо на весь список адресов.
func (s *NotificationService) NotifyTeam(ctx context.Context, teamID, excludeUserID string, req *entities.MaintenanceRequest) {
	team, err := s.teamRepo.FindTeam(ctx, teamID)
	if err != nil {
		s.logger.Warn("NotifyTeam: бригада не найдена, рассылка пропущена",
			zap.String("teamId", teamID), zap.Error(err))
		return
	}

	recipientEmails := make([]string, 0, len(team.MemberIDs))
	for _, memberID := range team.MemberIDs {
		if memberID == excludeUserID {
			continue
		}

		member, err := s.userRepo.FindUserByID(ctx, memberID)
		if err != nil {
			s.logger.Warn("NotifyTeam: участник бригады не найден, пропускаем",
				zap.String("memberId", memberID), zap.Error(err))
			continue
		}

		notification := &entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: memberID,
			Message:     fmt.Sprintf("New maintenance request: %s", req.Subject),
			RequestID:   req.ID,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
			s.logger.Error("NotifyTeam: не удалось сохранить уведомление",
				zap.String("recipientId", memberID), zap.Error(err))
		}

		if member.Email != "" {
			recipientEmails = append(recipientEmails, member.Email)
		}
	}

	if len(recipientEmails) == 0 {
		s.logger.Debug("NotifyTeam: адресов для письма нет, отправка не требуется",
			zap.String("teamId", teamID))
		return
	}

	s.mailer.Enqueue(mailer.Message{
		To:      recipientEmails,
		Subject: fmt.Sprintf("Maintenance Request: %s", req.Subject),
		Body: fmt.Sprintf(
			"Hello Team,\n\n"+
				"A new maintenance request has been created.\n\n"+
				"Equipment: %s\n"+
				"Issue: %s\n"+
				"Priority: %s\n\n"+
				"Please check the dashboard for details.",
			req.EquipmentName.String, req.Subject, req.RequestType,
		),
	})
}

// NotifyAssignee уведомляет назначенного исполнителя. Содержимое письма берётся
// из снимка заявки ДО применения обновления (так ведёт себя и веб-клиент).
func (s *NotificationService) NotifyAssignee(ctx context.Context, userID string, req *entities.MaintenanceRequest) {
	assignee, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("NotifyAssignee: пользователь не найден, уведомление пропущено",
			zap.String("userId", userID), zap.Error(err))
		return
	}

	notification := &entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: assignee.ID,
		Message:     fmt.Sprintf("You have been assigned to request: %s", req.Subject),
		RequestID:   req.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.logger.Error("NotifyAssignee: не удалось сохранить уведомление",
			zap.String("recipientId", assignee.ID), zap.Error(err))
	}

	if assignee.Email == "" {
		return
	}

	s.mailer.Enqueue(mailer.Message{
		To:      []string{assignee.Email},
		Subject: fmt.Sprintf("Assigned to Task: %s", req.Subject),
		Body: fmt.Sprintf(
			"Hello %s,\n\n"+
				"You have been assigned to a maintenance request.\n\n"+
				"Task: %s\n"+
				"Equipment: %s\n"+
				"Status: %s\n\n"+
				"Please log in to the dashboard to view details and update progress.",
			assignee.Name, req.Subject, req.EquipmentName.String, req.Stage,
		),
	})
}

func (s *NotificationService) GetMyNotifications(ctx context.Context) ([]entities.Notification, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.notificationRepo.GetByRecipient(ctx, userID, 50)
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, id string) error {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, id, userID)
}
