// Файл: internal/services/request_test.go
package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type requestTestEnv struct {
	service       RequestServiceInterface
	requestRepo   *fakeRequestRepo
	equipmentRepo *fakeEquipmentRepo
	teamRepo      *fakeTeamRepo
	userRepo      *fakeUserRepo
	notifRepo     *fakeNotificationRepo
	mailer        *recordingMailer
}

func newRequestTestEnv(users []*entities.User, teams []*entities.MaintenanceTeam, equipment []*entities.Equipment, requests []*entities.MaintenanceRequest) *requestTestEnv {
	logger := zap.NewNop()
	env := &requestTestEnv{
		requestRepo:   newFakeRequestRepo(requests...),
		equipmentRepo: newFakeEquipmentRepo(equipment...),
		teamRepo:      newFakeTeamRepo(teams...),
		userRepo:      newFakeUserRepo(users...),
		notifRepo:     &fakeNotificationRepo{},
		mailer:        &recordingMailer{},
	}
	notificationService := NewNotificationService(env.notifRepo, env.teamRepo, env.userRepo, env.mailer, logger)
	env.service = NewRequestService(env.requestRepo, env.equipmentRepo, env.teamRepo, notificationService, logger)
	return env
}

func TestCreateRequestMissingEquipment(t *testing.T) {
	env := newRequestTestEnv(nil, nil, nil, nil)

	_, err := env.service.CreateRequest(ctxWithUser("creator"), dto.CreateRequestDTO{
		Subject:     "Сломался пресс",
		EquipmentID: "no-such-id",
		RequestType: constants.RequestTypeCorrective,
	})

	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, env.requestRepo.requests, "заявка не должна быть создана")
	assert.Empty(t, env.notifRepo.notifications)
	assert.Empty(t, env.mailer.sent())
}

func TestCreateRequestNotifiesTeamExceptCreator(t *testing.T) {
	creator := &entities.User{ID: "creator", Email: "creator@plant.tj", Name: "Автор"}
	memberA := &entities.User{ID: "member-a", Email: "a@plant.tj", Name: "А"}
	memberB := &entities.User{ID: "member-b", Email: "b@plant.tj", Name: "Б"}
	team := &entities.MaintenanceTeam{ID: "team-1", Name: "Механики", MemberIDs: []string{"creator", "member-a", "member-b"}}
	equipment := &entities.Equipment{ID: "eq-1", Name: "Пресс П-200", Category: "Прессовое", TeamID: null.StringFrom("team-1"), Status: constants.EquipmentStatusActive}

	env := newRequestTestEnv([]*entities.User{creator, memberA, memberB}, []*entities.MaintenanceTeam{team}, []*entities.Equipment{equipment}, nil)

	request, err := env.service.CreateRequest(ctxWithUser("creator"), dto.CreateRequestDTO{
		Subject:     "Течёт гидравлика",
		EquipmentID: "eq-1",
		RequestType: constants.RequestTypeCorrective,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StageNew, request.Stage)
	assert.Equal(t, "Пресс П-200", request.EquipmentName.String)
	assert.Equal(t, "Прессовое", request.EquipmentCategory.String)
	assert.Equal(t, "Механики", request.TeamName.String)
	assert.Equal(t, "creator", request.CreatedBy)

	require.Len(t, env.notifRepo.notifications, 2, "автор не уведомляется")
	for _, n := range env.notifRepo.notifications {
		assert.NotEqual(t, "creator", n.RecipientID)
		assert.Equal(t, "New maintenance request: Течёт гидравлика", n.Message)
		assert.Equal(t, request.ID, n.RequestID)
		assert.False(t, n.IsRead)
	}

	mails := env.mailer.sent()
	require.Len(t, mails, 1, "одно письмо на всю бригаду")
	assert.ElementsMatch(t, []string{"a@plant.tj", "b@plant.tj"}, mails[0].To)
	assert.Equal(t, "Maintenance Request: Течёт гидравлика", mails[0].Subject)
	assert.Contains(t, mails[0].Body, "Equipment: Пресс П-200")
	assert.Contains(t, mails[0].Body, "Priority: corrective")
}

func TestCreateRequestTeamlessEquipment(t *testing.T) {
	equipment := &entities.Equipment{ID: "eq-1", Name: "Станок", Category: "Токарное", Status: constants.EquipmentStatusActive}
	env := newRequestTestEnv(nil, nil, []*entities.Equipment{equipment}, nil)

	request, err := env.service.CreateRequest(ctxWithUser("creator"), dto.CreateRequestDTO{
		Subject:     "Профилактика",
		EquipmentID: "eq-1",
		RequestType: constants.RequestTypePreventive,
	})
	require.NoError(t, err)

	assert.False(t, request.TeamID.Valid)
	assert.False(t, request.TeamName.Valid)
	assert.Empty(t, env.notifRepo.notifications)
	assert.Empty(t, env.mailer.sent())
}

func TestCreateRequestDanglingTeam(t *testing.T) {
	// Бригаду удалили, а оборудование всё ещё на неё ссылается:
	// заявка создаётся без имени бригады и без рассылки.
	equipment := &entities.Equipment{ID: "eq-1", Name: "Конвейер", Category: "Транспорт", TeamID: null.StringFrom("ghost-team"), Status: constants.EquipmentStatusActive}
	env := newRequestTestEnv(nil, nil, []*entities.Equipment{equipment}, nil)

	request, err := env.service.CreateRequest(ctxWithUser("creator"), dto.CreateRequestDTO{
		Subject:     "Обрыв ленты",
		EquipmentID: "eq-1",
		RequestType: constants.RequestTypeCorrective,
	})
	require.NoError(t, err)

	assert.Equal(t, "ghost-team", request.TeamID.String)
	assert.False(t, request.TeamName.Valid)
	assert.Empty(t, env.notifRepo.notifications)
	assert.Empty(t, env.mailer.sent())
}

func TestUpdateRequestStageSyncsEquipmentStatus(t *testing.T) {
	cases := []struct {
		stage      string
		wantStatus string
		wantSync   bool
	}{
		{constants.StageInProgress, constants.EquipmentStatusMaintenance, true},
		{constants.StageRepaired, constants.EquipmentStatusActive, true},
		{constants.StageScrap, constants.EquipmentStatusScrapped, true},
		{constants.StageNew, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.stage, func(t *testing.T) {
			equipment := &entities.Equipment{ID: "eq-1", Name: "Пресс", Category: "Прессовое", Status: constants.EquipmentStatusActive}
			request := &entities.MaintenanceRequest{ID: "req-1", Subject: "Ремонт", EquipmentID: "eq-1", Stage: constants.StageNew, RequestType: constants.RequestTypeCorrective}
			env := newRequestTestEnv(nil, nil, []*entities.Equipment{equipment}, []*entities.MaintenanceRequest{request})

			updated, err := env.service.UpdateRequest(ctxWithUser("creator"), "req-1", dto.UpdateRequestDTO{
				Stage: utils.ToPtr(tc.stage),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.stage, updated.Stage)

			if tc.wantSync {
				require.Len(t, env.equipmentRepo.updates, 1)
				assert.Equal(t, tc.wantStatus, env.equipmentRepo.equipment["eq-1"].Status)
			} else {
				assert.Empty(t, env.equipmentRepo.updates, "стадия new статус оборудования не трогает")
			}
		})
	}
}

func TestUpdateRequestStageSyncSurvivesMissingEquipment(t *testing.T) {
	request := &entities.MaintenanceRequest{ID: "req-1", Subject: "Ремонт", EquipmentID: "gone", Stage: constants.StageNew, RequestType: constants.RequestTypeCorrective}
	env := newRequestTestEnv(nil, nil, nil, []*entities.MaintenanceRequest{request})

	updated, err := env.service.UpdateRequest(ctxWithUser("creator"), "req-1", dto.UpdateRequestDTO{
		Stage: utils.ToPtr(constants.StageInProgress),
	})
	require.NoError(t, err, "отсутствие оборудования не отменяет обновление заявки")
	assert.Equal(t, constants.StageInProgress, updated.Stage)
}

func TestUpdateRequestAssignmentNotification(t *testing.T) {
	assignee := &entities.User{ID: "tech-1", Email: "tech@plant.tj", Name: "Техник"}
	request := &entities.MaintenanceRequest{
		ID: "req-1", Subject: "Замена подшипника", EquipmentID: "eq-1",
		EquipmentName: null.StringFrom("Пресс"), Stage: constants.StageNew,
		RequestType: constants.RequestTypeCorrective,
	}
	env := newRequestTestEnv([]*entities.User{assignee}, nil, nil, []*entities.MaintenanceRequest{request})

	// Первое назначение: уведомление и письмо со снимком ДО обновления.
	updated, err := env.service.UpdateRequest(ctxWithUser("manager"), "req-1", dto.UpdateRequestDTO{
		AssignedTo: utils.ToPtr("tech-1"),
		Stage:      utils.ToPtr(constants.StageInProgress),
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-1", updated.AssignedTo.String)

	require.Len(t, env.notifRepo.notifications, 1)
	notification := env.notifRepo.notifications[0]
	assert.Equal(t, "tech-1", notification.RecipientID)
	assert.Equal(t, "You have been assigned to request: Замена подшипника", notification.Message)

	mails := env.mailer.sent()
	require.Len(t, mails, 1)
	assert.Equal(t, []string{"tech@plant.tj"}, mails[0].To)
	assert.Equal(t, "Assigned to Task: Замена подшипника", mails[0].Subject)
	assert.Contains(t, mails[0].Body, "Status: new", "в письме стадия до обновления")

	// Повторная передача того же исполнителя - без уведомлений.
	_, err = env.service.UpdateRequest(ctxWithUser("manager"), "req-1", dto.UpdateRequestDTO{
		AssignedTo: utils.ToPtr("tech-1"),
	})
	require.NoError(t, err)
	assert.Len(t, env.notifRepo.notifications, 1)
	assert.Len(t, env.mailer.sent(), 1)
}

func TestUpdateRequestClearAssignmentSilent(t *testing.T) {
	request := &entities.MaintenanceRequest{
		ID: "req-1", Subject: "Ремонт", EquipmentID: "eq-1",
		AssignedTo: null.StringFrom("tech-1"), Stage: constants.StageInProgress,
		RequestType: constants.RequestTypeCorrective,
	}
	env := newRequestTestEnv(nil, nil, nil, []*entities.MaintenanceRequest{request})

	updated, err := env.service.UpdateRequest(ctxWithUser("manager"), "req-1", dto.UpdateRequestDTO{
		AssignedTo: utils.ToPtr(""),
	})
	require.NoError(t, err)
	assert.False(t, updated.AssignedTo.Valid)
	assert.Empty(t, env.notifRepo.notifications, "снятие исполнителя не уведомляет")
}

func TestUpdateRequestUnknownAssigneeDoesNotAbort(t *testing.T) {
	request := &entities.MaintenanceRequest{ID: "req-1", Subject: "Ремонт", EquipmentID: "eq-1", Stage: constants.StageNew, RequestType: constants.RequestTypeCorrective}
	env := newRequestTestEnv(nil, nil, nil, []*entities.MaintenanceRequest{request})

	updated, err := env.service.UpdateRequest(ctxWithUser("manager"), "req-1", dto.UpdateRequestDTO{
		AssignedTo: utils.ToPtr("no-such-user"),
	})
	require.NoError(t, err)
	assert.Equal(t, "no-such-user", updated.AssignedTo.String)
	assert.Empty(t, env.notifRepo.notifications)
	assert.Empty(t, env.mailer.sent())
}

func TestUpdateRequestPartialFields(t *testing.T) {
	request := &entities.MaintenanceRequest{ID: "req-1", Subject: "Старая тема", EquipmentID: "eq-1", Stage: constants.StageNew, RequestType: constants.RequestTypeCorrective}
	env := newRequestTestEnv(nil, nil, nil, []*entities.MaintenanceRequest{request})

	updated, err := env.service.UpdateRequest(ctxWithUser("manager"), "req-1", dto.UpdateRequestDTO{
		Duration: utils.ToPtr(2.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Старая тема", updated.Subject, "не переданные поля не трогаются")
	assert.Equal(t, 2.5, updated.Duration.Float64)
}

func TestUpdateRequestNotFound(t *testing.T) {
	env := newRequestTestEnv(nil, nil, nil, nil)
	_, err := env.service.UpdateRequest(ctxWithUser("manager"), "ghost", dto.UpdateRequestDTO{
		Subject: utils.ToPtr("Новая тема"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteRequestKeepsNotifications(t *testing.T) {
	member := &entities.User{ID: "member-a", Email: "a@plant.tj", Name: "А"}
	team := &entities.MaintenanceTeam{ID: "team-1", Name: "Механики", MemberIDs: []string{"member-a"}}
	equipment := &entities.Equipment{ID: "eq-1", Name: "Пресс", Category: "Прессовое", TeamID: null.StringFrom("team-1"), Status: constants.EquipmentStatusActive}
	env := newRequestTestEnv([]*entities.User{member}, []*entities.MaintenanceTeam{team}, []*entities.Equipment{equipment}, nil)

	request, err := env.service.CreateRequest(ctxWithUser("creator"), dto.CreateRequestDTO{
		Subject:     "Ремонт",
		EquipmentID: "eq-1",
		RequestType: constants.RequestTypeCorrective,
	})
	require.NoError(t, err)
	require.Len(t, env.notifRepo.notifications, 1)

	require.NoError(t, env.service.DeleteRequest(ctxWithUser("creator"), request.ID))
	_, err = env.service.FindRequest(ctxWithUser("creator"), request.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Уведомления переживают удаление заявки - висячая ссылка допустима.
	assert.Len(t, env.notifRepo.notifications, 1)
}

func TestCreateThenFindRoundTrip(t *testing.T) {
	equipment := &entities.Equipment{ID: "eq-1", Name: "Пресс", Category: "Прессовое", Status: constants.EquipmentStatusActive}
	env := newRequestTestEnv(nil, nil, []*entities.Equipment{equipment}, nil)

	created, err := env.service.CreateRequest(ctxWithUser("creator"), dto.CreateRequestDTO{
		Subject:       "Ремонт",
		Description:   null.StringFrom("не включается"),
		EquipmentID:   "eq-1",
		RequestType:   constants.RequestTypeCorrective,
		ScheduledDate: null.StringFrom("2026-09-01"),
	})
	require.NoError(t, err)

	found, err := env.service.FindRequest(ctxWithUser("creator"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestDeleteRequestNotFound(t *testing.T) {
	env := newRequestTestEnv(nil, nil, nil, nil)
	assert.ErrorIs(t, env.service.DeleteRequest(ctxWithUser("creator"), "ghost"), apperrors.ErrNotFound)
}
