// Файл: internal/services/testhelpers_test.go
package services

import (
	"context"
	"sync"
	"time"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/contextkeys"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/mailer"
)

// Хранилища в памяти для сервисных тестов: повторяют контракт репозиториев,
// включая ErrNotFound на отсутствующих записях.

func ctxWithUser(userID string) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*entities.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) GetUsers(_ context.Context) ([]entities.User, error) {
	list := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		list = append(list, *user)
	}
	return list, nil
}

type fakeTeamRepo struct {
	teams map[string]*entities.MaintenanceTeam
}

func newFakeTeamRepo(teams ...*entities.MaintenanceTeam) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: map[string]*entities.MaintenanceTeam{}}
	for _, t := range teams {
		repo.teams[t.ID] = t
	}
	return repo
}

func (r *fakeTeamRepo) CreateTeam(_ context.Context, team *entities.MaintenanceTeam) error {
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) GetTeams(_ context.Context) ([]entities.MaintenanceTeam, error) {
	list := make([]entities.MaintenanceTeam, 0, len(r.teams))
	for _, team := range r.teams {
		list = append(list, *team)
	}
	return list, nil
}

func (r *fakeTeamRepo) FindTeam(_ context.Context, id string) (*entities.MaintenanceTeam, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return team, nil
}

func (r *fakeTeamRepo) UpdateTeam(_ context.Context, id string, fields map[string]interface{}) error {
	team, ok := r.teams[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		team.Name = name
	}
	if members, ok := fields["member_ids"].([]string); ok {
		team.MemberIDs = members
	}
	return nil
}

func (r *fakeTeamRepo) DeleteTeam(_ context.Context, id string) error {
	if _, ok := r.teams[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

type fakeEquipmentRepo struct {
	equipment map[string]*entities.Equipment
	updates   []map[string]interface{}
}

func newFakeEquipmentRepo(items ...*entities.Equipment) *fakeEquipmentRepo {
	repo := &fakeEquipmentRepo{equipment: map[string]*entities.Equipment{}}
	for _, eq := range items {
		repo.equipment[eq.ID] = eq
	}
	return repo
}

func (r *fakeEquipmentRepo) CreateEquipment(_ context.Context, eq *entities.Equipment) error {
	r.equipment[eq.ID] = eq
	return nil
}

func (r *fakeEquipmentRepo) GetEquipments(_ context.Context) ([]entities.Equipment, error) {
	list := make([]entities.Equipment, 0, len(r.equipment))
	for _, eq := range r.equipment {
		list = append(list, *eq)
	}
	return list, nil
}

func (r *fakeEquipmentRepo) FindEquipment(_ context.Context, id string) (*entities.Equipment, error) {
	eq, ok := r.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return eq, nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(_ context.Context, id string, fields map[string]interface{}) error {
	eq, ok := r.equipment[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.updates = append(r.updates, fields)
	if status, ok := fields["status"].(string); ok {
		eq.Status = status
	}
	return nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(_ context.Context, id string) error {
	if _, ok := r.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.equipment, id)
	return nil
}

type fakeRequestRepo struct {
	requests map[string]*entities.MaintenanceRequest
	updates  []map[string]interface{}
}

func newFakeRequestRepo(items ...*entities.MaintenanceRequest) *fakeRequestRepo {
	repo := &fakeRequestRepo{requests: map[string]*entities.MaintenanceRequest{}}
	for _, req := range items {
		repo.requests[req.ID] = req
	}
	return repo
}

func (r *fakeRequestRepo) CreateRequest(_ context.Context, req *entities.MaintenanceRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) GetRequests(_ context.Context, _ uint64) ([]entities.MaintenanceRequest, error) {
	list := make([]entities.MaintenanceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		list = append(list, *req)
	}
	return list, nil
}

func (r *fakeRequestRepo) FindRequest(_ context.Context, id string) (*entities.MaintenanceRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *req
	return &copied, nil
}

func (r *fakeRequestRepo) GetRequestsByEquipment(_ context.Context, equipmentID string) ([]entities.MaintenanceRequest, error) {
	list := make([]entities.MaintenanceRequest, 0)
	for _, req := range r.requests {
		if req.EquipmentID == equipmentID {
			list = append(list, *req)
		}
	}
	return list, nil
}

func (r *fakeRequestRepo) UpdateRequest(_ context.Context, id string, fields map[string]interface{}) error {
	req, ok := r.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.updates = append(r.updates, fields)
	if subject, ok := fields["subject"].(string); ok {
		req.Subject = subject
	}
	if stage, ok := fields["stage"].(string); ok {
		req.Stage = stage
	}
	if assignedTo, present := fields["assigned_to"]; present {
		if value, ok := assignedTo.(string); ok {
			req.AssignedTo.SetValid(value)
		} else {
			req.AssignedTo.Valid = false
			req.AssignedTo.String = ""
		}
	}
	if duration, ok := fields["duration"].(float64); ok {
		req.Duration.SetValid(duration)
	}
	req.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeRequestRepo) DeleteRequest(_ context.Context, id string) error {
	if _, ok := r.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entities.Notification
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, n *entities.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) GetByRecipient(_ context.Context, recipientID string, _ uint64) ([]entities.Notification, error) {
	list := make([]entities.Notification, 0)
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, recipientID string) error {
	for _, n := range r.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			n.IsRead = true
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// recordingMailer собирает поставленные в очередь письма вместо отправки.
type recordingMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (m *recordingMailer) Enqueue(msg mailer.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *recordingMailer) sent() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.messages...)
}
