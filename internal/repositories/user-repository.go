package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entities.User) error
	FindUserByID(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUsers(ctx context.Context) ([]entities.User, error)
}

type UserRepository struct {
	storage querier
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

const userColumns = `id, email, password, name, role, team_id, created_at`

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	query := `INSERT INTO users (id, email, password, name, role, team_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.storage.Exec(ctx, query,
		user.ID, user.Email, user.Password, user.Name, user.Role, user.TeamID, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания пользователя: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var user entities.User
	err := r.storage.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Role, &user.TeamID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := r.storage.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Password, &user.Name, &user.Role, &user.TeamID, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования пользователя в списке: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
