package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func baseSelectUser() string {
	return `SELECT id, email, password_hash, display_name, created_at FROM users`
}

func (r *userRepo) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, display_name, created_at)
		VALUES ($1,$2,$3,$4, NOW())
	`, u.ID, u.Email, u.PasswordHash, u.DisplayName)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE id=$1`, id)
	return r.scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE lower(email)=lower($1)`, email)
	return r.scanUser(row)
}
