package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "bookstore/contexts/identity-access/auth-service/domain/errors"
	"bookstore/contexts/identity-access/auth-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateUser(ctx context.Context, user ports.User) error {
	row := userModelFromPort(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (ports.User, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, false, nil
		}
		return ports.User{}, false, err
	}
	return row.toPort(), true, nil
}

type userModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromPort(user ports.User) userModel {
	return userModel{
		UserID:       user.UserID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt.UTC(),
	}
}

func (m userModel) toPort() ports.User {
	return ports.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         ports.Role(m.Role),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
