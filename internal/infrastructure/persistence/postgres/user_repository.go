package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
	"github.com/rafabene/palettehub-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		// Registros concorrentes do mesmo email: o índice único parcial
		// rejeita o segundo insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("email = ? AND deleted_at IS NULL", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&UserModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	model := &UserModel{
		ID:           user.ID,
		Email:        user.Email.String(),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		DeletedAt:    deletedAt,
	}

	// Timestamps zerados ficam a cargo do autoCreateTime/autoUpdateTime
	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		model.UpdatedAt = user.UpdatedAt.Unix()
	}

	return model
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.User{
		ID:           model.ID,
		Email:        email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
		DeletedAt:    deletedAt,
	}, nil
}
