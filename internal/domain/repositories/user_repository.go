package repositories

import (
	"context"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// Delete marca o usuário como deletado (soft delete)
	Delete(ctx context.Context, id uint) error
}
