package entities

import (
	"fmt"
	"time"

	domainerrors "github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/valueobjects"
)

// UserNameMaxLen é o tamanho máximo do nome do usuário
const UserNameMaxLen = 20

// User representa um usuário do sistema
type User struct {
	ID           uint
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Restore restaura um usuário deletado
func (u *User) Restore() {
	u.DeletedAt = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.IsZero() {
		return fmt.Errorf("%w: email is required", domainerrors.ErrValidation)
	}

	if u.Name == "" {
		return fmt.Errorf("%w: name is required", domainerrors.ErrValidation)
	}

	if len(u.Name) > UserNameMaxLen {
		return fmt.Errorf("%w: name must be at most %d characters", domainerrors.ErrValidation, UserNameMaxLen)
	}

	return nil
}
