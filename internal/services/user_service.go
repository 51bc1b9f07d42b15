package services

import (
	"context"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
	"github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/ports"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
	"github.com/rafabene/palettehub-backend/internal/domain/valueobjects"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/auth"
)

// UserService contém a lógica de negócio para usuários: registro, login,
// atualização e a remoção em cascata da conta
type UserService struct {
	userRepo    repositories.UserRepository
	paletteRepo repositories.PaletteRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	paletteRepo repositories.PaletteRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		paletteRepo: paletteRepo,
		uow:         uow,
		logger:      logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register cria um novo usuário com senha hasheada
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	s.logger.Info("registering user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	// Unicidade de email entre usuários não deletados
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login autentica um usuário por email e senha
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	// Normaliza como no registro; email malformado nunca casa com conta
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

// UpdateInput representa os dados para atualizar o próprio usuário.
// Campos nil são mantidos.
type UpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Update atualiza os dados do próprio usuário
func (s *UserService) Update(ctx context.Context, userID uint, input UpdateInput) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return errors.ErrInvalidEmail
		}

		// Unicidade excluindo o próprio usuário
		existing, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != userID {
			return errors.ErrEmailAlreadyExists
		}

		user.Email = email
	}

	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		return err
	}

	return s.userRepo.Update(ctx, user)
}

// DeleteAccount remove a conta do próprio usuário: soft-delete de todas as
// suas paletas e do registro do usuário, dentro de uma única transação.
// As linhas do ledger referenciando as paletas deletadas são mantidas como
// histórico inerte.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.paletteRepo.DeleteByOwner(txCtx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user account deleted", "user_id", userID)
	return nil
}
