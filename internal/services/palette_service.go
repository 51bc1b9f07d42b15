package services

import (
	"context"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
	"github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/ports"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
)

// PaletteService contém a lógica de negócio para paletas: criação,
// visibilidade (pública/privada), remoção e as consultas de listagem
type PaletteService struct {
	paletteRepo repositories.PaletteRepository
	logger      ports.Logger
}

// NewPaletteService cria um novo PaletteService
func NewPaletteService(paletteRepo repositories.PaletteRepository, logger ports.Logger) *PaletteService {
	return &PaletteService{
		paletteRepo: paletteRepo,
		logger:      logger,
	}
}

// CreatePaletteInput representa os dados para criar uma paleta
type CreatePaletteInput struct {
	Name      string
	HexColors []string
	Public    *bool // nil = default true
}

// CreatePalette cria uma nova paleta pertencente ao usuário
func (s *PaletteService) CreatePalette(ctx context.Context, ownerID uint, input CreatePaletteInput) (*entities.Palette, error) {
	palette := &entities.Palette{
		Name:      input.Name,
		HexColors: input.HexColors,
		Public:    true,
		Likes:     0,
		OwnerID:   ownerID,
	}

	if input.Public != nil {
		palette.Public = *input.Public
	}

	if err := palette.Validate(); err != nil {
		return nil, err
	}

	if err := s.paletteRepo.Create(ctx, palette); err != nil {
		return nil, err
	}

	s.logger.Info("palette created", "palette_id", palette.ID, "owner_id", ownerID)
	return palette, nil
}

// SetVisibility aplica a transição pública/privada.
// A transição para o estado atual não é silenciosa: retorna
// ErrPaletteAlreadyPublic/ErrPaletteAlreadyPrivate (Conflict).
func (s *PaletteService) SetVisibility(ctx context.Context, userID, paletteID uint, public bool) error {
	palette, err := s.paletteRepo.FindByID(ctx, paletteID)
	if err != nil {
		return err
	}
	if palette == nil {
		return errors.ErrPaletteNotFound
	}

	if !palette.IsOwnedBy(userID) {
		return errors.ErrForbidden
	}

	if palette.Public == public {
		if public {
			return errors.ErrPaletteAlreadyPublic
		}
		return errors.ErrPaletteAlreadyPrivate
	}

	if err := s.paletteRepo.SetVisibility(ctx, paletteID, public); err != nil {
		return err
	}

	s.logger.Info("palette visibility changed",
		"palette_id", paletteID,
		"public", public,
	)
	return nil
}

// DeletePalette marca a paleta como deletada (soft delete); somente o dono
// pode remover
func (s *PaletteService) DeletePalette(ctx context.Context, userID, paletteID uint) error {
	palette, err := s.paletteRepo.FindByID(ctx, paletteID)
	if err != nil {
		return err
	}
	if palette == nil {
		return errors.ErrPaletteNotFound
	}

	if !palette.IsOwnedBy(userID) {
		return errors.ErrForbidden
	}

	if err := s.paletteRepo.Delete(ctx, paletteID); err != nil {
		return err
	}

	s.logger.Info("palette deleted", "palette_id", paletteID)
	return nil
}

// ListPublic lista paletas públicas, com busca opcional e ordenação
// (newest default, most_likes por contador decrescente)
func (s *PaletteService) ListPublic(ctx context.Context, search, orderBy string) ([]*entities.Palette, error) {
	public := true
	return s.paletteRepo.List(ctx, repositories.PaletteFilters{
		Public:  &public,
		Search:  search,
		OrderBy: orderBy,
	})
}

// ListByOwner lista as paletas do próprio usuário, sempre da mais recente
// para a mais antiga
func (s *PaletteService) ListByOwner(ctx context.Context, ownerID uint, search string) ([]*entities.Palette, error) {
	return s.paletteRepo.List(ctx, repositories.PaletteFilters{
		OwnerID: &ownerID,
		Search:  search,
	})
}

// ListLiked lista as paletas curtidas pelo usuário
func (s *PaletteService) ListLiked(ctx context.Context, userID uint, search string) ([]*entities.Palette, error) {
	return s.paletteRepo.List(ctx, repositories.PaletteFilters{
		LikedBy: &userID,
		Search:  search,
	})
}
