package services

import (
	"context"

	"github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/ports"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
)

// EngagementService mantém o contador de curtidas da paleta sincronizado
// com o ledger user_palette. As duas escritas acontecem sempre dentro da
// mesma transação: ou ambas são aplicadas, ou nenhuma.
type EngagementService struct {
	paletteRepo repositories.PaletteRepository
	likeRepo    repositories.LikeRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewEngagementService cria um novo EngagementService
func NewEngagementService(
	paletteRepo repositories.PaletteRepository,
	likeRepo repositories.LikeRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *EngagementService {
	return &EngagementService{
		paletteRepo: paletteRepo,
		likeRepo:    likeRepo,
		uow:         uow,
		logger:      logger,
	}
}

// LikePalette registra a curtida do usuário na paleta.
// Retorna ErrPaletteNotFound para paleta inexistente ou deletada e
// ErrPaletteAlreadyLiked para curtida duplicada.
func (s *EngagementService) LikePalette(ctx context.Context, userID, paletteID uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		palette, err := s.paletteRepo.FindByID(txCtx, paletteID)
		if err != nil {
			return err
		}
		if palette == nil {
			return errors.ErrPaletteNotFound
		}

		liked, err := s.likeRepo.Exists(txCtx, userID, paletteID)
		if err != nil {
			return err
		}
		if liked {
			return errors.ErrPaletteAlreadyLiked
		}

		if err := s.paletteRepo.IncrementLikes(txCtx, paletteID, 1); err != nil {
			return err
		}

		// Dois likes concorrentes do mesmo par (user, palette): o índice
		// único do ledger rejeita o segundo insert e o rollback desfaz o
		// incremento acima
		if err := s.likeRepo.Create(txCtx, userID, paletteID); err != nil {
			return err
		}

		s.logger.Info("palette liked", "user_id", userID, "palette_id", paletteID)
		return nil
	})
}

// UnlikePalette remove a curtida do usuário na paleta.
// Retorna ErrPaletteNotLiked quando não há linha no ledger.
func (s *EngagementService) UnlikePalette(ctx context.Context, userID, paletteID uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		palette, err := s.paletteRepo.FindByID(txCtx, paletteID)
		if err != nil {
			return err
		}
		if palette == nil {
			return errors.ErrPaletteNotFound
		}

		liked, err := s.likeRepo.Exists(txCtx, userID, paletteID)
		if err != nil {
			return err
		}
		if !liked {
			return errors.ErrPaletteNotLiked
		}

		if palette.Likes <= 0 {
			// Estado já inconsistente: há linha no ledger mas o contador
			// está zerado. O decremento abaixo trava no piso zero.
			s.logger.Warn("like counter underflow detected",
				"palette_id", paletteID,
				"likes", palette.Likes,
			)
		}

		if err := s.paletteRepo.IncrementLikes(txCtx, paletteID, -1); err != nil {
			return err
		}

		// Dois unlikes concorrentes do mesmo par: o segundo delete não
		// encontra a linha, devolve ErrPaletteNotLiked e o rollback
		// desfaz o decremento acima
		if err := s.likeRepo.Delete(txCtx, userID, paletteID); err != nil {
			return err
		}

		s.logger.Info("palette unliked", "user_id", userID, "palette_id", paletteID)
		return nil
	})
}
