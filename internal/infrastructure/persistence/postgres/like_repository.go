package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
)

// LikeRepository implementa repositories.LikeRepository sobre a tabela
// user_palette
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository cria um novo LikeRepository
func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, userID, paletteID uint) error {
	db := r.getDB(ctx)

	model := &UserPaletteModel{
		UserID:    userID,
		PaletteID: paletteID,
	}

	if err := db.Create(model).Error; err != nil {
		// O índice único (user_id, palette_id) é a guarda autoritativa
		// contra curtidas concorrentes do mesmo par
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrPaletteAlreadyLiked
		}
		return err
	}

	return nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID, paletteID uint) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&UserPaletteModel{}).
		Where("user_id = ? AND palette_id = ?", userID, paletteID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, paletteID uint) error {
	db := r.getDB(ctx)

	// Remoção definitiva: o ledger não usa soft delete. A linha removida
	// é a guarda autoritativa contra unlikes concorrentes: se outra
	// transação já removeu a curtida, zero linhas são afetadas e o erro
	// abaixo desfaz o decremento feito na mesma transação.
	result := db.Where("user_id = ? AND palette_id = ?", userID, paletteID).
		Delete(&UserPaletteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPaletteNotLiked
	}

	return nil
}

func (r *LikeRepository) CountByPalette(ctx context.Context, paletteID uint) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&UserPaletteModel{}).
		Where("palette_id = ?", paletteID).
		Count(&count).Error

	return count, err
}

// getDB extrai DB do contexto (para suportar transações)
func (r *LikeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
