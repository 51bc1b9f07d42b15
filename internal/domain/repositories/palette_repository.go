package repositories

import (
	"context"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
)

// Ordenações suportadas na listagem de paletas
const (
	OrderByNewest    = "newest"
	OrderByMostLikes = "most_likes"
)

// PaletteFilters contém filtros para listagem de paletas.
// Registros soft-deleted são sempre excluídos.
type PaletteFilters struct {
	Public  *bool  // filtra por visibilidade
	OwnerID *uint  // filtra por dono
	LikedBy *uint  // filtra por paletas curtidas pelo usuário (join com o ledger)
	Search  string // substring do nome (case-insensitive) OU cor exata
	OrderBy string // OrderByNewest (default) ou OrderByMostLikes
}

// PaletteRepository define a interface para persistência de paletas
type PaletteRepository interface {
	Create(ctx context.Context, palette *entities.Palette) error
	FindByID(ctx context.Context, id uint) (*entities.Palette, error)
	// SetVisibility grava somente a coluna public, sem tocar no contador
	// de curtidas nem nos demais campos; retorna errors.ErrPaletteNotFound
	// se a paleta não existe ou já foi deletada.
	SetVisibility(ctx context.Context, id uint, public bool) error
	List(ctx context.Context, filters PaletteFilters) ([]*entities.Palette, error)
	// IncrementLikes soma delta ao contador de forma atômica; o valor
	// persistido nunca fica abaixo de zero.
	IncrementLikes(ctx context.Context, id uint, delta int) error
	// Delete marca a paleta como deletada (soft delete)
	Delete(ctx context.Context, id uint) error
	// DeleteByOwner marca como deletadas todas as paletas ativas do dono
	DeleteByOwner(ctx context.Context, ownerID uint) error
}

// LikeRepository define a interface para o ledger de curtidas (user_palette).
// Uma linha existente é a fonte de verdade de que a curtida está ativa.
type LikeRepository interface {
	// Create insere a linha (user, palette); retorna
	// errors.ErrPaletteAlreadyLiked em violação de unicidade.
	Create(ctx context.Context, userID, paletteID uint) error
	Exists(ctx context.Context, userID, paletteID uint) (bool, error)
	// Delete remove a linha de forma definitiva (hard delete); retorna
	// errors.ErrPaletteNotLiked se a linha já não existe, para que a
	// transação desfaça o decremento do contador.
	Delete(ctx context.Context, userID, paletteID uint) error
	CountByPalette(ctx context.Context, paletteID uint) (int64, error)
}
