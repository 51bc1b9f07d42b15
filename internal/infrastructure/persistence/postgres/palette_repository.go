package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
)

// PaletteRepository implementa repositories.PaletteRepository
type PaletteRepository struct {
	db *gorm.DB
}

// NewPaletteRepository cria um novo PaletteRepository
func NewPaletteRepository(db *gorm.DB) repositories.PaletteRepository {
	return &PaletteRepository{db: db}
}

func (r *PaletteRepository) Create(ctx context.Context, palette *entities.Palette) error {
	model := r.toModel(palette)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	palette.ID = model.ID
	palette.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PaletteRepository) FindByID(ctx context.Context, id uint) (*entities.Palette, error) {
	var model PaletteModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PaletteRepository) SetVisibility(ctx context.Context, id uint, public bool) error {
	db := r.getDB(ctx)

	// Escreve só a coluna public: um Save do row inteiro reverteria
	// curtidas que chegaram entre a leitura e a escrita
	result := db.Model(&PaletteModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("public", public)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPaletteNotFound
	}

	return nil
}

func (r *PaletteRepository) List(ctx context.Context, filters repositories.PaletteFilters) ([]*entities.Palette, error) {
	var models []*PaletteModel

	db := r.getDB(ctx)
	query := db.Model(&PaletteModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("palettes.deleted_at IS NULL")

	// Aplicar filtros
	if filters.Public != nil {
		query = query.Where("palettes.public = ?", *filters.Public)
	}

	if filters.OwnerID != nil {
		query = query.Where("palettes.user_id = ?", *filters.OwnerID)
	}

	if filters.LikedBy != nil {
		// Select explícito para não arrastar colunas do join (user_id do
		// ledger colide com o da paleta)
		query = query.
			Select("palettes.*").
			Joins("JOIN user_palette ON user_palette.palette_id = palettes.id").
			Where("user_palette.user_id = ?", *filters.LikedBy)
	}

	if filters.Search != "" {
		// Busca por substring do nome (case-insensitive) OU por cor exata
		// dentro do JSON de hex_colors (mesmo predicado do LIKE '%"cor"%')
		namePattern := "%" + strings.ToLower(filters.Search) + "%"
		colorPattern := `%"` + filters.Search + `"%`
		query = query.Where("LOWER(palettes.name) LIKE ? OR palettes.hex_colors LIKE ?", namePattern, colorPattern)
	}

	// Ordenação: empates são resolvidos por id decrescente para manter
	// a listagem determinística
	if filters.OrderBy == repositories.OrderByMostLikes {
		query = query.Order("palettes.likes DESC, palettes.id DESC")
	} else {
		query = query.Order("palettes.created_at DESC, palettes.id DESC")
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PaletteRepository) IncrementLikes(ctx context.Context, id uint, delta int) error {
	db := r.getDB(ctx)

	// Piso defensivo: o contador nunca fica negativo, mesmo que o estado
	// armazenado já esteja inconsistente com o ledger
	expr := gorm.Expr("likes + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN likes + ? < 0 THEN 0 ELSE likes + ? END", delta, delta)
	}

	return db.Model(&PaletteModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("likes", expr).Error
}

func (r *PaletteRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&PaletteModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *PaletteRepository) DeleteByOwner(ctx context.Context, ownerID uint) error {
	db := r.getDB(ctx)
	now := time.Now().Unix()
	return db.Model(&PaletteModel{}).Where("user_id = ? AND deleted_at IS NULL", ownerID).Update("deleted_at", now).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PaletteRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *PaletteRepository) toModel(palette *entities.Palette) *PaletteModel {
	var deletedAt *int64
	if palette.DeletedAt != nil {
		ts := palette.DeletedAt.Unix()
		deletedAt = &ts
	}

	model := &PaletteModel{
		ID:        palette.ID,
		Name:      palette.Name,
		HexColors: palette.HexColors,
		Public:    palette.Public,
		Likes:     palette.Likes,
		UserID:    palette.OwnerID,
		DeletedAt: deletedAt,
	}

	// Timestamps zerados ficam a cargo do autoCreateTime/autoUpdateTime
	if !palette.CreatedAt.IsZero() {
		model.CreatedAt = palette.CreatedAt.Unix()
	}
	if !palette.UpdatedAt.IsZero() {
		model.UpdatedAt = palette.UpdatedAt.Unix()
	}

	return model
}

func (r *PaletteRepository) toEntity(model *PaletteModel) *entities.Palette {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Palette{
		ID:        model.ID,
		Name:      model.Name,
		HexColors: model.HexColors,
		Public:    model.Public,
		Likes:     model.Likes,
		OwnerID:   model.UserID,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
		DeletedAt: deletedAt,
	}
}

func (r *PaletteRepository) toEntities(models []*PaletteModel) []*entities.Palette {
	result := make([]*entities.Palette, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
