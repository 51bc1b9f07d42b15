package dto

import (
	"github.com/rafabene/palettehub-backend/internal/domain/entities"
)

// CreatePaletteRequest representa a requisição para criar uma paleta
type CreatePaletteRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=14"`
	HexColors []string `json:"hex_colors" binding:"required,min=2,max=5,dive,hexcolor"`
	Public    *bool    `json:"public"`
}

// ListPalettesQuery representa os parâmetros de busca das listagens
type ListPalettesQuery struct {
	Search  string `form:"search" binding:"omitempty,max=500"`
	OrderBy string `form:"order_by" binding:"omitempty,oneof=newest most_likes"`
}

// PaletteResponse é a projeção de paleta devolvida pelas listagens.
// Artefatos do ledger e marcadores de soft delete ficam de fora.
type PaletteResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	HexColors []string `json:"hex_colors"`
	Public    bool     `json:"public"`
	Likes     int64    `json:"likes"`
	UserID    uint     `json:"user_id"`
}

// ToPaletteResponse converte uma entidade Palette para PaletteResponse
func ToPaletteResponse(palette *entities.Palette) PaletteResponse {
	return PaletteResponse{
		ID:        palette.ID,
		Name:      palette.Name,
		HexColors: palette.HexColors,
		Public:    palette.Public,
		Likes:     palette.Likes,
		UserID:    palette.OwnerID,
	}
}

// ToPaletteResponses converte uma lista de entidades Palette
func ToPaletteResponses(palettes []*entities.Palette) []PaletteResponse {
	responses := make([]PaletteResponse, len(palettes))
	for i, palette := range palettes {
		responses[i] = ToPaletteResponse(palette)
	}
	return responses
}
