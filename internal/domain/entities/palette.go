package entities

import (
	"fmt"
	"regexp"
	"time"

	domainerrors "github.com/rafabene/palettehub-backend/internal/domain/errors"
)

const (
	// PaletteNameMaxLen é o tamanho máximo do nome na criação
	PaletteNameMaxLen = 14
	// PaletteMinColors / PaletteMaxColors limitam a sequência de cores
	PaletteMinColors = 2
	PaletteMaxColors = 5
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette representa uma paleta de cores criada por um usuário.
// A ordem de HexColors é significativa e preservada como recebida.
type Palette struct {
	ID        uint
	Name      string
	HexColors []string
	Public    bool
	Likes     int64
	OwnerID   uint
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// IsDeleted verifica se a paleta foi deletada (soft delete)
func (p *Palette) IsDeleted() bool {
	return p.DeletedAt != nil
}

// SoftDelete marca a paleta como deletada
func (p *Palette) SoftDelete() {
	now := time.Now()
	p.DeletedAt = &now
}

// IsOwnedBy verifica se o usuário é o dono da paleta
func (p *Palette) IsOwnedBy(userID uint) bool {
	return p.OwnerID == userID
}

// Validate valida regras de negócio da entidade Palette
func (p *Palette) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", domainerrors.ErrValidation)
	}

	if len(p.Name) > PaletteNameMaxLen {
		return fmt.Errorf("%w: name must be at most %d characters", domainerrors.ErrValidation, PaletteNameMaxLen)
	}

	if len(p.HexColors) < PaletteMinColors || len(p.HexColors) > PaletteMaxColors {
		return fmt.Errorf("%w: palette must have between %d and %d colors",
			domainerrors.ErrValidation, PaletteMinColors, PaletteMaxColors)
	}

	for _, color := range p.HexColors {
		if !hexColorPattern.MatchString(color) {
			return fmt.Errorf("%w: invalid hex color %s", domainerrors.ErrValidation, color)
		}
	}

	if p.Likes < 0 {
		return fmt.Errorf("%w: likes must not be negative", domainerrors.ErrValidation)
	}

	return nil
}
