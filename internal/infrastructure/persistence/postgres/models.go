package postgres

// UserModel é o model GORM para usuários.
// O índice único parcial em email vale só para linhas não deletadas:
// uma conta deletada libera o endereço para novo registro, e inserts
// concorrentes do mesmo email são resolvidos pelo banco.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);not null;index:idx_users_email,unique,where:deleted_at IS NULL"`
	Name         string `gorm:"type:varchar(20);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// PaletteModel é o model GORM para paletas.
// HexColors é persistido como JSON em coluna de texto, preservando a ordem.
type PaletteModel struct {
	ID        uint     `gorm:"primaryKey"`
	Name      string   `gorm:"type:varchar(14);not null"`
	HexColors []string `gorm:"serializer:json;type:text;not null"`
	Public    bool     `gorm:"not null;default:true;index"`
	Likes     int64    `gorm:"not null;default:0"`
	UserID    uint     `gorm:"not null;index"`
	CreatedAt int64    `gorm:"autoCreateTime;index"`
	UpdatedAt int64    `gorm:"autoUpdateTime"`
	DeletedAt *int64   `gorm:"index"` // Soft delete
}

func (PaletteModel) TableName() string {
	return "palettes"
}

// UserPaletteModel é o ledger de curtidas (join user <-> palette).
// O índice único em (user_id, palette_id) é a guarda de concorrência:
// um insert duplicado falha no banco e vira Conflict na camada de cima.
type UserPaletteModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_user_palette"`
	PaletteID uint  `gorm:"not null;uniqueIndex:idx_user_palette"`
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (UserPaletteModel) TableName() string {
	return "user_palette"
}
