package dto

// RegisterRequest representa a requisição de registro de usuário
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest representa a requisição de atualização do próprio
// usuário; campos ausentes são mantidos
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}
