package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/handlers/dto"
	"github.com/rafabene/palettehub-backend/internal/handlers/middleware"
	"github.com/rafabene/palettehub-backend/internal/services"
)

// PaletteHandler lida com requisições HTTP relacionadas a paletas
type PaletteHandler struct {
	paletteService    *services.PaletteService
	engagementService *services.EngagementService
}

// NewPaletteHandler cria um novo PaletteHandler
func NewPaletteHandler(
	paletteService *services.PaletteService,
	engagementService *services.EngagementService,
) *PaletteHandler {
	return &PaletteHandler{
		paletteService:    paletteService,
		engagementService: engagementService,
	}
}

// Create cria uma nova paleta pertencente ao usuário autenticado
func (h *PaletteHandler) Create(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	var req dto.CreatePaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	_, err := h.paletteService.CreatePalette(c.Request.Context(), userID, services.CreatePaletteInput{
		Name:      req.Name,
		HexColors: req.HexColors,
		Public:    req.Public,
	})
	if err != nil {
		if errs.Is(err, errors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResponseI18n(c, "error.validation"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponseI18n(c, "palette.added"))
}

// ListPublic lista paletas públicas; aceita search e order_by
// (newest | most_likes)
func (h *PaletteHandler) ListPublic(c *gin.Context) {
	var query dto.ListPalettesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	palettes, err := h.paletteService.ListPublic(c.Request.Context(), query.Search, query.OrderBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponseI18n(c, dto.ToPaletteResponses(palettes), "palette.public_retrieved"))
}

// ListOwn lista as paletas do usuário autenticado
func (h *PaletteHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	var query dto.ListPalettesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	palettes, err := h.paletteService.ListByOwner(c.Request.Context(), userID, query.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponseI18n(c, dto.ToPaletteResponses(palettes), "palette.retrieved"))
}

// ListLiked lista as paletas curtidas pelo usuário autenticado
func (h *PaletteHandler) ListLiked(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	var query dto.ListPalettesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	palettes, err := h.paletteService.ListLiked(c.Request.Context(), userID, query.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponseI18n(c, dto.ToPaletteResponses(palettes), "palette.liked_retrieved"))
}

// Like registra a curtida do usuário autenticado na paleta
func (h *PaletteHandler) Like(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	paletteID, ok := parsePaletteID(c)
	if !ok {
		return
	}

	err := h.engagementService.LikePalette(c.Request.Context(), userID, paletteID)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrPaletteNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponseI18n(c, "error.invalid_palette_id"))
		case errs.Is(err, errors.ErrPaletteAlreadyLiked):
			c.JSON(http.StatusConflict, dto.MessageResponseI18n(c, "error.palette_already_liked"))
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "palette.liked"))
}

// Unlike remove a curtida do usuário autenticado na paleta
func (h *PaletteHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	paletteID, ok := parsePaletteID(c)
	if !ok {
		return
	}

	err := h.engagementService.UnlikePalette(c.Request.Context(), userID, paletteID)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrPaletteNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponseI18n(c, "error.invalid_palette_id"))
		case errs.Is(err, errors.ErrPaletteNotLiked):
			c.JSON(http.StatusConflict, dto.MessageResponseI18n(c, "error.palette_not_liked"))
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "palette.unliked"))
}

// SetPrivate torna a paleta privada (somente o dono)
func (h *PaletteHandler) SetPrivate(c *gin.Context) {
	h.setVisibility(c, false)
}

// SetPublic torna a paleta pública (somente o dono)
func (h *PaletteHandler) SetPublic(c *gin.Context) {
	h.setVisibility(c, true)
}

func (h *PaletteHandler) setVisibility(c *gin.Context, public bool) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	paletteID, ok := parsePaletteID(c)
	if !ok {
		return
	}

	err := h.paletteService.SetVisibility(c.Request.Context(), userID, paletteID, public)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrPaletteNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponseI18n(c, "error.palette_not_found"))
		case errs.Is(err, errors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.MessageResponseI18n(c, "error.forbidden"))
		case errs.Is(err, errors.ErrPaletteAlreadyPublic):
			c.JSON(http.StatusConflict, dto.MessageResponseI18n(c, "error.palette_already_public"))
		case errs.Is(err, errors.ErrPaletteAlreadyPrivate):
			c.JSON(http.StatusConflict, dto.MessageResponseI18n(c, "error.palette_already_private"))
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		}
		return
	}

	if public {
		c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "palette.set_public"))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "palette.set_private"))
}

// Delete remove (soft delete) a paleta do usuário autenticado
func (h *PaletteHandler) Delete(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	paletteID, ok := parsePaletteID(c)
	if !ok {
		return
	}

	err := h.paletteService.DeletePalette(c.Request.Context(), userID, paletteID)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrPaletteNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponseI18n(c, "error.palette_not_found"))
		case errs.Is(err, errors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.MessageResponseI18n(c, "error.palette_delete_forbidden"))
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "palette.removed"))
}

// parsePaletteID extrai o ID da paleta do path; ID malformado é tratado
// como paleta inexistente (404)
func parsePaletteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponseI18n(c, "error.invalid_palette_id"))
		return 0, false
	}
	return uint(id), true
}
