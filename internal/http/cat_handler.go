package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/service"
)

// CatHandler expone el catálogo público y el CRUD de administración.
type CatHandler struct {
	logger *zap.Logger
	cats   *service.CatService
}

func NewCatHandler(logger *zap.Logger, cats *service.CatService) *CatHandler {
	return &CatHandler{logger: logger, cats: cats}
}

// ListCats maneja GET /cats con filtros opcionales por query.
func (h *CatHandler) ListCats(c *gin.Context) {
	filter := domain.CatFilter{
		Breed: c.Query("breed"),
		Sex:   c.Query("sex"),
	}
	if raw := c.Query("adopted"); raw != "" {
		adopted, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		filter.Adopted = &adopted
	}

	cats, err := h.cats.FilterCats(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list cats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cats": cats})
}

// GetCat maneja GET /cats/:id.
func (h *CatHandler) GetCat(c *gin.Context) {
	cat, err := h.cats.GetCat(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.logger.Error("get cat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cat": cat})
}

type catRequest struct {
	Name        string `json:"name" binding:"required"`
	Breed       string `json:"breed"`
	AgeMonths   int    `json:"age_months"`
	Sex         string `json:"sex"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

// CreateCat maneja POST /admin/cats.
func (h *CatHandler) CreateCat(c *gin.Context) {
	var req catRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cat, err := h.cats.CreateCat(c.Request.Context(), service.CreateCatInput{
		Name:        req.Name,
		Breed:       req.Breed,
		AgeMonths:   req.AgeMonths,
		Sex:         req.Sex,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		h.logger.Error("create cat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cat": cat})
}

// UpdateCat maneja PUT /admin/cats/:id.
func (h *CatHandler) UpdateCat(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Breed       string `json:"breed"`
		AgeMonths   int    `json:"age_months"`
		Sex         string `json:"sex"`
		Description string `json:"description"`
		PhotoURL    string `json:"photo_url"`
		Adopted     *bool  `json:"adopted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cat, err := h.cats.UpdateCat(c.Request.Context(), c.Param("id"), service.CreateCatInput{
		Name:        req.Name,
		Breed:       req.Breed,
		AgeMonths:   req.AgeMonths,
		Sex:         req.Sex,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}, req.Adopted)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.logger.Error("update cat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cat": cat})
}

// DeleteCat maneja DELETE /admin/cats/:id.
func (h *CatHandler) DeleteCat(c *gin.Context) {
	if err := h.cats.DeleteCat(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.logger.Error("delete cat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
