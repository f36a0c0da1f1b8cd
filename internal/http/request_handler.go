package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/service"
)

// RequestHandler expone el alta pública de solicitudes y su revisión admin.
type RequestHandler struct {
	logger   *zap.Logger
	requests *service.RequestService
}

func NewRequestHandler(logger *zap.Logger, requests *service.RequestService) *RequestHandler {
	return &RequestHandler{logger: logger, requests: requests}
}

// SubmitRequest maneja POST /adoptions.
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var req struct {
		CatID   string `json:"cat_id" binding:"required"`
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.requests.SubmitRequest(c.Request.Context(), service.SubmitRequestInput{
		CatID: req.CatID,
		Applicant: domain.Applicant{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		},
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrInvalidApplicant), errors.Is(err, service.ErrCatNotAvailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request"})
		default:
			h.logger.Error("submit request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": created})
}

// ListRequests maneja GET /admin/adoptions.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	reqs, err := h.requests.ListRequests(c.Request.Context())
	if err != nil {
		h.logger.Error("list requests failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// GetRequest maneja GET /admin/adoptions/:id.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	req, err := h.requests.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.logger.Error("get request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req})
}

// ReviewRequest maneja POST /admin/adoptions/:id/review.
func (h *RequestHandler) ReviewRequest(c *gin.Context) {
	var req struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reviewed, err := h.requests.Review(c.Request.Context(), c.Param("id"), domain.RequestStatus(req.Decision))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		case errors.Is(err, service.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": "already reviewed"})
		default:
			h.logger.Error("review request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": reviewed})
}

// DeleteRequest maneja DELETE /admin/adoptions/:id.
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.requests.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.logger.Error("delete request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
