package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jar-rating/internal/domain"
	"jar-rating/internal/email"
	"jar-rating/internal/repository"
	"jar-rating/internal/service"
)

// ComparisonHandler expone el cálculo de puntajes y comparaciones.
type ComparisonHandler struct {
	logger      *zap.Logger
	comparisons *service.ComparisonService
	sender      email.Sender
}

func NewComparisonHandler(logger *zap.Logger, comparisons *service.ComparisonService, sender email.Sender) *ComparisonHandler {
	return &ComparisonHandler{
		logger:      logger,
		comparisons: comparisons,
		sender:      sender,
	}
}

// Score maneja POST /score.
func (h *ComparisonHandler) Score(c *gin.Context) {
	var req struct {
		Practitioner domain.Practitioner  `json:"practitioner" binding:"required"`
		Comparison   *domain.Practitioner `json:"comparison"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.comparisons.Score(req.Practitioner, req.Comparison)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("score failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not calculate score"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Compare maneja POST /compare.
func (h *ComparisonHandler) Compare(c *gin.Context) {
	var req struct {
		A domain.Practitioner `json:"practitioner_a" binding:"required"`
		B domain.Practitioner `json:"practitioner_b" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compare request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.comparisons.Compare(c.Request.Context(), req.A, req.B)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("compare failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compare practitioners"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompareSaved maneja POST /compare/saved.
func (h *ComparisonHandler) CompareSaved(c *gin.Context) {
	var req struct {
		IDA string `json:"id_a" binding:"required"`
		IDB string `json:"id_b" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.comparisons.CompareSaved(c.Request.Context(), req.IDA, req.IDB)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "practitioner not found"})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("compare saved failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compare practitioners"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ShareReport maneja POST /comparisons/share: envía por correo un reporte
// de emparejamiento renderizado como texto.
func (h *ComparisonHandler) ShareReport(c *gin.Context) {
	var req struct {
		To string              `json:"to" binding:"required,email"`
		A  domain.Practitioner `json:"practitioner_a" binding:"required"`
		B  domain.Practitioner `json:"practitioner_b" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.comparisons.Compare(c.Request.Context(), req.A, req.B)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("compare for share failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compare practitioners"})
		return
	}

	subject, body := email.RenderMatchupReport(result.Report, result.A.HandicappedScore, result.B.HandicappedScore)
	if err := h.sender.Send(req.To, subject, body); err != nil {
		h.logger.Error("share report email failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not send report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
