package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"jar-rating/internal/domain"
	"jar-rating/internal/repository"
	"jar-rating/internal/service"
)

// PractitionerHandler expone el almacenamiento de practicantes guardados.
type PractitionerHandler struct {
	logger        *zap.Logger
	practitioners repository.PractitionerRepository
	comparisons   *service.ComparisonService
}

func NewPractitionerHandler(logger *zap.Logger, practitioners repository.PractitionerRepository, comparisons *service.ComparisonService) *PractitionerHandler {
	return &PractitionerHandler{
		logger:        logger,
		practitioners: practitioners,
		comparisons:   comparisons,
	}
}

// Create maneja POST /practitioners. El cuerpo usa la forma legada del
// registro guardado; el vector de factores se calcula al guardar.
func (h *PractitionerHandler) Create(c *gin.Context) {
	var record domain.PractitionerRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid practitioner payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Los factores sin comparación fijan el vector de similitud.
	result, err := h.comparisons.Score(record.ToPractitioner(), nil)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("score for save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save practitioner"})
		return
	}

	saved, err := h.practitioners.Save(c.Request.Context(), record, pgvector.NewVector(result.Factors.Vector()))
	if err != nil {
		h.logger.Error("save practitioner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save practitioner"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"practitioner": saved, "factors": result.Factors, "handicapped_score": result.HandicappedScore})
}

// List maneja GET /practitioners.
func (h *PractitionerHandler) List(c *gin.Context) {
	records, err := h.practitioners.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list practitioners failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list practitioners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": records})
}

// Get maneja GET /practitioners/:id.
func (h *PractitionerHandler) Get(c *gin.Context) {
	record, err := h.practitioners.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "practitioner not found"})
			return
		}
		h.logger.Error("get practitioner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load practitioner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioner": record})
}

// Delete maneja DELETE /practitioners/:id.
func (h *PractitionerHandler) Delete(c *gin.Context) {
	if err := h.practitioners.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "practitioner not found"})
			return
		}
		h.logger.Error("delete practitioner failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete practitioner"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Similar maneja GET /practitioners/:id/similar?k=5, vecinos en el
// espacio de factores.
func (h *PractitionerHandler) Similar(c *gin.Context) {
	k, err := strconv.Atoi(c.DefaultQuery("k", "5"))
	if err != nil || k <= 0 {
		k = 5
	}
	records, err := h.practitioners.ListSimilar(c.Request.Context(), c.Param("id"), k)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "practitioner not found"})
			return
		}
		h.logger.Error("similar practitioners failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar practitioners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": records})
}
