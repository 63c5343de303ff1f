package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jar-rating/internal/domain"
	"jar-rating/internal/repository"
	"jar-rating/internal/service"
)

// ConfigHandler expone la configuración de puntuación: lectura abierta,
// edición protegida por JWT con ciclo editar-y-guardar explícito.
type ConfigHandler struct {
	logger  *zap.Logger
	configs *service.ConfigStore
	files   repository.ConfigRepository
}

func NewConfigHandler(logger *zap.Logger, configs *service.ConfigStore, files repository.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{
		logger:  logger,
		configs: configs,
		files:   files,
	}
}

// Get maneja GET /config.
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.configs.Snapshot())
}

// Update maneja PUT /config: valida, reemplaza la configuración viva y la
// persiste a disco. Los cálculos en curso siguen con su instantánea.
func (h *ConfigHandler) Update(c *gin.Context) {
	var cfg domain.RatingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		h.logger.Warn("invalid config payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.configs.Replace(&cfg); err != nil {
		if errors.Is(err, domain.ErrConfig) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("config replace failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update configuration"})
		return
	}

	if h.files != nil {
		if err := h.files.Save(&cfg); err != nil {
			h.logger.Error("config persist failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "configuration updated but not persisted"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
