package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"jar-rating/internal/domain"
)

// ConfigRepository carga y guarda la configuración de puntuación.
type ConfigRepository interface {
	Load() (*domain.RatingConfig, error)
	Save(cfg *domain.RatingConfig) error
}

// FileConfigRepository lee y escribe la configuración como JSON,
// preservando el formato de los archivos de configuración legados
// (round-trip sin pérdida).
type FileConfigRepository struct {
	path string
}

func NewFileConfigRepository(path string) *FileConfigRepository {
	return &FileConfigRepository{path: path}
}

// Load lee y valida la configuración. Una sección faltante o un cinturón
// requerido ausente es un fallo duro: no se continúa con una configuración
// parcialmente válida.
func (r *FileConfigRepository) Load() (*domain.RatingConfig, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading rating config %s: %w", r.path, err)
	}
	var cfg domain.RatingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing rating config %s: %w", r.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save persiste la configuración con sangría de dos espacios, como los
// archivos originales.
func (r *FileConfigRepository) Save(cfg *domain.RatingConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
