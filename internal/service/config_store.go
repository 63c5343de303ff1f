package service

import (
	"sync"

	"jar-rating/internal/domain"
)

// ConfigStore mantiene la configuración de puntuación viva. Las lecturas
// entregan copias profundas, de modo que una edición concurrente nunca
// altera un cálculo en curso.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg *domain.RatingConfig
}

func NewConfigStore(cfg *domain.RatingConfig) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

// Snapshot devuelve una copia profunda de la configuración actual.
func (s *ConfigStore) Snapshot() *domain.RatingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Replace valida y cambia la configuración viva en un solo paso.
func (s *ConfigStore) Replace(cfg *domain.RatingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.Clone()
	return nil
}
