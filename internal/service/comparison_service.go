package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jar-rating/internal/domain"
	"jar-rating/internal/repository"
)

const reportCacheTTL = 5 * time.Minute

// ComparisonService orquesta el flujo completo de una comparación:
// instantánea de configuración, factores para ambos practicantes,
// puntajes, perfiles y reporte de emparejamiento.
type ComparisonService struct {
	logger        *zap.Logger
	configs       *ConfigStore
	cache         ReportCache
	practitioners repository.PractitionerRepository
}

func NewComparisonService(
	logger *zap.Logger,
	configs *ConfigStore,
	cache ReportCache,
	practitioners repository.PractitionerRepository,
) *ComparisonService {
	if cache == nil {
		cache = NewMemoryReportCache()
	}
	return &ComparisonService{
		logger:        logger,
		configs:       configs,
		cache:         cache,
		practitioners: practitioners,
	}
}

// validatePractitioner aplica los rangos numéricos y la membresía de los
// enums contra la configuración dada.
func validatePractitioner(cfg *domain.RatingConfig, p domain.Practitioner) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := cfg.BeltRankScores[p.BJJBeltRank]; !ok {
		return fmt.Errorf("%w: unknown belt rank %q", domain.ErrValidation, p.BJJBeltRank)
	}
	if _, ok := cfg.CEF.CompetitionLevelMapping[p.CompetitionExperienceLevel]; !ok {
		return fmt.Errorf("%w: unknown competition level %q", domain.ErrValidation, p.CompetitionExperienceLevel)
	}
	return nil
}

// ScoreResult agrupa factores y puntaje de un practicante.
type ScoreResult struct {
	Practitioner     string               `json:"practitioner"`
	Factors          domain.FactorResults `json:"factors"`
	HandicappedScore float64              `json:"handicapped_score"`
}

// Score calcula los factores y el puntaje de un practicante, con un
// practicante de comparación opcional para el factor de peso.
func (s *ComparisonService) Score(p domain.Practitioner, comparison *domain.Practitioner) (ScoreResult, error) {
	cfg := s.configs.Snapshot()

	if err := validatePractitioner(cfg, p); err != nil {
		return ScoreResult{}, err
	}
	if comparison != nil {
		if err := validatePractitioner(cfg, *comparison); err != nil {
			return ScoreResult{}, err
		}
	}

	calculator := NewCalculator(cfg)
	factors, err := calculator.CalculateAllFactors(p, comparison)
	if err != nil {
		return ScoreResult{}, err
	}
	return ScoreResult{
		Practitioner:     p.Name,
		Factors:          factors,
		HandicappedScore: factors.HandicappedScore(),
	}, nil
}

// ComparisonResult es la salida completa de una comparación de dos
// practicantes.
type ComparisonResult struct {
	A      ScoreResult          `json:"a"`
	B      ScoreResult          `json:"b"`
	Report domain.MatchupReport `json:"report"`
}

// Compare calcula factores, puntajes, perfiles y reporte para un par.
// El resultado se cachea por un TTL corto bajo una clave que incluye la
// configuración, así una edición invalida naturalmente la caché.
func (s *ComparisonService) Compare(ctx context.Context, a, b domain.Practitioner) (ComparisonResult, error) {
	cfg := s.configs.Snapshot()

	if err := validatePractitioner(cfg, a); err != nil {
		return ComparisonResult{}, err
	}
	if err := validatePractitioner(cfg, b); err != nil {
		return ComparisonResult{}, err
	}

	calculator := NewCalculator(cfg)
	factorsA, err := calculator.CalculateAllFactors(a, &b)
	if err != nil {
		return ComparisonResult{}, err
	}
	factorsB, err := calculator.CalculateAllFactors(b, &a)
	if err != nil {
		return ComparisonResult{}, err
	}

	scoreA := factorsA.HandicappedScore()
	scoreB := factorsB.HandicappedScore()

	result := ComparisonResult{
		A: ScoreResult{Practitioner: a.Name, Factors: factorsA, HandicappedScore: scoreA},
		B: ScoreResult{Practitioner: b.Name, Factors: factorsB, HandicappedScore: scoreB},
	}

	cacheKey := comparisonCacheKey(cfg, a, b)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		result.Report = cached
		return result, nil
	}

	generator := NewProfileGenerator(cfg)
	profileA := generator.GenerateProfile(a, factorsA, scoreA)
	profileB := generator.GenerateProfile(b, factorsB, scoreB)
	result.Report = BuildMatchupReport(profileA, profileB)

	s.cache.Set(ctx, cacheKey, result.Report, reportCacheTTL)
	if s.logger != nil {
		s.logger.Info("comparison computed",
			zap.String("a", a.Name),
			zap.String("b", b.Name),
			zap.Float64("score_a", scoreA),
			zap.Float64("score_b", scoreB),
			zap.String("matchup_type", result.Report.MatchupType),
		)
	}
	return result, nil
}

// CompareSaved carga dos practicantes guardados por ID y los compara.
func (s *ComparisonService) CompareSaved(ctx context.Context, idA, idB string) (ComparisonResult, error) {
	if s.practitioners == nil {
		return ComparisonResult{}, fmt.Errorf("practitioner storage not configured")
	}
	recordA, err := s.practitioners.GetByID(ctx, idA)
	if err != nil {
		return ComparisonResult{}, err
	}
	recordB, err := s.practitioners.GetByID(ctx, idB)
	if err != nil {
		return ComparisonResult{}, err
	}
	return s.Compare(ctx, recordA.ToPractitioner(), recordB.ToPractitioner())
}

func comparisonCacheKey(cfg *domain.RatingConfig, a, b domain.Practitioner) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(cfg)
	_ = enc.Encode(a)
	_ = enc.Encode(b)
	return hex.EncodeToString(h.Sum(nil))
}
