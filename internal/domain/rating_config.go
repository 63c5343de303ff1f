package domain

import (
	"errors"
	"fmt"
)

var ErrConfig = errors.New("invalid rating configuration")

// AgeFactorConfig parametriza el factor de edad.
type AgeFactorConfig struct {
	PeakAgeYears              int     `json:"peak_age_years"`
	YouthfulFactorMultiplier  float64 `json:"youthful_factor_multiplier"`
	PowerDeclineRatePerDecade float64 `json:"power_decline_rate_per_decade"`
}

// WeightTier es un tramo del esquema escalonado de diferencia de peso.
// DiffMaxLbs es acumulativo y debe ser estrictamente creciente entre tramos.
type WeightTier struct {
	DiffMaxLbs float64 `json:"diff_max_lbs"`
	Adjustment float64 `json:"adjustment"`
}

// WeightFactorConfig parametriza el factor de peso relativo.
type WeightFactorConfig struct {
	IncrementLbs float64      `json:"increment_lbs"`
	Tiers        []WeightTier `json:"thresholds_bonuses_penalties"`
}

// FactorLevel asocia un nivel discreto con su multiplicador.
type FactorLevel struct {
	LevelID     int     `json:"level_id"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

// FactorConfig es la forma genérica de un factor por niveles.
type FactorConfig struct {
	Levels []FactorLevel `json:"levels"`
}

// MultiplierFor busca el multiplicador del nivel indicado.
func (c FactorConfig) MultiplierFor(levelID int) (float64, bool) {
	for _, level := range c.Levels {
		if level.LevelID == levelID {
			return level.Multiplier, true
		}
	}
	return 0, false
}

// LevelZeroMultiplier devuelve el multiplicador del primer nivel configurado,
// usado como respaldo "None" cuando una búsqueda no mapea.
func (c FactorConfig) LevelZeroMultiplier() float64 {
	if len(c.Levels) == 0 {
		return 1.0
	}
	return c.Levels[0].Multiplier
}

// REFConfig agrega el mapeo arte+nivel -> level_id.
type REFConfig struct {
	FactorConfig
	ArtExperienceLevelMapping map[string]int `json:"art_experience_level_mapping"`
}

// CEFConfig agrega el mapeo de nivel competitivo -> level_id.
type CEFConfig struct {
	FactorConfig
	CompetitionLevelMapping map[string]int `json:"competition_level_mapping"`
}

// TFFBand es una banda inclusiva de sesiones semanales.
type TFFBand struct {
	SessionsMin int     `json:"sessions_min"`
	SessionsMax int     `json:"sessions_max"`
	Multiplier  float64 `json:"multiplier"`
}

// TFFConfig parametriza el factor de frecuencia de entrenamiento.
type TFFConfig struct {
	Levels []TFFBand `json:"levels"`
}

// ProfileDynamicsConfig controla la clasificación de significancia y los
// enunciados narrativos del generador de perfiles.
type ProfileDynamicsConfig struct {
	SignificantMultiplierThresholdHigh float64           `json:"significant_multiplier_threshold_high"`
	SignificantMultiplierThresholdLow  float64           `json:"significant_multiplier_threshold_low"`
	ImplicationStatements              map[string]string `json:"implication_statements"`
	ControlImplicationFactors          []string          `json:"control_implication_factors"`
	SubmissionImplicationFactorsOff    []string          `json:"submission_implication_factors_offense"`
	SubmissionImplicationFactorsDef    []string          `json:"submission_implication_factors_defense"`
}

// RatingConfig es la configuración completa del sistema de puntuación.
// Se carga una vez, se valida al cargar y se trata como de solo lectura
// durante cualquier cálculo.
type RatingConfig struct {
	BeltRankScores  map[string]int        `json:"belt_rank_scores"`
	AgeFactor       AgeFactorConfig       `json:"age_factor_config"`
	WeightFactor    WeightFactorConfig    `json:"weight_factor_config"`
	ACF             FactorConfig          `json:"acf_config"`
	REF             REFConfig             `json:"ref_config"`
	TFF             TFFConfig             `json:"tff_config"`
	CEF             CEFConfig             `json:"cef_config"`
	ProfileDynamics ProfileDynamicsConfig `json:"profile_dynamics_config"`
}

// Validate verifica la estructura completa. Una sección faltante o un
// cinturón requerido ausente es un fallo duro de carga.
func (c *RatingConfig) Validate() error {
	if len(c.BeltRankScores) == 0 {
		return fmt.Errorf("%w: missing required section belt_rank_scores", ErrConfig)
	}
	for _, belt := range RequiredBeltRanks {
		if _, ok := c.BeltRankScores[belt]; !ok {
			return fmt.Errorf("%w: missing required belt rank %q", ErrConfig, belt)
		}
	}
	if c.AgeFactor.PeakAgeYears <= 0 {
		return fmt.Errorf("%w: missing required section age_factor_config", ErrConfig)
	}
	if c.WeightFactor.IncrementLbs <= 0 || len(c.WeightFactor.Tiers) == 0 {
		return fmt.Errorf("%w: missing required section weight_factor_config", ErrConfig)
	}
	prev := 0.0
	for i, tier := range c.WeightFactor.Tiers {
		if tier.DiffMaxLbs <= prev {
			return fmt.Errorf("%w: weight tier %d: diff_max_lbs must be strictly increasing", ErrConfig, i)
		}
		prev = tier.DiffMaxLbs
	}
	if len(c.ACF.Levels) == 0 {
		return fmt.Errorf("%w: missing required section acf_config", ErrConfig)
	}
	if len(c.REF.Levels) == 0 {
		return fmt.Errorf("%w: missing required section ref_config", ErrConfig)
	}
	if len(c.TFF.Levels) == 0 {
		return fmt.Errorf("%w: missing required section tff_config", ErrConfig)
	}
	if len(c.CEF.Levels) == 0 {
		return fmt.Errorf("%w: missing required section cef_config", ErrConfig)
	}
	dyn := c.ProfileDynamics
	if dyn.SignificantMultiplierThresholdHigh == 0 && dyn.SignificantMultiplierThresholdLow == 0 {
		return fmt.Errorf("%w: missing required section profile_dynamics_config", ErrConfig)
	}
	// Precondición de configuración: con high <= low la clasificación de
	// significancia sería contradictoria, así que se rechaza al cargar.
	if dyn.SignificantMultiplierThresholdHigh <= dyn.SignificantMultiplierThresholdLow {
		return fmt.Errorf("%w: significant_multiplier_threshold_high must be greater than threshold_low", ErrConfig)
	}
	return nil
}

// Clone devuelve una copia profunda, para entregar instantáneas de solo
// lectura mientras la configuración viva puede estar siendo editada.
func (c *RatingConfig) Clone() *RatingConfig {
	out := *c

	out.BeltRankScores = make(map[string]int, len(c.BeltRankScores))
	for k, v := range c.BeltRankScores {
		out.BeltRankScores[k] = v
	}

	out.WeightFactor.Tiers = append([]WeightTier(nil), c.WeightFactor.Tiers...)
	out.ACF.Levels = append([]FactorLevel(nil), c.ACF.Levels...)
	out.REF.Levels = append([]FactorLevel(nil), c.REF.Levels...)
	out.CEF.Levels = append([]FactorLevel(nil), c.CEF.Levels...)
	out.TFF.Levels = append([]TFFBand(nil), c.TFF.Levels...)

	out.REF.ArtExperienceLevelMapping = make(map[string]int, len(c.REF.ArtExperienceLevelMapping))
	for k, v := range c.REF.ArtExperienceLevelMapping {
		out.REF.ArtExperienceLevelMapping[k] = v
	}
	out.CEF.CompetitionLevelMapping = make(map[string]int, len(c.CEF.CompetitionLevelMapping))
	for k, v := range c.CEF.CompetitionLevelMapping {
		out.CEF.CompetitionLevelMapping[k] = v
	}

	out.ProfileDynamics.ImplicationStatements = make(map[string]string, len(c.ProfileDynamics.ImplicationStatements))
	for k, v := range c.ProfileDynamics.ImplicationStatements {
		out.ProfileDynamics.ImplicationStatements[k] = v
	}
	out.ProfileDynamics.ControlImplicationFactors = append([]string(nil), c.ProfileDynamics.ControlImplicationFactors...)
	out.ProfileDynamics.SubmissionImplicationFactorsOff = append([]string(nil), c.ProfileDynamics.SubmissionImplicationFactorsOff...)
	out.ProfileDynamics.SubmissionImplicationFactorsDef = append([]string(nil), c.ProfileDynamics.SubmissionImplicationFactorsDef...)

	return &out
}
