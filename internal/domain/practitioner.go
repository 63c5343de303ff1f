package domain

import (
	"errors"
	"fmt"
)

// Rangos válidos para los campos numéricos de un practicante.
const (
	MinAgeYears  = 16
	MaxAgeYears  = 90
	MinWeightLbs = 80.0
	MaxWeightLbs = 400.0
	MinFitness   = 0
	MaxFitness   = 100
	MinSessions  = 0
	MaxSessions  = 14
)

// RequiredBeltRanks son los cinturones que toda configuración debe puntuar.
var RequiredBeltRanks = []string{"White", "Blue", "Purple", "Brown", "Black"}

var ErrValidation = errors.New("practitioner validation failed")

// GrapplingExperience describe experiencia previa en otro arte de agarre.
type GrapplingExperience struct {
	ArtName                   string `json:"art_name"`
	ExperienceLevelDescriptor string `json:"experience_level_descriptor"`
}

// Practitioner es el objeto de valor inmutable con los atributos de un
// practicante. Se construye por comparación y nunca se muta después.
type Practitioner struct {
	Name        string  `json:"name"`
	BJJBeltRank string  `json:"bjj_belt_rank"`
	AgeYears    int     `json:"age_years"`
	WeightLbs   float64 `json:"weight_lbs"`
	// Campo legado, sin efecto en ningún factor calculado.
	PrimaryOccupationActivityLevel string                `json:"primary_occupation_activity_level,omitempty"`
	FitnessPercentile              int                   `json:"standardized_fitness_test_percentile_estimate"`
	OtherGrapplingArtExperience    []GrapplingExperience `json:"other_grappling_art_experience"`
	TrainingSessionsPerWeek        int                   `json:"bjj_training_sessions_per_week"`
	CompetitionExperienceLevel     string                `json:"bjj_competition_experience_level"`
	PractitionerID                 string                `json:"practitioner_id,omitempty"`
}

// NewPractitioner construye un practicante validado. Cualquier campo numérico
// fuera de rango devuelve ErrValidation y ningún registro parcial.
func NewPractitioner(p Practitioner) (Practitioner, error) {
	if err := p.Validate(); err != nil {
		return Practitioner{}, err
	}
	return p, nil
}

// Validate verifica los rangos inclusivos de los campos numéricos.
func (p Practitioner) Validate() error {
	if p.AgeYears < MinAgeYears || p.AgeYears > MaxAgeYears {
		return fmt.Errorf("%w: age must be between %d and %d (got %d)", ErrValidation, MinAgeYears, MaxAgeYears, p.AgeYears)
	}
	if p.WeightLbs < MinWeightLbs || p.WeightLbs > MaxWeightLbs {
		return fmt.Errorf("%w: weight must be between %.0f and %.0f lbs (got %.1f)", ErrValidation, MinWeightLbs, MaxWeightLbs, p.WeightLbs)
	}
	if p.FitnessPercentile < MinFitness || p.FitnessPercentile > MaxFitness {
		return fmt.Errorf("%w: fitness percentile must be between %d and %d (got %d)", ErrValidation, MinFitness, MaxFitness, p.FitnessPercentile)
	}
	if p.TrainingSessionsPerWeek < MinSessions || p.TrainingSessionsPerWeek > MaxSessions {
		return fmt.Errorf("%w: training sessions must be between %d and %d per week (got %d)", ErrValidation, MinSessions, MaxSessions, p.TrainingSessionsPerWeek)
	}
	return nil
}
