package domain

// Rating es una valoración cualitativa de tres niveles.
type Rating string

const (
	RatingLow    Rating = "Low"
	RatingMedium Rating = "Medium"
	RatingHigh   Rating = "High"
)

// Significance clasifica un factor respecto a los umbrales configurados.
type Significance string

const (
	SignificanceHigh    Significance = "high"
	SignificanceLow     Significance = "low"
	SignificanceNeutral Significance = "neutral"
)

// RollDynamicsProfile describe cualitativamente la dinámica probable de un
// practicante. Derivado de FactorResults, inmutable una vez generado.
type RollDynamicsProfile struct {
	PractitionerName              string   `json:"practitioner_name"`
	HandicappedScore              float64  `json:"handicapped_score"`
	DominantTrait                 string   `json:"dominant_trait"`
	LikelyApproach                string   `json:"likely_approach"`
	KeyStrengths                  []string `json:"key_strengths"`
	KeyChallenges                 []string `json:"key_challenges"`
	ControlPotential              Rating   `json:"control_potential"`
	SubmissionOffensiveThreat     Rating   `json:"submission_offensive_threat"`
	SubmissionDefensiveResilience Rating   `json:"submission_defensive_resilience"`
}

// MatchupReport es el análisis comparativo entre dos perfiles.
type MatchupReport struct {
	MatchupType       string              `json:"matchup_type"`
	Evenness          string              `json:"evenness"`
	ScoreDifferential float64             `json:"score_differential"`
	Analysis          []string            `json:"analysis"`
	ProfileA          RollDynamicsProfile `json:"profile_a"`
	ProfileB          RollDynamicsProfile `json:"profile_b"`
}
