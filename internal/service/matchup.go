package service

import (
	"fmt"
	"math"
	"strings"

	"jar-rating/internal/domain"
)

// Umbrales de paridad por cociente del puntaje mayor sobre el menor.
const (
	veryEvenRatio       = 1.2
	moderatelyEvenRatio = 1.5
)

const balancedMatchupStatement = "This matchup appears balanced across multiple dimensions. The outcome may depend on specific techniques, timing, and mental aspects not captured in the profile."

// DetermineMatchupType etiqueta el emparejamiento según los rasgos
// dominantes, en orden de prioridad fijo.
func DetermineMatchupType(a, b domain.RollDynamicsProfile) string {
	switch {
	case a.DominantTrait == "Technical BJJ Specialist" && b.DominantTrait == "Physical Grappling Athlete":
		return "Technical vs Physical"
	case a.DominantTrait == "Physical Grappling Athlete" && b.DominantTrait == "Technical BJJ Specialist":
		return "Physical vs Technical"
	case strings.Contains(a.DominantTrait, "All-Rounder") || strings.Contains(b.DominantTrait, "All-Rounder"):
		return "All-Rounder Present"
	case a.DominantTrait == b.DominantTrait:
		return fmt.Sprintf("Similar Styles (%s)", a.DominantTrait)
	default:
		return "Mixed Styles"
	}
}

// GenerateMatchupAnalysis acumula oraciones narrativas sobre control,
// oportunidades de sumisión y choque de enfoques. Si ninguna aplica,
// devuelve el enunciado genérico de emparejamiento parejo.
func GenerateMatchupAnalysis(a, b domain.RollDynamicsProfile) []string {
	var analysis []string

	// Dinámica de control.
	switch {
	case a.ControlPotential == domain.RatingHigh && b.ControlPotential != domain.RatingHigh:
		analysis = append(analysis, fmt.Sprintf("%s likely has a control advantage.", a.PractitionerName))
	case b.ControlPotential == domain.RatingHigh && a.ControlPotential != domain.RatingHigh:
		analysis = append(analysis, fmt.Sprintf("%s likely has a control advantage.", b.PractitionerName))
	case a.ControlPotential == domain.RatingHigh && b.ControlPotential == domain.RatingHigh:
		analysis = append(analysis, "Both practitioners have strong control games; expect a battle for dominant position.")
	}

	// Dinámica de sumisión, por dirección.
	if a.SubmissionOffensiveThreat == domain.RatingHigh && b.SubmissionDefensiveResilience != domain.RatingHigh {
		analysis = append(analysis, fmt.Sprintf("%s may find submission opportunities against %s.", a.PractitionerName, b.PractitionerName))
	}
	if b.SubmissionOffensiveThreat == domain.RatingHigh && a.SubmissionDefensiveResilience != domain.RatingHigh {
		analysis = append(analysis, fmt.Sprintf("%s may find submission opportunities against %s.", b.PractitionerName, a.PractitionerName))
	}

	// Enfoques que pueden chocar.
	if a.LikelyApproach == "Pressure & Control-Oriented" && b.LikelyApproach == "Technical & Opportunistic" {
		analysis = append(analysis, fmt.Sprintf("Expect %s to seek dominant position while %s looks for technical escapes and counters.", a.PractitionerName, b.PractitionerName))
	}

	if len(analysis) == 0 {
		return []string{balancedMatchupStatement}
	}
	return analysis
}

// ClassifyEvenness clasifica la paridad del puntaje por el cociente del
// mayor sobre el menor.
func ClassifyEvenness(scoreA, scoreB float64) string {
	ratio := math.Max(scoreA, scoreB) / math.Min(scoreA, scoreB)
	switch {
	case ratio < veryEvenRatio:
		return "Very Even"
	case ratio < moderatelyEvenRatio:
		return "Moderately Even"
	default:
		return "Significant Difference"
	}
}

// BuildMatchupReport arma el reporte completo entre dos perfiles.
func BuildMatchupReport(a, b domain.RollDynamicsProfile) domain.MatchupReport {
	return domain.MatchupReport{
		MatchupType:       DetermineMatchupType(a, b),
		Evenness:          ClassifyEvenness(a.HandicappedScore, b.HandicappedScore),
		ScoreDifferential: math.Abs(a.HandicappedScore - b.HandicappedScore),
		Analysis:          GenerateMatchupAnalysis(a, b),
		ProfileA:          a,
		ProfileB:          b,
	}
}
