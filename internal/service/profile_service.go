package service

import (
	"jar-rating/internal/domain"
)

// ProfileGenerator deriva un RollDynamicsProfile desde los factores
// calculados. Toda la inferencia son listas de reglas ordenadas sobre el
// mismo mapa de significancia; el orden de evaluación decide los empates.
type ProfileGenerator struct {
	cfg *domain.RatingConfig
}

func NewProfileGenerator(cfg *domain.RatingConfig) *ProfileGenerator {
	return &ProfileGenerator{cfg: cfg}
}

// FactorSignificance clasifica cada factor como high/low/neutral.
type FactorSignificance map[string]domain.Significance

func (s FactorSignificance) isHigh(factor string) bool {
	return s[factor] == domain.SignificanceHigh
}

func (s FactorSignificance) isLow(factor string) bool {
	return s[factor] == domain.SignificanceLow
}

func (s FactorSignificance) anyHigh(factors ...string) bool {
	for _, f := range factors {
		if s.isHigh(f) {
			return true
		}
	}
	return false
}

// IdentifySignificantFactors clasifica los seis multiplicadores contra los
// umbrales configurados (comparaciones inclusivas en ambos extremos). BRS
// se clasifica aparte y categóricamente contra el puntaje del cinturón
// púrpura: nunca es neutral.
func (g *ProfileGenerator) IdentifySignificantFactors(factors domain.FactorResults) FactorSignificance {
	dyn := g.cfg.ProfileDynamics
	high := dyn.SignificantMultiplierThresholdHigh
	low := dyn.SignificantMultiplierThresholdLow

	significance := make(FactorSignificance, 7)
	for factor, value := range map[string]float64{
		"af":  factors.AF,
		"wf":  factors.WF,
		"acf": factors.ACF,
		"ref": factors.REF,
		"tff": factors.TFF,
		"cef": factors.CEF,
	} {
		switch {
		case value >= high:
			significance[factor] = domain.SignificanceHigh
		case value <= low:
			significance[factor] = domain.SignificanceLow
		default:
			significance[factor] = domain.SignificanceNeutral
		}
	}

	if factors.BRS >= float64(g.cfg.BeltRankScores["Purple"]) {
		significance["brs"] = domain.SignificanceHigh
	} else {
		significance["brs"] = domain.SignificanceLow
	}
	return significance
}

// traitRule es un par (predicado, resultado) de una lista de decisión
// ordenada: gana la primera regla cuyo predicado se cumpla.
type traitRule struct {
	matches func(FactorSignificance) bool
	result  string
}

var dominantTraitRules = []traitRule{
	{
		matches: func(s FactorSignificance) bool {
			return s.isHigh("brs") && !s.anyHigh("wf", "acf", "ref")
		},
		result: "Technical BJJ Specialist",
	},
	{
		matches: func(s FactorSignificance) bool {
			return s.isLow("brs") && s.anyHigh("wf", "acf", "ref")
		},
		result: "Physical Grappling Athlete",
	},
	{
		matches: func(s FactorSignificance) bool {
			return s.isHigh("brs") && s.anyHigh("wf", "acf", "ref")
		},
		result: "Dominant All-Rounder",
	},
}

var likelyApproachRules = []traitRule{
	{
		matches: func(s FactorSignificance) bool {
			return s.isHigh("brs") && !s.isHigh("wf")
		},
		result: "Technical & Opportunistic",
	},
	{
		matches: func(s FactorSignificance) bool {
			return s.anyHigh("wf", "acf", "ref")
		},
		result: "Pressure & Control-Oriented",
	},
}

func evaluateRules(rules []traitRule, significance FactorSignificance, fallback string) string {
	for _, rule := range rules {
		if rule.matches(significance) {
			return rule.result
		}
	}
	return fallback
}

// DetermineDominantTrait aplica la lista ordenada de rasgos dominantes.
func (g *ProfileGenerator) DetermineDominantTrait(significance FactorSignificance) string {
	return evaluateRules(dominantTraitRules, significance, "Balanced Practitioner")
}

// DetermineLikelyApproach aplica la lista ordenada de enfoques probables.
func (g *ProfileGenerator) DetermineLikelyApproach(significance FactorSignificance) string {
	return evaluateRules(likelyApproachRules, significance, "Adaptable & Balanced")
}

// GenerateKeyStrengths acumula en orden los enunciados configurados para
// los factores altos. Una clave ausente en la configuración simplemente
// omite ese enunciado, nunca falla.
func (g *ProfileGenerator) GenerateKeyStrengths(significance FactorSignificance) []string {
	statements := g.cfg.ProfileDynamics.ImplicationStatements
	var strengths []string

	appendIf := func(condition bool, key string) {
		if !condition {
			return
		}
		if statement, ok := statements[key]; ok {
			strengths = append(strengths, statement)
		}
	}

	appendIf(significance.isHigh("brs"), "BRS_high")
	appendIf(significance.isHigh("ref"), "REF_high_wrestling_judo")
	appendIf(significance.isHigh("acf"), "ACF_high")
	appendIf(significance.isHigh("wf"), "WF_high")

	if len(strengths) == 0 {
		strengths = append(strengths, "Well-rounded BJJ skills with balanced attributes")
	}
	return strengths
}

// GenerateKeyChallenges acumula los enunciados de los factores bajos.
func (g *ProfileGenerator) GenerateKeyChallenges(significance FactorSignificance) []string {
	statements := g.cfg.ProfileDynamics.ImplicationStatements
	var challenges []string

	appendIf := func(condition bool, key string) {
		if !condition {
			return
		}
		if statement, ok := statements[key]; ok {
			challenges = append(challenges, statement)
		}
	}

	appendIf(significance.isLow("brs"), "BRS_low")
	appendIf(significance.isLow("af"), "AF_low")
	appendIf(significance.isLow("wf"), "WF_low")

	if len(challenges) == 0 {
		challenges = append(challenges, "May need to adjust strategy against opponents with significant physical or technical advantages")
	}
	return challenges
}

// DetermineControlPotential cuenta cuántos de {ref, wf, acf} son altos.
func (g *ProfileGenerator) DetermineControlPotential(significance FactorSignificance) domain.Rating {
	highCount := 0
	for _, factor := range []string{"ref", "wf", "acf"} {
		if significance.isHigh(factor) {
			highCount++
		}
	}
	switch {
	case highCount >= 2:
		return domain.RatingHigh
	case highCount == 1:
		return domain.RatingMedium
	default:
		return domain.RatingLow
	}
}

// DetermineSubmissionThreat: amenaza ofensiva, anclada al cinturón y
// potenciada por experiencia competitiva.
func (g *ProfileGenerator) DetermineSubmissionThreat(significance FactorSignificance) domain.Rating {
	if significance.isHigh("brs") {
		if significance.isHigh("cef") {
			return domain.RatingHigh
		}
		return domain.RatingMedium
	}
	return domain.RatingLow
}

// DetermineSubmissionDefense: resiliencia defensiva, anclada al cinturón
// con mejora parcial por experiencia de agarre previa.
func (g *ProfileGenerator) DetermineSubmissionDefense(significance FactorSignificance) domain.Rating {
	if significance.isHigh("brs") {
		return domain.RatingHigh
	}
	if significance.isHigh("ref") {
		return domain.RatingMedium
	}
	return domain.RatingLow
}

// GenerateProfile arma el perfil completo. Determinista: entradas idénticas
// producen siempre el mismo perfil.
func (g *ProfileGenerator) GenerateProfile(p domain.Practitioner, factors domain.FactorResults, handicappedScore float64) domain.RollDynamicsProfile {
	significance := g.IdentifySignificantFactors(factors)

	return domain.RollDynamicsProfile{
		PractitionerName:              p.Name,
		HandicappedScore:              handicappedScore,
		DominantTrait:                 g.DetermineDominantTrait(significance),
		LikelyApproach:                g.DetermineLikelyApproach(significance),
		KeyStrengths:                  g.GenerateKeyStrengths(significance),
		KeyChallenges:                 g.GenerateKeyChallenges(significance),
		ControlPotential:              g.DetermineControlPotential(significance),
		SubmissionOffensiveThreat:     g.DetermineSubmissionThreat(significance),
		SubmissionDefensiveResilience: g.DetermineSubmissionDefense(significance),
	}
}
