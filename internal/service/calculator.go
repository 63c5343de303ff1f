package service

import (
	"fmt"
	"math"

	"jar-rating/internal/domain"
)

// Calculator computa los siete factores del sistema JAR sobre una
// configuración de solo lectura. Todos los métodos son puros y totales
// sobre el dominio de entrada válido.
type Calculator struct {
	cfg *domain.RatingConfig
}

func NewCalculator(cfg *domain.RatingConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// CalculateBRS devuelve el puntaje base del cinturón. Un cinturón fuera de
// la configuración es una violación del contrato del llamador: la
// construcción del practicante ya debió rechazarlo.
func (c *Calculator) CalculateBRS(p domain.Practitioner) (float64, error) {
	score, ok := c.cfg.BeltRankScores[p.BJJBeltRank]
	if !ok {
		return 0, fmt.Errorf("belt rank %q not present in configuration", p.BJJBeltRank)
	}
	return float64(score), nil
}

// CalculateAF devuelve el factor de edad: bono plano antes del pico,
// decaimiento exponencial continuo después. En el pico exacto vale 1.0.
func (c *Calculator) CalculateAF(p domain.Practitioner) float64 {
	ageCfg := c.cfg.AgeFactor
	if p.AgeYears < ageCfg.PeakAgeYears {
		return ageCfg.YouthfulFactorMultiplier
	}
	decadesPastPeak := float64(p.AgeYears-ageCfg.PeakAgeYears) / 10.0
	return math.Pow(1.0-ageCfg.PowerDeclineRatePerDecade, decadesPastPeak)
}

// CalculateWF devuelve el factor de peso relativo a un practicante de
// comparación. Sin comparación, o con pesos iguales, es neutral (1.0).
//
// La diferencia de peso se convierte en un ajuste recorriendo los tramos en
// orden ascendente y consumiendo libras dentro de la banda de cada tramo.
// El excedente más allá del último tramo se cobra a la tasa del último
// tramo (extrapolación abierta, no tope plano). El más pesado suma el
// ajuste a 1.0 y el más liviano lo resta: WF(a,b) + WF(b,a) == 2.0.
func (c *Calculator) CalculateWF(p domain.Practitioner, comparison *domain.Practitioner) float64 {
	if comparison == nil {
		return 1.0
	}

	weightCfg := c.cfg.WeightFactor
	weightDiff := math.Abs(p.WeightLbs - comparison.WeightLbs)
	if weightDiff <= 0 {
		return 1.0
	}

	isHeavier := p.WeightLbs > comparison.WeightLbs

	totalAdjustment := 0.0
	remaining := weightDiff
	lastTierMax := 0.0
	lastTierRate := 0.0

	for _, tier := range weightCfg.Tiers {
		tierWidth := tier.DiffMaxLbs - lastTierMax
		consumed := math.Min(remaining, tierWidth)
		if consumed <= 0 {
			break
		}

		totalAdjustment += (consumed / weightCfg.IncrementLbs) * tier.Adjustment
		lastTierRate = tier.Adjustment

		remaining -= consumed
		lastTierMax = tier.DiffMaxLbs
		if remaining <= 0 {
			break
		}
	}

	// Excedente más allá del techo configurado.
	if remaining > 0 && lastTierRate > 0 {
		totalAdjustment += (remaining / weightCfg.IncrementLbs) * lastTierRate
	}

	if isHeavier {
		return 1.0 + totalAdjustment
	}
	return 1.0 - totalAdjustment
}

// Bandas fijas de percentil para el ACF, ligadas a level_id 1-5.
var acfPercentileBands = []struct {
	levelID int
	min     int
	max     int // exclusivo, salvo la última banda
}{
	{1, 0, 30},
	{2, 30, 60},
	{3, 60, 80},
	{4, 80, 95},
	{5, 95, 101},
}

// CalculateACF mapea el percentil de aptitud a una de cinco bandas fijas y
// devuelve el multiplicador del nivel correspondiente.
func (c *Calculator) CalculateACF(p domain.Practitioner) float64 {
	percentile := p.FitnessPercentile
	for _, band := range acfPercentileBands {
		if percentile < band.min || percentile >= band.max {
			continue
		}
		if multiplier, ok := c.cfg.ACF.MultiplierFor(band.levelID); ok {
			return multiplier
		}
	}
	// No debería ocurrir con el dominio validado 0-100.
	return 1.0
}

// CalculateREF devuelve el factor de experiencia relevante en otros artes.
// Solo se consulta la primera entrada de la lista; una combinación
// arte/nivel no mapeada cae silenciosamente al nivel "None".
func (c *Calculator) CalculateREF(p domain.Practitioner) float64 {
	refCfg := c.cfg.REF
	if len(p.OtherGrapplingArtExperience) == 0 {
		return refCfg.LevelZeroMultiplier()
	}

	experience := p.OtherGrapplingArtExperience[0]
	mappingKey := experience.ArtName + "_" + experience.ExperienceLevelDescriptor

	levelID, ok := refCfg.ArtExperienceLevelMapping[mappingKey]
	if !ok {
		return refCfg.LevelZeroMultiplier()
	}
	multiplier, ok := refCfg.MultiplierFor(levelID)
	if !ok {
		return refCfg.LevelZeroMultiplier()
	}
	return multiplier
}

// CalculateTFF devuelve el multiplicador de la primera banda de sesiones
// que contenga la frecuencia semanal; 1.0 si ninguna banda aplica.
func (c *Calculator) CalculateTFF(p domain.Practitioner) float64 {
	sessions := p.TrainingSessionsPerWeek
	for _, band := range c.cfg.TFF.Levels {
		if band.SessionsMin <= sessions && sessions <= band.SessionsMax {
			return band.Multiplier
		}
	}
	return 1.0
}

// CalculateCEF devuelve el factor de experiencia competitiva. Un nivel de
// competencia no mapeado cae al nivel "None".
func (c *Calculator) CalculateCEF(p domain.Practitioner) float64 {
	cefCfg := c.cfg.CEF

	levelID, ok := cefCfg.CompetitionLevelMapping[p.CompetitionExperienceLevel]
	if !ok {
		return cefCfg.LevelZeroMultiplier()
	}
	multiplier, ok := cefCfg.MultiplierFor(levelID)
	if !ok {
		return cefCfg.LevelZeroMultiplier()
	}
	return multiplier
}

// CalculateAllFactors computa los siete factores. El practicante de
// comparación solo influye en el factor de peso y puede ser nil.
func (c *Calculator) CalculateAllFactors(p domain.Practitioner, comparison *domain.Practitioner) (domain.FactorResults, error) {
	brs, err := c.CalculateBRS(p)
	if err != nil {
		return domain.FactorResults{}, err
	}
	return domain.FactorResults{
		BRS: brs,
		AF:  c.CalculateAF(p),
		WF:  c.CalculateWF(p, comparison),
		ACF: c.CalculateACF(p),
		REF: c.CalculateREF(p),
		TFF: c.CalculateTFF(p),
		CEF: c.CalculateCEF(p),
	}, nil
}
