package main

import (
	"flag"
	"fmt"
	"log"

	"jar-rating/internal/repository"
)

// configcheck valida un archivo de configuración de puntuación e imprime
// las tablas de factores resultantes.
func main() {
	configPath := flag.String("config", "data/default_config.json", "rating config file")
	flag.Parse()

	cfg, err := repository.NewFileConfigRepository(*configPath).Load()
	if err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	fmt.Printf("config ok: %s\n\n", *configPath)

	fmt.Println("belt rank scores:")
	for _, belt := range []string{"White", "Blue", "Purple", "Brown", "Black"} {
		fmt.Printf("  %-8s %d\n", belt, cfg.BeltRankScores[belt])
	}

	fmt.Printf("\nage factor: peak=%d youthful=%.2f decline/decade=%.2f\n",
		cfg.AgeFactor.PeakAgeYears, cfg.AgeFactor.YouthfulFactorMultiplier, cfg.AgeFactor.PowerDeclineRatePerDecade)

	fmt.Printf("\nweight tiers (increment %.0f lbs):\n", cfg.WeightFactor.IncrementLbs)
	for _, tier := range cfg.WeightFactor.Tiers {
		fmt.Printf("  up to %5.1f lbs  adjustment %.3f\n", tier.DiffMaxLbs, tier.Adjustment)
	}

	fmt.Println("\nacf levels:")
	for _, level := range cfg.ACF.Levels {
		fmt.Printf("  %d %-18s %.2f\n", level.LevelID, level.Description, level.Multiplier)
	}

	fmt.Println("\nref levels:")
	for _, level := range cfg.REF.Levels {
		fmt.Printf("  %d %-18s %.2f\n", level.LevelID, level.Description, level.Multiplier)
	}
	fmt.Printf("  %d art/experience mappings\n", len(cfg.REF.ArtExperienceLevelMapping))

	fmt.Println("\ntff bands:")
	for _, band := range cfg.TFF.Levels {
		fmt.Printf("  %2d-%2d sessions  %.2f\n", band.SessionsMin, band.SessionsMax, band.Multiplier)
	}

	fmt.Println("\ncef levels:")
	for _, level := range cfg.CEF.Levels {
		fmt.Printf("  %d %-22s %.2f\n", level.LevelID, level.Description, level.Multiplier)
	}

	dyn := cfg.ProfileDynamics
	fmt.Printf("\nsignificance thresholds: high>=%.2f low<=%.2f, %d implication statements\n",
		dyn.SignificantMultiplierThresholdHigh, dyn.SignificantMultiplierThresholdLow, len(dyn.ImplicationStatements))
}
