package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"jar-rating/internal/domain"
	"jar-rating/internal/repository"
	"jar-rating/internal/service"
)

// jarcli compara dos practicantes sin levantar el servidor: carga la
// configuración y dos archivos JSON de practicante e imprime factores,
// puntajes, perfiles y análisis del emparejamiento.
func main() {
	configPath := flag.String("config", "data/default_config.json", "rating config file")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: jarcli [-config file] practitioner_a.json practitioner_b.json")
		os.Exit(2)
	}

	ratingCfg, err := repository.NewFileConfigRepository(*configPath).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	a, err := loadPractitioner(flag.Arg(0))
	if err != nil {
		log.Fatalf("load practitioner A: %v", err)
	}
	b, err := loadPractitioner(flag.Arg(1))
	if err != nil {
		log.Fatalf("load practitioner B: %v", err)
	}

	comparisons := service.NewComparisonService(nil, service.NewConfigStore(ratingCfg), nil, nil)
	result, err := comparisons.Compare(context.Background(), a, b)
	if err != nil {
		log.Fatalf("compare: %v", err)
	}

	printScore(result.A)
	printScore(result.B)

	report := result.Report
	fmt.Printf("Matchup type: %s\n", report.MatchupType)
	fmt.Printf("Evenness: %s (differential %.2f)\n", report.Evenness, report.ScoreDifferential)
	for _, sentence := range report.Analysis {
		fmt.Printf("  %s\n", sentence)
	}
}

func loadPractitioner(path string) (domain.Practitioner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Practitioner{}, err
	}

	// Acepta tanto el objeto completo como el registro guardado legado.
	var p domain.Practitioner
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Practitioner{}, err
	}
	if p.BJJBeltRank == "" {
		var record domain.PractitionerRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return domain.Practitioner{}, err
		}
		p = record.ToPractitioner()
	}
	return domain.NewPractitioner(p)
}

func printScore(s service.ScoreResult) {
	f := s.Factors
	fmt.Printf("%s\n", s.Practitioner)
	fmt.Printf("  BRS=%.0f AF=%.3f WF=%.3f ACF=%.3f REF=%.3f TFF=%.3f CEF=%.3f\n",
		f.BRS, f.AF, f.WF, f.ACF, f.REF, f.TFF, f.CEF)
	fmt.Printf("  Handicapped score: %.2f\n", s.HandicappedScore)
}
