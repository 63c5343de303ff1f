package email

import (
	"fmt"
	"strings"

	"jar-rating/internal/domain"
)

// RenderMatchupReport arma asunto y cuerpo de texto plano para compartir
// un reporte de emparejamiento.
func RenderMatchupReport(report domain.MatchupReport, scoreA, scoreB float64) (subject, body string) {
	nameA := report.ProfileA.PractitionerName
	nameB := report.ProfileB.PractitionerName
	subject = fmt.Sprintf("JAR matchup report: %s vs %s", nameA, nameB)

	var b strings.Builder
	fmt.Fprintf(&b, "Matchup: %s vs %s\n", nameA, nameB)
	fmt.Fprintf(&b, "Type: %s\n", report.MatchupType)
	fmt.Fprintf(&b, "Handicapped scores: %.2f vs %.2f (%s)\n", scoreA, scoreB, report.Evenness)
	fmt.Fprintf(&b, "Score differential: %.2f\n\n", report.ScoreDifferential)

	writeProfile := func(p domain.RollDynamicsProfile) {
		fmt.Fprintf(&b, "%s\n", p.PractitionerName)
		fmt.Fprintf(&b, "  Dominant trait: %s\n", p.DominantTrait)
		fmt.Fprintf(&b, "  Likely approach: %s\n", p.LikelyApproach)
		fmt.Fprintf(&b, "  Control potential: %s\n", p.ControlPotential)
		fmt.Fprintf(&b, "  Submission threat: %s, defense: %s\n", p.SubmissionOffensiveThreat, p.SubmissionDefensiveResilience)
		for _, s := range p.KeyStrengths {
			fmt.Fprintf(&b, "  + %s\n", s)
		}
		for _, c := range p.KeyChallenges {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
		b.WriteString("\n")
	}
	writeProfile(report.ProfileA)
	writeProfile(report.ProfileB)

	b.WriteString("Analysis:\n")
	for _, sentence := range report.Analysis {
		fmt.Fprintf(&b, "  %s\n", sentence)
	}

	return subject, b.String()
}
