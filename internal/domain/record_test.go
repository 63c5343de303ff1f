package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPractitionerRecord_RoundTrip(t *testing.T) {
	p := Practitioner{
		Name:              "Ana",
		BJJBeltRank:       "Purple",
		AgeYears:          35,
		WeightLbs:         185,
		FitnessPercentile: 70,
		OtherGrapplingArtExperience: []GrapplingExperience{
			{ArtName: "Wrestling", ExperienceLevelDescriptor: "High-Level Competitor (National level)"},
		},
		TrainingSessionsPerWeek:    4,
		CompetitionExperienceLevel: "Regular Regional",
		PractitionerID:             "p-1",
	}

	record := RecordFromPractitioner(p)
	if record.Art != "Wrestling" || record.ExpLevel != "High-Level Competitor (National level)" {
		t.Fatalf("experience not carried into record: %+v", record)
	}

	back := record.ToPractitioner()
	if !reflect.DeepEqual(back, p) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, p)
	}
}

func TestPractitionerRecord_NoneArtMeansAbsent(t *testing.T) {
	record := PractitionerRecord{
		Name: "Bruno", Belt: "White", Age: 30, Weight: 170,
		Fitness: 50, Sessions: 2, Competition: "None",
		Art: "None", ExpLevel: "Foundational",
	}
	p := record.ToPractitioner()
	if len(p.OtherGrapplingArtExperience) != 0 {
		t.Fatalf("art None should yield no experience, got %+v", p.OtherGrapplingArtExperience)
	}
}

func TestPractitionerRecord_LegacyFieldNames(t *testing.T) {
	payload := []byte(`{
		"name": "Carla",
		"belt": "Blue",
		"age": 28,
		"weight": 140.5,
		"fitness": 65,
		"sessions": 3,
		"competition": "Limited Local",
		"art": "Judo",
		"exp_level": "Accomplished (3-5+ years, regional level)"
	}`)

	var record PractitionerRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		t.Fatalf("unmarshal legacy record: %v", err)
	}
	if record.Belt != "Blue" || record.Weight != 140.5 || record.ExpLevel == "" {
		t.Fatalf("legacy fields not decoded: %+v", record)
	}

	p := record.ToPractitioner()
	if p.BJJBeltRank != "Blue" || p.OtherGrapplingArtExperience[0].ArtName != "Judo" {
		t.Fatalf("unexpected practitioner: %+v", p)
	}
}

func TestFactorResults_Vector(t *testing.T) {
	factors := FactorResults{BRS: 350, AF: 0.88, WF: 1.06, ACF: 1.07, REF: 1.22, TFF: 1.05, CEF: 1.08}
	vec := factors.Vector()
	if len(vec) != 7 {
		t.Fatalf("expected 7 dimensions, got %d", len(vec))
	}
	if vec[0] != 350 || vec[4] != 1.22 {
		t.Fatalf("unexpected vector: %v", vec)
	}
}
