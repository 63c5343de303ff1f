package domain

import (
	"errors"
	"reflect"
	"testing"
)

func validPractitioner() Practitioner {
	return Practitioner{
		Name:                       "Test",
		BJJBeltRank:                "Blue",
		AgeYears:                   30,
		WeightLbs:                  170,
		FitnessPercentile:          60,
		TrainingSessionsPerWeek:    3,
		CompetitionExperienceLevel: "None",
	}
}

func TestNewPractitioner_Valid(t *testing.T) {
	p, err := NewPractitioner(validPractitioner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Test" {
		t.Fatalf("unexpected practitioner: %+v", p)
	}
}

func TestNewPractitioner_RangeBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Practitioner)
		valid  bool
	}{
		{"age at lower bound", func(p *Practitioner) { p.AgeYears = MinAgeYears }, true},
		{"age at upper bound", func(p *Practitioner) { p.AgeYears = MaxAgeYears }, true},
		{"age below range", func(p *Practitioner) { p.AgeYears = MinAgeYears - 1 }, false},
		{"age above range", func(p *Practitioner) { p.AgeYears = MaxAgeYears + 1 }, false},
		{"weight at lower bound", func(p *Practitioner) { p.WeightLbs = MinWeightLbs }, true},
		{"weight at upper bound", func(p *Practitioner) { p.WeightLbs = MaxWeightLbs }, true},
		{"weight below range", func(p *Practitioner) { p.WeightLbs = MinWeightLbs - 0.5 }, false},
		{"weight above range", func(p *Practitioner) { p.WeightLbs = MaxWeightLbs + 0.5 }, false},
		{"fitness at bounds", func(p *Practitioner) { p.FitnessPercentile = MaxFitness }, true},
		{"fitness below range", func(p *Practitioner) { p.FitnessPercentile = -1 }, false},
		{"fitness above range", func(p *Practitioner) { p.FitnessPercentile = 101 }, false},
		{"sessions at upper bound", func(p *Practitioner) { p.TrainingSessionsPerWeek = MaxSessions }, true},
		{"sessions below range", func(p *Practitioner) { p.TrainingSessionsPerWeek = -1 }, false},
		{"sessions above range", func(p *Practitioner) { p.TrainingSessionsPerWeek = MaxSessions + 1 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPractitioner()
			tc.mutate(&p)
			_, err := NewPractitioner(p)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Fatalf("expected validation error")
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			}
		})
	}
}

func TestNewPractitioner_InvalidReturnsZeroValue(t *testing.T) {
	p := validPractitioner()
	p.AgeYears = 5
	got, err := NewPractitioner(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !reflect.DeepEqual(got, Practitioner{}) {
		t.Fatalf("expected zero value on failure, got %+v", got)
	}
}
