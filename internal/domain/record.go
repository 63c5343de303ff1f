package domain

import "time"

// PractitionerRecord es la forma persistida de un practicante guardado,
// compatible con los archivos JSON legados ({name, belt, age, weight,
// fitness, sessions, competition, art?, exp_level?}). El arte "None"
// equivale a ausente.
type PractitionerRecord struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Belt        string    `json:"belt"`
	Age         int       `json:"age"`
	Weight      float64   `json:"weight"`
	Fitness     int       `json:"fitness"`
	Sessions    int       `json:"sessions"`
	Competition string    `json:"competition"`
	Art         string    `json:"art,omitempty"`
	ExpLevel    string    `json:"exp_level,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ToPractitioner reconstruye el objeto de valor desde el registro guardado.
func (r PractitionerRecord) ToPractitioner() Practitioner {
	var experience []GrapplingExperience
	if r.Art != "" && r.Art != "None" {
		experience = []GrapplingExperience{{
			ArtName:                   r.Art,
			ExperienceLevelDescriptor: r.ExpLevel,
		}}
	}
	return Practitioner{
		Name:                        r.Name,
		BJJBeltRank:                 r.Belt,
		AgeYears:                    r.Age,
		WeightLbs:                   r.Weight,
		FitnessPercentile:           r.Fitness,
		OtherGrapplingArtExperience: experience,
		TrainingSessionsPerWeek:     r.Sessions,
		CompetitionExperienceLevel:  r.Competition,
		PractitionerID:              r.ID,
	}
}

// RecordFromPractitioner arma el registro persistible. Solo la primera
// experiencia de agarre se conserva, igual que en los archivos legados.
func RecordFromPractitioner(p Practitioner) PractitionerRecord {
	record := PractitionerRecord{
		ID:          p.PractitionerID,
		Name:        p.Name,
		Belt:        p.BJJBeltRank,
		Age:         p.AgeYears,
		Weight:      p.WeightLbs,
		Fitness:     p.FitnessPercentile,
		Sessions:    p.TrainingSessionsPerWeek,
		Competition: p.CompetitionExperienceLevel,
	}
	if len(p.OtherGrapplingArtExperience) > 0 {
		record.Art = p.OtherGrapplingArtExperience[0].ArtName
		record.ExpLevel = p.OtherGrapplingArtExperience[0].ExperienceLevelDescriptor
	}
	return record
}
