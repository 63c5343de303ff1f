package domain

// FactorResults reúne los siete factores calculados para un practicante.
// BRS es un puntaje absoluto; el resto son multiplicadores centrados en 1.0.
type FactorResults struct {
	BRS float64 `json:"brs"`
	AF  float64 `json:"af"`
	WF  float64 `json:"wf"`
	ACF float64 `json:"acf"`
	REF float64 `json:"ref"`
	TFF float64 `json:"tff"`
	CEF float64 `json:"cef"`
}

// HandicappedScore calcula el puntaje final como producto de los siete
// factores. Sin redondeo ni límites; la presentación redondea aparte.
func (f FactorResults) HandicappedScore() float64 {
	return f.BRS * f.AF * f.WF * f.ACF * f.REF * f.TFF * f.CEF
}

// Vector expone los factores como vector de 7 dimensiones para búsquedas
// de similitud en espacio de factores.
func (f FactorResults) Vector() []float32 {
	return []float32{
		float32(f.BRS),
		float32(f.AF),
		float32(f.WF),
		float32(f.ACF),
		float32(f.REF),
		float32(f.TFF),
		float32(f.CEF),
	}
}
