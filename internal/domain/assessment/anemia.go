package assessment

import (
	"fmt"

	"github.com/vitalscan/vitalscan/internal/platform/scoring"
)

// AnemiaInput is a CBC extract plus self-reported symptoms. Hemoglobin
// in g/dL, MCV in fL, ferritin in ng/mL, B12 in pg/mL, folate in ng/mL.
type AnemiaInput struct {
	Age            float64 `json:"age"`
	Gender         string  `json:"gender"`
	Hemoglobin     float64 `json:"hemoglobin"`
	Hematocrit     float64 `json:"hematocrit"`
	MCV            float64 `json:"mcv"`
	RDW            float64 `json:"rdw"`
	Ferritin       float64 `json:"ferritin"`
	VitaminB12     float64 `json:"vitamin_b12"`
	Folate         float64 `json:"folate"`
	Fatigue        string  `json:"fatigue"`
	Breathlessness string  `json:"breathlessness"`
	ColdHands      string  `json:"cold_hands"`
	PaleSkin       string  `json:"pale_skin"`
}

// AnemiaResult is the evaluated outcome. Severity plays the role the
// other analyzers call score.
type AnemiaResult struct {
	RiskLevel       string     `json:"risk_level"`
	AnemiaType      string     `json:"anemia_type"`
	Severity        int        `json:"severity"`
	Confidence      int        `json:"confidence"`
	LabValues       []LabValue `json:"lab_values"`
	Recommendations []string   `json:"recommendations"`
}

var anemiaLadder = scoring.Ladder{
	{Min: 8, Level: "Severe"},
	{Min: 5, Level: "High"},
	{Min: 3, Level: "Moderate"},
	{Min: 0, Level: "Low"},
}

func anemiaHbRange(gender string) (lo, hi float64) {
	if gender == "male" {
		return 13.8, 17.2
	}
	return 12.1, 15.1
}

// EvaluateAnemia classifies the anemia by MCV morphology and grades
// severity from hemoglobin deficit, iron/vitamin stores and symptoms.
func EvaluateAnemia(in AnemiaInput) AnemiaResult {
	severity := 0
	var anemiaType string

	hbLo, hbHi := anemiaHbRange(in.Gender)
	hbNormal := in.Hemoglobin >= hbLo && in.Hemoglobin <= hbHi

	// Out-of-range hemoglobin in either direction scores; the band
	// ladder only grades how far below, so high values take the floor.
	if !hbNormal {
		if in.Gender == "male" {
			switch {
			case in.Hemoglobin < 11:
				severity += 3
			case in.Hemoglobin < 13:
				severity += 2
			default:
				severity++
			}
		} else {
			switch {
			case in.Hemoglobin < 10:
				severity += 3
			case in.Hemoglobin < 12:
				severity += 2
			default:
				severity++
			}
		}
	}

	// MCV morphology typing is independent of the hemoglobin level.
	switch {
	case in.MCV < 80:
		anemiaType = "Microcytic Anemia (Iron Deficiency)"
		severity++
	case in.MCV > 100:
		anemiaType = "Macrocytic Anemia (B12/Folate Deficiency)"
		severity++
	default:
		anemiaType = "Normocytic Anemia"
	}

	if in.Ferritin < 15 {
		severity += 2
	}
	if in.VitaminB12 < 200 {
		severity += 2
	}
	if in.Folate < 2 {
		severity++
	}
	if in.RDW > 14.5 {
		severity++
	}

	switch in.Fatigue {
	case "severe":
		severity += 2
	case "moderate":
		severity++
	}
	if in.Breathlessness == "yes" {
		severity++
	}
	if in.ColdHands == "yes" {
		severity++
	}
	if in.PaleSkin == "yes" {
		severity++
	}

	if severity < 2 {
		anemiaType = "No Significant Anemia"
	}

	level := anemiaLadder.Bucket(severity)
	confidence := scoring.Confidence(60, 5, 95, severity)

	labStatus := func(ok bool, low bool) string {
		if ok {
			return "Normal"
		}
		if low {
			return "Low"
		}
		return "High"
	}

	hctLo := 36.0
	if in.Gender == "male" {
		hctLo = 41.0
	}

	labs := []LabValue{
		{
			Name:   "Hemoglobin",
			Value:  fmt.Sprintf("%.1f g/dL", in.Hemoglobin),
			Status: labStatus(in.Hemoglobin >= hbLo && in.Hemoglobin <= hbHi, in.Hemoglobin < hbLo),
		},
		{
			Name:   "Hematocrit",
			Value:  fmt.Sprintf("%.1f%%", in.Hematocrit),
			Status: labStatus(in.Hematocrit >= hctLo, true),
		},
		{
			Name:   "MCV",
			Value:  fmt.Sprintf("%.1f fL", in.MCV),
			Status: labStatus(in.MCV >= 80 && in.MCV <= 100, in.MCV < 80),
		},
		{
			Name:   "Ferritin",
			Value:  fmt.Sprintf("%.1f ng/mL", in.Ferritin),
			Status: labStatus(in.Ferritin >= 15, true),
		},
	}

	var recs []string
	switch anemiaType {
	case "Microcytic Anemia (Iron Deficiency)":
		recs = append(recs,
			"Increase iron-rich foods (red meat, spinach, lentils)",
			"Take iron supplements as prescribed by doctor",
			"Combine iron intake with vitamin C for better absorption",
		)
	case "Macrocytic Anemia (B12/Folate Deficiency)":
		recs = append(recs,
			"Include B12 sources: meat, fish, dairy products",
			"Add folate-rich foods: leafy greens, citrus fruits",
			"Consider B12 injections if severely deficient",
		)
	}
	if severity >= 3 {
		recs = append(recs,
			"Consult hematologist for detailed evaluation",
			"Get complete blood workup including reticulocyte count",
		)
	}
	recs = append(recs,
		"Regular monitoring of blood parameters",
		"Maintain balanced diet with adequate protein",
		"Avoid excessive tea/coffee with iron-rich meals",
	)

	return AnemiaResult{
		RiskLevel:       level,
		AnemiaType:      anemiaType,
		Severity:        severity,
		Confidence:      confidence,
		LabValues:       labs,
		Recommendations: scoring.Truncate(recs, 6),
	}
}
