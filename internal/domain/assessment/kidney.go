package assessment

import "github.com/vitalscan/vitalscan/internal/platform/scoring"

// KidneyInput mirrors the chronic kidney disease panel: urinalysis
// grades (albumin 0-5), urine microscopy findings, serum chemistry
// and comorbidity flags.
type KidneyInput struct {
	Age                   float64 `json:"age"`
	BloodPressure         float64 `json:"blood_pressure"`
	SpecificGravity       float64 `json:"specific_gravity"`
	Albumin               string  `json:"albumin"`
	Sugar                 string  `json:"sugar"`
	RedBloodCells         string  `json:"red_blood_cells"`
	PusCell               string  `json:"pus_cell"`
	PusCellClumps         string  `json:"pus_cell_clumps"`
	Bacteria              string  `json:"bacteria"`
	BloodGlucoseRandom    float64 `json:"blood_glucose_random"`
	BloodUrea             float64 `json:"blood_urea"`
	SerumCreatinine       float64 `json:"serum_creatinine"`
	Sodium                float64 `json:"sodium"`
	Potassium             float64 `json:"potassium"`
	Hemoglobin            float64 `json:"hemoglobin"`
	PackedCellVolume      float64 `json:"packed_cell_volume"`
	WhiteBloodCellCount   float64 `json:"white_blood_cell_count"`
	RedBloodCellCount     float64 `json:"red_blood_cell_count"`
	Hypertension          string  `json:"hypertension"`
	DiabetesMellitus      string  `json:"diabetes_mellitus"`
	CoronaryArteryDisease string  `json:"coronary_artery_disease"`
	Appetite              string  `json:"appetite"`
	PedalEdema            string  `json:"pedal_edema"`
	Anemia                string  `json:"anemia"`
}

// KidneyResult is the evaluated outcome.
type KidneyResult struct {
	RiskLevel       string   `json:"risk_level"`
	Score           int      `json:"score"`
	Confidence      int      `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

var (
	kidneyAgeBands        = []scoring.Band{{Above: 70, Points: 3}, {Above: 60, Points: 2}, {Above: 50, Points: 1}}
	kidneyBPBands         = []scoring.Band{{Above: 140, Points: 3}, {Above: 120, Points: 2}}
	kidneyCreatinineBands = []scoring.Band{{Above: 1.5, Points: 4}, {Above: 1.2, Points: 3}, {Above: 1.0, Points: 2}}
	kidneyUreaBands       = []scoring.Band{{Above: 50, Points: 3}, {Above: 40, Points: 2}, {Above: 30, Points: 1}}
	kidneyHbBands         = []scoring.BandBelow{{Below: 10, Points: 3}, {Below: 12, Points: 2}}

	kidneyAlbuminWeights = map[string]int{"5": 4, "4": 4, "3": 3, "2": 2, "1": 1}

	kidneyLadder = scoring.Ladder{
		{Min: 20, Level: "High Risk"},
		{Min: 12, Level: "Moderate Risk"},
		{Min: 6, Level: "Mild Impairment"},
		{Min: 0, Level: "Normal Function"},
	}
)

// EvaluateKidney scores the input against the CKD rubric.
func EvaluateKidney(in KidneyInput) KidneyResult {
	score := scoring.Grade(in.Age, kidneyAgeBands)
	score += scoring.Grade(in.BloodPressure, kidneyBPBands)
	score += scoring.Grade(in.SerumCreatinine, kidneyCreatinineBands)
	score += scoring.Grade(in.BloodUrea, kidneyUreaBands)
	score += scoring.Choice(in.Albumin, kidneyAlbuminWeights)

	if in.RedBloodCells == "abnormal" {
		score += 2
	}
	if in.PusCell == "abnormal" {
		score += 2
	}
	if in.Hypertension == "yes" {
		score += 2
	}
	if in.DiabetesMellitus == "yes" {
		score += 3
	}
	if in.CoronaryArteryDisease == "yes" {
		score += 2
	}
	if in.Appetite == "poor" {
		score += 2
	}
	if in.PedalEdema == "yes" {
		score += 3
	}
	if in.Anemia == "yes" {
		score += 2
	}

	score += scoring.GradeBelow(in.Hemoglobin, kidneyHbBands)

	// Electrolyte imbalance: either direction counts once per analyte.
	if in.Sodium > 145 || in.Sodium < 135 {
		score += 2
	}
	if in.Potassium > 5.0 || in.Potassium < 3.5 {
		score += 2
	}

	level := kidneyLadder.Bucket(score)

	var confidence int
	var recs []string
	switch level {
	case "High Risk":
		confidence = scoring.Confidence(85, 1, 95, score-20)
		recs = []string{
			"Immediate nephrology consultation required",
			"Consider dialysis preparation if GFR <15",
			"Strict dietary protein restriction (0.6-0.8g/kg)",
			"Monitor fluid intake and electrolyte balance",
			"Regular kidney function tests (weekly)",
			"Blood pressure control <130/80 mmHg",
			"Avoid nephrotoxic medications",
		}
	case "Moderate Risk":
		confidence = scoring.Confidence(75, 1, 90, score-12)
		recs = []string{
			"Regular monitoring by nephrologist",
			"Moderate protein restriction (0.8-1.0g/kg)",
			"Control diabetes and hypertension",
			"Monthly kidney function tests",
			"Stay hydrated but avoid fluid overload",
			"Limit sodium intake (<2g per day)",
			"Monitor for complications",
		}
	case "Mild Impairment":
		confidence = scoring.Confidence(70, 2, 90, score-6)
		recs = []string{
			"Bi-annual kidney function screening",
			"Maintain healthy protein intake",
			"Control underlying conditions",
			"Regular blood pressure monitoring",
			"Stay well hydrated (8-10 glasses water)",
			"Limit processed foods and excess salt",
			"Regular exercise as tolerated",
		}
	default:
		confidence = scoring.Confidence(80, 2, 95, score)
		recs = []string{
			"Continue maintaining healthy lifestyle",
			"Annual kidney function screening",
			"Maintain adequate hydration",
			"Regular exercise and healthy diet",
			"Monitor blood pressure regularly",
			"Avoid excessive use of pain medications",
			"Limit alcohol and quit smoking",
		}
	}

	return KidneyResult{
		RiskLevel:       level,
		Score:           score,
		Confidence:      confidence,
		Recommendations: recs,
	}
}
