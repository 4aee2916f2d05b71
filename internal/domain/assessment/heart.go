package assessment

import "github.com/vitalscan/vitalscan/internal/platform/scoring"

// HeartInput follows the UCI heart-disease attribute vocabulary:
// chest pain types TA/ATA/NAP/ASY, sex M/F, oldpeak in mm of ST
// depression.
type HeartInput struct {
	Age            float64 `json:"age"`
	Sex            string  `json:"sex"`
	ChestPain      string  `json:"chest_pain"`
	RestingBP      float64 `json:"resting_bp"`
	Cholesterol    float64 `json:"cholesterol"`
	FastingBS      string  `json:"fasting_bs"`
	RestingECG     string  `json:"resting_ecg"`
	MaxHR          float64 `json:"max_hr"`
	ExerciseAngina string  `json:"exercise_angina"`
	Oldpeak        float64 `json:"oldpeak"`
	STSlope        string  `json:"st_slope"`
}

// HeartResult is the evaluated outcome.
type HeartResult struct {
	RiskLevel       string   `json:"risk_level"`
	Score           int      `json:"score"`
	Confidence      int      `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

var (
	heartAgeBands  = []scoring.Band{{Above: 60, Points: 3}, {Above: 45, Points: 2}, {Above: 35, Points: 1}}
	heartBPBands   = []scoring.Band{{Above: 140, Points: 3}, {Above: 120, Points: 2}}
	heartCholBands = []scoring.Band{{Above: 240, Points: 3}, {Above: 200, Points: 2}}
	heartHRBands   = []scoring.BandBelow{{Below: 100, Points: 2}, {Below: 150, Points: 1}}
	heartSTBands   = []scoring.Band{{Above: 2, Points: 3}, {Above: 1, Points: 2}, {Above: 0, Points: 1}}

	heartChestPainWeights = map[string]int{"ASY": 3, "NAP": 2, "ATA": 1}

	heartLadder = scoring.Ladder{
		{Min: 15, Level: "High Risk"},
		{Min: 8, Level: "Moderate Risk"},
		{Min: 0, Level: "Low Risk"},
	}
)

// EvaluateHeart scores the input against the cardiovascular rubric.
func EvaluateHeart(in HeartInput) HeartResult {
	score := scoring.Grade(in.Age, heartAgeBands)
	if in.Sex == "M" {
		score++
	}
	score += scoring.Grade(in.RestingBP, heartBPBands)
	score += scoring.Grade(in.Cholesterol, heartCholBands)
	if in.FastingBS == "Yes" {
		score += 2
	}
	score += scoring.Choice(in.ChestPain, heartChestPainWeights)
	score += scoring.GradeBelow(in.MaxHR, heartHRBands)
	if in.ExerciseAngina == "Y" {
		score += 2
	}
	score += scoring.Grade(in.Oldpeak, heartSTBands)

	level := heartLadder.Bucket(score)

	var confidence int
	var recs []string
	switch level {
	case "High Risk":
		confidence = scoring.Confidence(85, 1, 95, score-15)
		recs = []string{
			"Immediate consultation with cardiologist recommended",
			"Consider stress test and ECG evaluation",
			"Start cardiac medication as prescribed",
			"Adopt heart-healthy diet (low sodium, low saturated fat)",
			"Begin supervised exercise program",
			"Monitor blood pressure daily",
			"Quit smoking and limit alcohol consumption",
		}
	case "Moderate Risk":
		confidence = scoring.Confidence(75, 2, 90, score-8)
		recs = []string{
			"Schedule regular check-ups with your doctor",
			"Monitor blood pressure and cholesterol levels",
			"Maintain healthy weight through diet and exercise",
			"Include 30 minutes of moderate exercise daily",
			"Follow Mediterranean or DASH diet",
			"Manage stress through relaxation techniques",
			"Get adequate sleep (7-9 hours nightly)",
		}
	default:
		confidence = scoring.Confidence(70, 2, 90, score)
		recs = []string{
			"Continue maintaining healthy lifestyle",
			"Regular cardiovascular exercise 3-4 times per week",
			"Eat plenty of fruits, vegetables, and whole grains",
			"Maintain healthy weight and BMI",
			"Annual health check-ups recommended",
			"Stay hydrated and limit processed foods",
			"Practice stress management techniques",
		}
	}

	return HeartResult{
		RiskLevel:       level,
		Score:           score,
		Confidence:      confidence,
		Recommendations: recs,
	}
}
