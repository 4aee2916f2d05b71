package assessment

import "github.com/vitalscan/vitalscan/internal/platform/scoring"

// DiabetesInput holds the Pima-style diabetes screening fields. Only
// glucose, BMI, age and blood pressure carry weight; the remaining
// fields are collected for the record but do not score.
type DiabetesInput struct {
	Pregnancies      float64 `json:"pregnancies"`
	Glucose          float64 `json:"glucose"`
	BloodPressure    float64 `json:"blood_pressure"`
	SkinThickness    float64 `json:"skin_thickness"`
	Insulin          float64 `json:"insulin"`
	BMI              float64 `json:"bmi"`
	DiabetesPedigree float64 `json:"diabetes_pedigree"`
	Age              float64 `json:"age"`
}

// DiabetesResult is the evaluated outcome.
type DiabetesResult struct {
	RiskLevel       string   `json:"risk_level"`
	Score           int      `json:"score"`
	Confidence      int      `json:"confidence"`
	KeyFactors      []string `json:"key_factors"`
	Recommendations []string `json:"recommendations"`
}

var diabetesLadder = scoring.Ladder{
	{Min: 4, Level: "high"},
	{Min: 2, Level: "medium"},
	{Min: 0, Level: "low"},
}

// EvaluateDiabetes scores the input against the diabetes rubric.
func EvaluateDiabetes(in DiabetesInput) DiabetesResult {
	score := 0
	var factors []string

	switch {
	case in.Glucose > 140:
		score += 3
		factors = append(factors, "Elevated glucose levels")
	case in.Glucose > 100:
		score++
		factors = append(factors, "Borderline glucose levels")
	}

	switch {
	case in.BMI > 30:
		score += 2
		factors = append(factors, "Obesity (BMI > 30)")
	case in.BMI > 25:
		score++
		factors = append(factors, "Overweight (BMI > 25)")
	}

	if in.Age > 45 {
		score++
		factors = append(factors, "Age over 45")
	}
	if in.BloodPressure > 140 {
		score++
		factors = append(factors, "High blood pressure")
	}

	level := diabetesLadder.Bucket(score)

	var lead string
	var confidence int
	switch level {
	case "high":
		lead = "Consult an endocrinologist immediately for comprehensive evaluation"
		confidence = scoring.Confidence(85, 2, 95, score)
	case "medium":
		lead = "Schedule regular check-ups with your healthcare provider"
		confidence = scoring.Confidence(75, 3, 90, score)
	default:
		lead = "Maintain current healthy lifestyle habits"
		confidence = scoring.Confidence(80, 3, 95, score)
	}

	recs := []string{
		lead,
		"Follow a balanced diet with controlled carbohydrate intake",
		"Engage in regular physical exercise (150 minutes per week)",
		"Monitor blood sugar levels regularly",
		"Maintain a healthy weight through diet and exercise",
	}
	limit := 4
	if level == "high" {
		limit = 5
	}

	if len(factors) == 0 {
		factors = []string{"Normal range values detected"}
	}

	return DiabetesResult{
		RiskLevel:       level,
		Score:           score,
		Confidence:      confidence,
		KeyFactors:      factors,
		Recommendations: scoring.Truncate(recs, limit),
	}
}
