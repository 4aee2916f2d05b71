package assessment

import "github.com/vitalscan/vitalscan/internal/platform/scoring"

// CancerInput covers lifestyle, exposure and history factors for the
// general oncological risk screen. Physical activity and diet quality
// are the two protective factors: they can lower the total.
type CancerInput struct {
	Age                 float64 `json:"age"`
	Gender              string  `json:"gender"`
	SmokingHistory      string  `json:"smoking_history"`
	AlcoholConsumption  string  `json:"alcohol_consumption"`
	FamilyHistory       string  `json:"family_history"`
	BMI                 float64 `json:"bmi"`
	PhysicalActivity    string  `json:"physical_activity"`
	DietQuality         string  `json:"diet_quality"`
	SunExposure         string  `json:"sun_exposure"`
	OccupationalExposure string `json:"occupational_exposure"`
	MedicalHistory      string  `json:"medical_history"`
	ReproductiveHistory string  `json:"reproductive_history"`
	VaccinationStatus   string  `json:"vaccination_status"`
	ChronicInflammation string  `json:"chronic_inflammation"`
	PreviousCancer      string  `json:"previous_cancer"`
}

// CancerResult is the evaluated outcome.
type CancerResult struct {
	RiskLevel       string   `json:"risk_level"`
	Score           int      `json:"score"`
	Confidence      int      `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`
	ScreeningTests  []string `json:"screening_tests"`
}

var cancerLadder = scoring.Ladder{
	{Min: 18, Level: "Very High Risk"},
	{Min: 12, Level: "High Risk"},
	{Min: 7, Level: "Moderate Risk"},
	{Min: 3, Level: "Low Risk"},
	{Min: 0, Level: "Very Low Risk"},
}

// EvaluateCancer scores the input against the oncology rubric,
// collecting named risk factors and suggested screening tests along
// the way.
func EvaluateCancer(in CancerInput) CancerResult {
	score := 0
	var factors, tests []string

	switch {
	case in.Age >= 70:
		score += 5
		factors = append(factors, "Advanced age (≥70)")
	case in.Age >= 60:
		score += 4
		factors = append(factors, "Older age (60-69)")
	case in.Age >= 50:
		score += 3
		factors = append(factors, "Middle age (50-59)")
	case in.Age >= 40:
		score += 2
		factors = append(factors, "Age over 40")
	}

	switch in.Gender {
	case "female":
		tests = append(tests, "Mammography (40+)", "Cervical screening (21+)")
		if in.ReproductiveHistory == "high_risk" {
			score += 2
			factors = append(factors, "High-risk reproductive factors")
		}
	case "male":
		tests = append(tests, "Prostate screening (50+)")
	}

	switch in.SmokingHistory {
	case "heavy_current":
		score += 6
		factors = append(factors, "Heavy current smoking")
		tests = append(tests, "Low-dose CT (lung)", "Head & neck examination")
	case "current":
		score += 4
		factors = append(factors, "Current smoking")
		tests = append(tests, "Lung screening")
	case "former_heavy":
		score += 3
		factors = append(factors, "Former heavy smoker")
		tests = append(tests, "Lung screening")
	case "former":
		score += 2
		factors = append(factors, "Former smoker")
	}

	switch in.AlcoholConsumption {
	case "heavy":
		score += 3
		factors = append(factors, "Heavy alcohol use")
		tests = append(tests, "Liver imaging", "Upper endoscopy")
	case "moderate":
		score++
		factors = append(factors, "Moderate alcohol use")
	}

	switch in.FamilyHistory {
	case "strong":
		score += 4
		factors = append(factors, "Strong family history")
		tests = append(tests, "Genetic counseling", "Enhanced screening")
	case "moderate":
		score += 2
		factors = append(factors, "Family history present")
		tests = append(tests, "Earlier screening")
	}

	switch {
	case in.BMI >= 35:
		score += 3
		factors = append(factors, "Severe obesity (BMI ≥35)")
	case in.BMI >= 30:
		score += 2
		factors = append(factors, "Obesity (BMI 30-35)")
	case in.BMI >= 25:
		score++
		factors = append(factors, "Overweight (BMI 25-30)")
	}

	switch in.PhysicalActivity {
	case "none":
		score += 2
		factors = append(factors, "Sedentary lifestyle")
	case "minimal":
		score++
		factors = append(factors, "Insufficient physical activity")
	case "regular":
		score--
	case "high":
		score -= 2
	}

	switch in.DietQuality {
	case "poor":
		score += 2
		factors = append(factors, "Poor diet quality")
	case "average":
		score++
	case "excellent":
		score--
	}

	switch in.SunExposure {
	case "excessive":
		score += 2
		factors = append(factors, "Excessive sun exposure")
		tests = append(tests, "Dermatology screening")
	case "moderate":
		score++
		tests = append(tests, "Annual skin check")
	}

	switch in.OccupationalExposure {
	case "high":
		score += 3
		factors = append(factors, "High occupational exposure")
		tests = append(tests, "Occupational health screening")
	case "moderate":
		score++
		factors = append(factors, "Moderate occupational exposure")
	}

	switch in.MedicalHistory {
	case "high_risk":
		score += 3
		factors = append(factors, "High-risk medical conditions")
		tests = append(tests, "Targeted screening")
	case "moderate_risk":
		score++
		factors = append(factors, "Some risk conditions")
	}

	if in.VaccinationStatus == "incomplete" {
		score++
		factors = append(factors, "Incomplete vaccinations")
	}

	switch in.ChronicInflammation {
	case "severe":
		score += 2
		factors = append(factors, "Severe chronic inflammation")
	case "moderate":
		score++
		factors = append(factors, "Chronic inflammatory condition")
	}

	if in.PreviousCancer == "yes" {
		score += 4
		factors = append(factors, "Previous cancer history")
		tests = append(tests, "Enhanced surveillance")
	}

	if in.Age >= 50 {
		tests = append(tests, "Colonoscopy")
	}
	if in.Age >= 45 {
		tests = append(tests, "Annual physical exam")
	}

	level := cancerLadder.Bucket(score)

	var confidence int
	var recs []string
	switch level {
	case "Very High Risk":
		confidence = scoring.Confidence(85, 1, 95, score-18)
		recs = []string{
			"Immediate oncology consultation required",
			"Comprehensive genetic counseling and testing",
			"Enhanced multi-organ screening program",
			"Consider preventive interventions where appropriate",
			"Aggressive lifestyle modification program",
			"Regular monitoring every 3-6 months",
			"Participation in high-risk screening protocols",
			"Consider chemoprevention if eligible",
		}
	case "High Risk":
		confidence = scoring.Confidence(80, 2, 95, score-12)
		recs = []string{
			"Consultation with oncologist or genetic counselor",
			"Accelerated and enhanced screening protocols",
			"Annual comprehensive cancer screening",
			"Immediate smoking cessation if applicable",
			"Weight management and dietary counseling",
			"Consider preventive medications where indicated",
			"Regular follow-up every 6 months",
			"Family screening recommendations",
		}
	case "Moderate Risk":
		confidence = scoring.Confidence(75, 2, 95, score-7)
		recs = []string{
			"Follow standard cancer screening guidelines",
			"Annual health check-ups with primary physician",
			"Lifestyle modification program",
			"Age-appropriate cancer screening tests",
			"Maintain healthy weight and diet",
			"Regular physical activity (150 min/week)",
			"Limit alcohol consumption",
			"Annual skin and self-examinations",
		}
	case "Low Risk":
		confidence = scoring.Confidence(70, 3, 95, score-3)
		recs = []string{
			"Continue healthy lifestyle practices",
			"Follow routine screening recommendations",
			"Maintain regular physical activity",
			"Healthy diet rich in fruits and vegetables",
			"Limit processed foods and red meat",
			"Avoid tobacco and limit alcohol",
			"Sun protection and skin awareness",
			"Biennial health check-ups",
		}
	default:
		confidence = scoring.Confidence(75, 3, 95, score)
		recs = []string{
			"Excellent! Continue current healthy practices",
			"Maintain optimal weight and fitness level",
			"Continue nutritious, balanced diet",
			"Regular exercise and stress management",
			"Follow age-appropriate screening only",
			"Sun safety and skin protection",
			"Avoid known carcinogens",
			"Health check-ups every 2-3 years",
		}
	}

	return CancerResult{
		RiskLevel:       level,
		Score:           score,
		Confidence:      confidence,
		Recommendations: recs,
		RiskFactors:     scoring.Dedup(factors, 6),
		ScreeningTests:  scoring.Dedup(tests, 6),
	}
}
