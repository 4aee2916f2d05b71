package assessment

import "github.com/vitalscan/vitalscan/internal/platform/scoring"

// LungInput covers smoking exposure, respiratory symptoms, vitals and
// imaging findings for the respiratory screening.
type LungInput struct {
	Age                  float64 `json:"age"`
	Gender               string  `json:"gender"`
	SmokingHistory       string  `json:"smoking_history"`
	YearsOfSmoking       float64 `json:"years_of_smoking"`
	PackYears            float64 `json:"pack_years"`
	ChronicCough         string  `json:"chronic_cough"`
	ShortnessOfBreath    string  `json:"shortness_of_breath"`
	ChestPain            string  `json:"chest_pain"`
	Wheezing             string  `json:"wheezing"`
	FatigueWeakness      string  `json:"fatigue_weakness"`
	WeightLoss           string  `json:"weight_loss"`
	RespiratoryRate      float64 `json:"respiratory_rate"`
	OxygenSaturation     float64 `json:"oxygen_saturation"`
	PeakFlow             float64 `json:"peak_flow"`
	ChestXray            string  `json:"chest_xray"`
	FamilyHistory        string  `json:"family_history"`
	OccupationalExposure string  `json:"occupational_exposure"`
	Allergies            string  `json:"allergies"`
}

// LungResult is the evaluated outcome.
type LungResult struct {
	RiskLevel          string   `json:"risk_level"`
	Score              int      `json:"score"`
	Confidence         int      `json:"confidence"`
	Recommendations    []string `json:"recommendations"`
	PossibleConditions []string `json:"possible_conditions"`
}

var (
	lungAgeBands       = []scoring.Band{{Above: 65, Points: 3}, {Above: 50, Points: 2}, {Above: 40, Points: 1}}
	lungPackYearBands  = []scoring.Band{{Above: 30, Points: 4}, {Above: 20, Points: 3}, {Above: 10, Points: 2}}
	lungRespRateBands  = []scoring.Band{{Above: 24, Points: 3}, {Above: 20, Points: 2}}
	lungSpO2Bands      = []scoring.BandBelow{{Below: 90, Points: 4}, {Below: 95, Points: 3}, {Below: 98, Points: 1}}

	lungCoughWeights      = map[string]int{"severe": 3, "moderate": 2, "mild": 1}
	lungBreathWeights     = map[string]int{"severe": 4, "moderate": 2, "mild": 1}
	lungChestPainWeights  = map[string]int{"severe": 3, "moderate": 2}
	lungWheezeWeights     = map[string]int{"frequent": 3, "occasional": 1}
	lungWeightLossWeights = map[string]int{"significant": 4, "moderate": 2}
	lungOccupWeights      = map[string]int{"high": 3, "moderate": 1}

	lungLadder = scoring.Ladder{
		{Min: 20, Level: "High Risk"},
		{Min: 12, Level: "Moderate Risk"},
		{Min: 6, Level: "Mild Risk"},
		{Min: 0, Level: "Healthy Lungs"},
	}
)

// expectedPeakFlow is the crude age/sex reference used to express the
// measured peak flow as a percentage.
func expectedPeakFlow(gender string, age float64) float64 {
	if gender == "male" {
		if age < 40 {
			return 600
		}
		return 500
	}
	if age < 40 {
		return 450
	}
	return 380
}

// EvaluateLung scores the input against the respiratory rubric and
// accumulates possible conditions per matched factor.
func EvaluateLung(in LungInput) LungResult {
	score := scoring.Grade(in.Age, lungAgeBands)
	var conditions []string

	switch in.SmokingHistory {
	case "current":
		score += 5
		conditions = append(conditions, "COPD", "Lung Cancer Risk", "Emphysema")
	case "former":
		score += 3
		conditions = append(conditions, "COPD Risk", "Residual Damage")
	}

	score += scoring.Grade(in.PackYears, lungPackYearBands)

	score += scoring.Choice(in.ChronicCough, lungCoughWeights)
	if in.ChronicCough == "severe" {
		conditions = append(conditions, "Chronic Bronchitis", "COPD")
	}

	score += scoring.Choice(in.ShortnessOfBreath, lungBreathWeights)
	switch in.ShortnessOfBreath {
	case "severe":
		conditions = append(conditions, "Asthma", "COPD", "Pulmonary Embolism")
	case "moderate":
		conditions = append(conditions, "Exercise Intolerance", "Mild Asthma")
	}

	score += scoring.Choice(in.ChestPain, lungChestPainWeights)
	if in.ChestPain == "severe" {
		conditions = append(conditions, "Pneumonia", "Pleuritis", "Pulmonary Embolism")
	}

	score += scoring.Choice(in.Wheezing, lungWheezeWeights)
	if in.Wheezing == "frequent" {
		conditions = append(conditions, "Asthma", "COPD", "Allergic Bronchitis")
	}

	score += scoring.Choice(in.WeightLoss, lungWeightLossWeights)
	if in.WeightLoss == "significant" {
		conditions = append(conditions, "Lung Cancer", "Advanced COPD", "Tuberculosis")
	}

	score += scoring.Grade(in.RespiratoryRate, lungRespRateBands)
	score += scoring.GradeBelow(in.OxygenSaturation, lungSpO2Bands)

	pct := in.PeakFlow / expectedPeakFlow(in.Gender, in.Age) * 100
	switch {
	case pct < 50:
		score += 4
		conditions = append(conditions, "Severe Airway Obstruction", "Acute Asthma")
	case pct < 70:
		score += 3
		conditions = append(conditions, "Moderate Airway Obstruction")
	case pct < 80:
		score += 2
	}

	switch in.ChestXray {
	case "abnormal":
		score += 4
		conditions = append(conditions, "Pneumonia", "Lung Cancer", "Pulmonary Fibrosis")
	case "suspicious":
		score += 2
	}

	if in.FamilyHistory == "yes" {
		score += 2
	}
	score += scoring.Choice(in.OccupationalExposure, lungOccupWeights)
	if in.OccupationalExposure == "high" {
		conditions = append(conditions, "Occupational Lung Disease", "Asbestosis")
	}
	if in.Allergies == "severe" {
		score += 2
		conditions = append(conditions, "Allergic Asthma", "Hypersensitivity Pneumonitis")
	}

	level := lungLadder.Bucket(score)

	var confidence int
	var recs []string
	switch level {
	case "High Risk":
		confidence = scoring.Confidence(85, 1, 95, score-20)
		recs = []string{
			"Immediate pulmonology consultation required",
			"Complete pulmonary function tests (PFTs)",
			"High-resolution CT scan of chest",
			"Consider bronchoscopy if indicated",
			"Immediate smoking cessation if applicable",
			"Oxygen therapy evaluation if hypoxic",
			"Pulmonary rehabilitation program",
			"Regular monitoring for disease progression",
		}
	case "Moderate Risk":
		confidence = scoring.Confidence(75, 1, 90, score-12)
		recs = []string{
			"Pulmonologist consultation recommended",
			"Spirometry and lung function testing",
			"Chest CT scan if symptoms persist",
			"Smoking cessation program if needed",
			"Bronchodilator therapy trial",
			"Avoid respiratory irritants and pollutants",
			"Annual influenza and pneumonia vaccines",
			"Regular follow-up every 3-6 months",
		}
	case "Mild Risk":
		confidence = scoring.Confidence(70, 2, 90, score-6)
		recs = []string{
			"Regular monitoring by primary physician",
			"Basic spirometry screening annually",
			"Smoking cessation if applicable",
			"Regular cardiovascular exercise as tolerated",
			"Avoid secondhand smoke and air pollution",
			"Maintain healthy weight",
			"Stay up-to-date with vaccinations",
			"Practice breathing exercises",
		}
	default:
		confidence = scoring.Confidence(80, 2, 95, score)
		recs = []string{
			"Continue maintaining excellent lung health",
			"Regular aerobic exercise (30 min, 5x/week)",
			"Avoid smoking and secondhand smoke",
			"Annual health screenings",
			"Practice deep breathing exercises",
			"Maintain good indoor air quality",
			"Stay hydrated and eat antioxidant-rich foods",
			"Get adequate sleep and manage stress",
		}
	}

	return LungResult{
		RiskLevel:          level,
		Score:              score,
		Confidence:         confidence,
		Recommendations:    recs,
		PossibleConditions: scoring.Dedup(conditions, 4),
	}
}
