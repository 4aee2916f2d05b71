package assessment

import "github.com/vitalscan/vitalscan/internal/platform/scoring"

// LiverInput holds a standard liver panel. Enzyme values are IU/L,
// bilirubin and proteins in mg/dL and g/dL respectively.
type LiverInput struct {
	Age                  float64 `json:"age"`
	Gender               string  `json:"gender"`
	TotalBilirubin       float64 `json:"total_bilirubin"`
	DirectBilirubin      float64 `json:"direct_bilirubin"`
	AlkalinePhosphatase  float64 `json:"alkaline_phosphatase"`
	ALT                  float64 `json:"alt"`
	AST                  float64 `json:"ast"`
	TotalProteins        float64 `json:"total_proteins"`
	Albumin              float64 `json:"albumin"`
	AlbuminGlobulinRatio float64 `json:"albumin_globulin_ratio"`
}

// LiverResult is the evaluated outcome.
type LiverResult struct {
	RiskLevel       string   `json:"risk_level"`
	Score           int      `json:"score"`
	Confidence      int      `json:"confidence"`
	ASTALTRatio     float64  `json:"ast_alt_ratio"`
	Recommendations []string `json:"recommendations"`
}

var (
	liverAgeBands       = []scoring.Band{{Above: 65, Points: 2}, {Above: 50, Points: 1}}
	liverTBiliBands     = []scoring.Band{{Above: 3.0, Points: 4}, {Above: 2.0, Points: 3}, {Above: 1.2, Points: 2}}
	liverDBiliBands     = []scoring.Band{{Above: 1.0, Points: 3}, {Above: 0.5, Points: 2}, {Above: 0.3, Points: 1}}
	liverALPBands       = []scoring.Band{{Above: 300, Points: 3}, {Above: 200, Points: 2}, {Above: 147, Points: 1}}
	liverEnzymeBands    = []scoring.Band{{Above: 200, Points: 4}, {Above: 100, Points: 3}, {Above: 80, Points: 2}, {Above: 40, Points: 1}}
	liverRatioBands     = []scoring.Band{{Above: 2.0, Points: 2}, {Above: 1.5, Points: 1}}
	liverAlbuminBands   = []scoring.BandBelow{{Below: 3.0, Points: 3}, {Below: 3.5, Points: 2}}

	liverLadder = scoring.Ladder{
		{Min: 15, Level: "High Risk"},
		{Min: 10, Level: "Moderate Risk"},
		{Min: 5, Level: "Mild Dysfunction"},
		{Min: 0, Level: "Normal Function"},
	}
)

// EvaluateLiver scores the input against the hepatic rubric. The
// AST/ALT ratio (de Ritis) only contributes when ALT is nonzero.
func EvaluateLiver(in LiverInput) LiverResult {
	score := scoring.Grade(in.Age, liverAgeBands)
	score += scoring.Grade(in.TotalBilirubin, liverTBiliBands)
	score += scoring.Grade(in.DirectBilirubin, liverDBiliBands)
	score += scoring.Grade(in.AlkalinePhosphatase, liverALPBands)
	score += scoring.Grade(in.ALT, liverEnzymeBands)
	score += scoring.Grade(in.AST, liverEnzymeBands)

	var ratio float64
	if in.ALT > 0 {
		ratio = in.AST / in.ALT
		score += scoring.Grade(ratio, liverRatioBands)
	}

	if in.TotalProteins < 6.0 {
		score += 2
	} else if in.TotalProteins > 8.5 {
		score++
	}

	score += scoring.GradeBelow(in.Albumin, liverAlbuminBands)

	if in.AlbuminGlobulinRatio < 1.0 {
		score += 2
	} else if in.AlbuminGlobulinRatio > 2.5 {
		score++
	}

	level := liverLadder.Bucket(score)

	var confidence int
	var recs []string
	switch level {
	case "High Risk":
		confidence = scoring.Confidence(85, 1, 95, score-15)
		recs = []string{
			"Immediate hepatology consultation required",
			"Consider hospitalization for severe cases",
			"Complete abstinence from alcohol and hepatotoxic drugs",
			"Antiviral therapy if viral hepatitis detected",
			"Monitor for complications (ascites, varices)",
			"Low-sodium diet (<2g/day) if fluid retention",
			"Regular liver function monitoring (weekly)",
		}
	case "Moderate Risk":
		confidence = scoring.Confidence(75, 1, 90, score-10)
		recs = []string{
			"Gastroenterologist consultation recommended",
			"Identify and treat underlying causes",
			"Avoid alcohol and hepatotoxic medications",
			"Vaccination for Hepatitis A & B if not immune",
			"Weight management if obesity present",
			"Monthly liver function tests",
			"Consider liver biopsy if indicated",
		}
	case "Mild Dysfunction":
		confidence = scoring.Confidence(70, 2, 90, score-5)
		recs = []string{
			"Follow-up with primary physician",
			"Limit alcohol consumption significantly",
			"Review all medications for hepatotoxicity",
			"Maintain healthy weight through diet and exercise",
			"Increase intake of antioxidant-rich foods",
			"Bi-monthly liver function monitoring",
			"Stay hydrated and get adequate sleep",
		}
	default:
		confidence = scoring.Confidence(80, 2, 95, score)
		recs = []string{
			"Continue maintaining healthy lifestyle",
			"Moderate alcohol consumption or avoid completely",
			"Regular exercise and balanced nutrition",
			"Annual liver function screening",
			"Maintain healthy weight",
			"Stay hydrated (8-10 glasses water daily)",
			"Avoid unnecessary medications and supplements",
		}
	}

	return LiverResult{
		RiskLevel:       level,
		Score:           score,
		Confidence:      confidence,
		ASTALTRatio:     ratio,
		Recommendations: recs,
	}
}
