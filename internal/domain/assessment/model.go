package assessment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Domain identifies one of the analyzers.
type Domain string

const (
	DomainDiabetes Domain = "diabetes"
	DomainHeart    Domain = "heart"
	DomainKidney   Domain = "kidney"
	DomainLiver    Domain = "liver"
	DomainLung     Domain = "lung"
	DomainCancer   Domain = "cancer"
	DomainAnemia   Domain = "anemia"
)

var validDomains = map[Domain]bool{
	DomainDiabetes: true, DomainHeart: true, DomainKidney: true,
	DomainLiver: true, DomainLung: true, DomainCancer: true,
	DomainAnemia: true,
}

// Assessment maps to the assessment table: one row per completed
// evaluation, with the raw input and full result kept as JSON so the
// history endpoint can replay what the user saw.
type Assessment struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	UserID     uuid.UUID       `db:"user_id" json:"user_id"`
	Domain     Domain          `db:"domain" json:"domain"`
	RiskLevel  string          `db:"risk_level" json:"risk_level"`
	Score      int             `db:"score" json:"score"`
	Confidence int             `db:"confidence" json:"confidence"`
	Input      json.RawMessage `db:"input" json:"input"`
	Result     json.RawMessage `db:"result" json:"result"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// LabValue annotates a single measurement with its reference status.
type LabValue struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Status string `json:"status"`
}
