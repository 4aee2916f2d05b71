package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Evaluate runs the analyzer for the domain over the raw input,
// persists the outcome and returns the stored record. The input and
// full result are kept verbatim so history replays exactly what the
// user saw.
func (s *Service) Evaluate(ctx context.Context, userID uuid.UUID, domain Domain, input json.RawMessage) (*Assessment, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user_id is required")
	}
	if !validDomains[domain] {
		return nil, fmt.Errorf("unknown assessment domain: %s", domain)
	}

	var (
		result     interface{}
		riskLevel  string
		score      int
		confidence int
	)

	switch domain {
	case DomainDiabetes:
		var in DiabetesInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding diabetes input: %w", err)
		}
		r := EvaluateDiabetes(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Score, r.Confidence
	case DomainHeart:
		var in HeartInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding heart input: %w", err)
		}
		r := EvaluateHeart(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Score, r.Confidence
	case DomainKidney:
		var in KidneyInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding kidney input: %w", err)
		}
		r := EvaluateKidney(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Score, r.Confidence
	case DomainLiver:
		var in LiverInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding liver input: %w", err)
		}
		r := EvaluateLiver(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Score, r.Confidence
	case DomainLung:
		var in LungInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding lung input: %w", err)
		}
		r := EvaluateLung(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Score, r.Confidence
	case DomainCancer:
		var in CancerInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding cancer input: %w", err)
		}
		r := EvaluateCancer(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Score, r.Confidence
	case DomainAnemia:
		var in AnemiaInput
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decoding anemia input: %w", err)
		}
		r := EvaluateAnemia(in)
		result, riskLevel, score, confidence = r, r.RiskLevel, r.Severity, r.Confidence
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}

	a := &Assessment{
		UserID:     userID,
		Domain:     domain,
		RiskLevel:  riskLevel,
		Score:      score,
		Confidence: confidence,
		Input:      input,
		Result:     resultJSON,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("storing assessment: %w", err)
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) History(ctx context.Context, userID uuid.UUID, domain Domain, limit, offset int) ([]*Assessment, int, error) {
	if domain != "" && !validDomains[domain] {
		return nil, 0, fmt.Errorf("unknown assessment domain: %s", domain)
	}
	return s.repo.ListByUser(ctx, userID, domain, limit, offset)
}
