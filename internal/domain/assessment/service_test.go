package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	store map[uuid.UUID]*Assessment
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Assessment)}
}

func (m *mockRepo) Create(_ context.Context, a *Assessment) error {
	a.ID = uuid.New()
	m.store[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Assessment, error) {
	a, ok := m.store[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID, domain Domain, limit, offset int) ([]*Assessment, int, error) {
	var result []*Assessment
	for _, a := range m.store {
		if a.UserID != userID {
			continue
		}
		if domain != "" && a.Domain != domain {
			continue
		}
		result = append(result, a)
	}
	return result, len(result), nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestService_Evaluate(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	input := json.RawMessage(`{"glucose":145,"bmi":31,"age":50,"blood_pressure":145}`)

	a, err := svc.Evaluate(context.Background(), userID, DomainDiabetes, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected assigned id")
	}
	if a.RiskLevel != "high" || a.Score != 7 {
		t.Errorf("expected high/7, got %s/%d", a.RiskLevel, a.Score)
	}

	var r DiabetesResult
	if err := json.Unmarshal(a.Result, &r); err != nil {
		t.Fatalf("stored result is not valid JSON: %v", err)
	}
	if r.RiskLevel != a.RiskLevel {
		t.Errorf("summary risk level diverges from stored result: %s vs %s", a.RiskLevel, r.RiskLevel)
	}
}

func TestService_Evaluate_UnknownDomain(t *testing.T) {
	svc := newTestService()
	_, err := svc.Evaluate(context.Background(), uuid.New(), "phrenology", json.RawMessage(`{}`))
	if err == nil {
		t.Error("expected error for unknown domain")
	}
}

func TestService_Evaluate_MissingUser(t *testing.T) {
	svc := newTestService()
	_, err := svc.Evaluate(context.Background(), uuid.Nil, DomainHeart, json.RawMessage(`{}`))
	if err == nil {
		t.Error("expected error for missing user")
	}
}

func TestService_Evaluate_BadInput(t *testing.T) {
	svc := newTestService()
	_, err := svc.Evaluate(context.Background(), uuid.New(), DomainHeart, json.RawMessage(`{"age":"old"}`))
	if err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestService_History_FilterByDomain(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	if _, err := svc.Evaluate(context.Background(), userID, DomainDiabetes, json.RawMessage(`{"glucose":90}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Evaluate(context.Background(), userID, DomainHeart, json.RawMessage(`{"age":30}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, total, err := svc.History(context.Background(), userID, "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("expected 2 assessments, got %d", total)
	}

	hearts, total, err := svc.History(context.Background(), userID, DomainHeart, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || hearts[0].Domain != DomainHeart {
		t.Errorf("expected 1 heart assessment, got %d", total)
	}

	if _, _, err := svc.History(context.Background(), userID, "phrenology", 20, 0); err == nil {
		t.Error("expected error for unknown domain filter")
	}
}

func TestService_History_IsolatedPerUser(t *testing.T) {
	svc := newTestService()
	alice, bob := uuid.New(), uuid.New()

	if _, err := svc.Evaluate(context.Background(), alice, DomainAnemia, json.RawMessage(`{"gender":"female","hemoglobin":9.5}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, total, err := svc.History(context.Background(), bob, "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected empty history for other user, got %d", total)
	}
}
