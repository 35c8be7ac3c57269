package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/raiseready/match-engine/internal/errors"
	"github.com/raiseready/match-engine/internal/matching"
	"github.com/raiseready/match-engine/internal/models"
	"github.com/raiseready/match-engine/internal/services"
)

// Mock match service for testing
type mockMatchService struct {
	result    *services.MatchRunResult
	persisted []models.PersistedMatch
	err       error
}

func (m *mockMatchService) Run(_ context.Context, founderID, artifactID uuid.UUID) (*services.MatchRunResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockMatchService) MatchesForFounder(_ context.Context, founderID uuid.UUID) ([]models.PersistedMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.persisted, nil
}

func (m *mockMatchService) MatchesForInvestor(_ context.Context, investorID uuid.UUID) ([]models.PersistedMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.persisted, nil
}

func setupTestRouter(svc services.MatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewMatchHandler(svc)
	r.POST("/match", handler.RunMatching)
	r.GET("/match", handler.GetFounderMatches)
	r.GET("/match/investor/:id", handler.GetInvestorMatches)

	return r
}

func postMatch(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunMatchingSuccess(t *testing.T) {
	investorID := uuid.New()
	svc := &mockMatchService{
		result: &services.MatchRunResult{
			Matches: []matching.ScoredMatch{
				{InvestorID: investorID, InvestorName: "Acme Impact Fund", Score: 95, Reasons: []string{"Invests in Kenya"}},
			},
			TruncatedToTop: 10,
		},
	}
	r := setupTestRouter(svc)

	w := postMatch(t, r, map[string]string{
		"artifact_id": uuid.New().String(),
		"founder_id":  uuid.New().String(),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success        bool                   `json:"success"`
		Matches        []matching.ScoredMatch `json:"matches"`
		TruncatedToTop int                    `json:"truncated_to_top"`
		FailedWrites   int                    `json:"failed_writes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if !resp.Success {
		t.Error("Expected success true")
	}
	if len(resp.Matches) != 1 || resp.Matches[0].Score != 95 {
		t.Errorf("Unexpected matches %+v", resp.Matches)
	}
	if resp.TruncatedToTop != 10 {
		t.Errorf("Expected truncated_to_top 10, got %d", resp.TruncatedToTop)
	}
}

func TestRunMatchingEmptyPool(t *testing.T) {
	svc := &mockMatchService{
		result: &services.MatchRunResult{Matches: []matching.ScoredMatch{}, TruncatedToTop: 10},
	}
	r := setupTestRouter(svc)

	w := postMatch(t, r, map[string]string{
		"artifact_id": uuid.New().String(),
		"founder_id":  uuid.New().String(),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Empty pool must be a 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["success"] != true {
		t.Error("Expected success true for empty pool")
	}
}

func TestRunMatchingValidation(t *testing.T) {
	r := setupTestRouter(&mockMatchService{})

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing founder_id", map[string]string{"artifact_id": uuid.New().String()}},
		{"missing artifact_id", map[string]string{"founder_id": uuid.New().String()}},
		{"malformed artifact_id", map[string]string{"artifact_id": "not-a-uuid", "founder_id": uuid.New().String()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postMatch(t, r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRunMatchingNotFound(t *testing.T) {
	svc := &mockMatchService{err: apperrors.NotFound("artifact not found", nil)}
	r := setupTestRouter(svc)

	w := postMatch(t, r, map[string]string{
		"artifact_id": uuid.New().String(),
		"founder_id":  uuid.New().String(),
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestGetFounderMatches(t *testing.T) {
	founderID := uuid.New()
	svc := &mockMatchService{
		persisted: []models.PersistedMatch{
			{ID: uuid.New(), FounderID: founderID, Score: 80, Status: models.MatchSuggested, InvestorName: "Fund A"},
			{ID: uuid.New(), FounderID: founderID, Score: 60, Status: models.MatchSuggested, InvestorName: "Fund B"},
		},
	}
	r := setupTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/match?founder_id="+founderID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Matches []models.PersistedMatch `json:"matches"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Matches) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(resp.Matches))
	}
}

func TestGetFounderMatchesEmptyList(t *testing.T) {
	svc := &mockMatchService{persisted: []models.PersistedMatch{}}
	r := setupTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/match?founder_id="+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	// A founder with no matches gets an empty list on the wire, never null.
	if !bytes.Contains(w.Body.Bytes(), []byte(`"matches":[]`)) {
		t.Errorf("Expected empty matches array in body, got %s", w.Body.String())
	}
}

func TestGetFounderMatchesRequiresID(t *testing.T) {
	r := setupTestRouter(&mockMatchService{})

	req := httptest.NewRequest(http.MethodGet, "/match", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without founder_id, got %d", w.Code)
	}
}

func TestGetInvestorMatches(t *testing.T) {
	investorID := uuid.New()
	svc := &mockMatchService{
		persisted: []models.PersistedMatch{
			{ID: uuid.New(), InvestorID: investorID, Score: 70, Status: models.MatchSuggested},
		},
	}
	r := setupTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/match/investor/"+investorID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
}
