package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moveplanner/internal/adapter/http/handlers/mocks"
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFeeRuleHandler_CreateRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFeeRuleUseCase(ctrl)
		h := NewFeeRuleHandler(uc)

		r := gin.New()
		r.POST("/v1/companies/:company_id/fee-rules", h.CreateRule)

		req := httptest.NewRequest(http.MethodPost, "/v1/companies/comp-1/fee-rules", bytes.NewBufferString(`{"flat_cents":599}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate tier thresholds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFeeRuleUseCase(ctrl)
		h := NewFeeRuleHandler(uc)

		r := gin.New()
		r.POST("/v1/companies/:company_id/fee-rules", h.CreateRule)

		uc.EXPECT().CreateRule(gomock.Any(), "comp-1", gomock.Any()).Return(entities.FeeRule{}, usecase.ErrDuplicateTierBound)

		req := httptest.NewRequest(http.MethodPost, "/v1/companies/comp-1/fee-rules", bytes.NewBufferString(`{"type":"tiered","tiers":[{"threshold_cents":5000,"fee_cents":500},{"threshold_cents":5000,"fee_cents":300}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFeeRuleUseCase(ctrl)
		h := NewFeeRuleHandler(uc)

		r := gin.New()
		r.POST("/v1/companies/:company_id/fee-rules", h.CreateRule)

		flat := int64(599)
		uc.EXPECT().CreateRule(gomock.Any(), "comp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.NewFeeRuleInput) (entities.FeeRule, error) {
				if in.Type != entities.FeeRuleTypeFlat || in.FlatCents == nil || *in.FlatCents != 599 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.FeeRule{ID: "rule-1", CompanyID: "comp-1", Type: in.Type, FlatCents: &flat, Version: 3, Active: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/companies/comp-1/fee-rules", bytes.NewBufferString(`{"type":"flat","flat_cents":599}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["version"] != float64(3) || body["active"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestFeeRuleHandler_ListRules(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFeeRuleUseCase(ctrl)
	h := NewFeeRuleHandler(uc)

	r := gin.New()
	r.GET("/v1/companies/:company_id/fee-rules", h.ListRules)

	uc.EXPECT().ListRules(gomock.Any(), "comp-1", true).Return([]entities.FeeRule{
		{ID: "rule-2", CompanyID: "comp-1", Type: entities.FeeRuleTypePercent, Version: 2, Active: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/companies/comp-1/fee-rules?active=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestFeeRuleHandler_DeleteRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFeeRuleUseCase(ctrl)
	h := NewFeeRuleHandler(uc)

	r := gin.New()
	r.DELETE("/v1/fee-rules/:rule_id", h.DeleteRule)

	uc.EXPECT().DeleteRule(gomock.Any(), "rule-missing").Return(usecase.ErrFeeRuleNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/v1/fee-rules/rule-missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
