package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"bond_quotation/internal/adapter/http/handlers/mocks"
	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLookupRouter(h *LookupHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/irp/grade", h.GetCompanyGrade)
	r.POST("/v1/irp/intermediary/validate", h.ValidateIntermediary)
	r.POST("/v1/irp/company/address", h.RecordCompanyAddress)
	r.GET("/v1/irp/company/address", h.ListCompanyAddresses)
	r.POST("/v1/sanction/check", h.CheckSanction)
	r.POST("/v1/rag/pricing", h.QueryPricing)
	return r
}

func TestLookupHandler_GetCompanyGrade(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing company id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newLookupRouter(NewLookupHandler(uc))

		uc.EXPECT().GetCompanyGrade(gomock.Any(), "").Return(entities.CompanyGrade{}, usecase.ErrMissingCompanyID)

		if w := serve(r, http.MethodGet, "/v1/irp/grade", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newLookupRouter(NewLookupHandler(uc))

		uc.EXPECT().GetCompanyGrade(gomock.Any(), "C-001").Return(entities.CompanyGrade{CompanyID: "C-001", Grade: entities.GradeA}, nil)

		w := serve(r, http.MethodGet, "/v1/irp/grade?companyId=C-001", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"grade":"A"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestLookupHandler_ValidateIntermediary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILookupUseCase(ctrl)
	r := newLookupRouter(NewLookupHandler(uc))

	if w := serve(r, http.MethodPost, "/v1/irp/intermediary/validate", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().ValidateIntermediary(gomock.Any(), "INT-999").Return(entities.IntermediaryValidation{IntermediaryID: "INT-999"}, nil)
	w := serve(r, http.MethodPost, "/v1/irp/intermediary/validate", `{"intermediaryId":"INT-999"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"registered":false`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestLookupHandler_CompanyAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILookupUseCase(ctrl)
	r := newLookupRouter(NewLookupHandler(uc))

	uc.EXPECT().RecordCompanyAddress(gomock.Any(), "C-001", "abc").Return(entities.CompanyAddress{}, usecase.ErrInvalidAddress)
	if w := serve(r, http.MethodPost, "/v1/irp/company/address", `{"companyId":"C-001","address":"abc"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().RecordCompanyAddress(gomock.Any(), "C-001", "12 Main St").Return(entities.CompanyAddress{CompanyID: "C-001", Address: "12 Main St"}, nil)
	if w := serve(r, http.MethodPost, "/v1/irp/company/address", `{"companyId":"C-001","address":"12 Main St"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().ListCompanyAddresses(gomock.Any(), "C-002").Return(nil, nil)
	w := serve(r, http.MethodGet, "/v1/irp/company/address?companyId=C-002", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestLookupHandler_CheckSanction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILookupUseCase(ctrl)
	r := newLookupRouter(NewLookupHandler(uc))

	if w := serve(r, http.MethodPost, "/v1/sanction/check", `{"country":"US"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().CheckSanction(gomock.Any(), entities.SanctionCheck{BeneficiaryName: "Acme", Country: "XX", Amount: 5}).
		Return(entities.SanctionResult{Status: entities.SanctionReview, Reason: "High-risk country"}, nil)
	w := serve(r, http.MethodPost, "/v1/sanction/check", `{"beneficiaryName":"Acme","country":"xx","amount":5}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"REVIEW"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestLookupHandler_QueryPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "denied grade", err: entities.ErrAccessDenied, status: http.StatusForbidden},
		{name: "no bond type matched", err: entities.ErrNoPricingFound, status: http.StatusNotFound},
		{name: "retriever failure", err: errors.New("index down"), status: http.StatusInternalServerError},
		{name: "success", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockILookupUseCase(ctrl)
			r := newLookupRouter(NewLookupHandler(uc))

			uc.EXPECT().QueryPricing(gomock.Any(), gomock.AssignableToTypeOf(entities.PricingQuery{})).DoAndReturn(
				func(_ context.Context, q entities.PricingQuery) (entities.PricingGuidance, error) {
					if q.Query != "bid bond" || q.Context.Grade != entities.GradeD {
						t.Fatalf("unexpected query: %+v", q)
					}
					if tt.err != nil {
						return entities.PricingGuidance{}, tt.err
					}
					return entities.PricingGuidance{BondType: "Bid", Base: 250}, nil
				},
			)

			w := serve(r, http.MethodPost, "/v1/rag/pricing", `{"query":"bid bond","context":{"grade":"d"}}`)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}
