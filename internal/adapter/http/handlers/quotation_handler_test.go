package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"bond_quotation/internal/adapter/http/handlers/mocks"
	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuotationRouter(h *QuotationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotation/save", h.Save)
	r.GET("/v1/quotation/:id", h.GetByID)
	r.POST("/v1/bond/payload", h.BuildBondPayload)
	return r
}

func TestQuotationHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		body   string
		err    error
		call   bool
		status int
	}{
		{name: "invalid json", body: "{", status: http.StatusBadRequest},
		{name: "incomplete", body: `{"quoteDraft":{"companyId":"C-001"}}`, err: usecase.ErrIncompleteQuotation, call: true, status: http.StatusBadRequest},
		{name: "invalid draft", body: `{"quoteDraft":{"companyId":"C-001","grade":"Z"}}`, err: entities.ErrInvalidDraft, call: true, status: http.StatusBadRequest},
		{name: "repo failure", body: `{"quoteDraft":{"companyId":"C-001"}}`, err: errors.New("db"), call: true, status: http.StatusInternalServerError},
		{name: "success", body: `{"quoteDraft":{"companyId":"C-001","bondType":"Bid","amount":100}}`, call: true, status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuotationUseCase(ctrl)
			r := newQuotationRouter(NewQuotationHandler(uc))

			if tt.call {
				res := entities.SaveQuotationResult{}
				if tt.err == nil {
					res = entities.SaveQuotationResult{QuotationID: "Q-1", ExpiresAt: time.Now().Add(48 * time.Hour)}
				}
				uc.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteDraft{})).Return(res, tt.err)
			}

			w := serve(r, http.MethodPost, "/v1/quotation/save", tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestQuotationHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	r := newQuotationRouter(NewQuotationHandler(uc))

	uc.EXPECT().GetByID(gomock.Any(), "Q-404").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)
	if w := serve(r, http.MethodGet, "/v1/quotation/Q-404", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "Q-1").Return(entities.Quotation{ID: "Q-1", Status: entities.QuotationStatusExpired}, nil)
	w := serve(r, http.MethodGet, "/v1/quotation/Q-1", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"expired"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestQuotationHandler_BuildBondPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	r := newQuotationRouter(NewQuotationHandler(uc))

	if w := serve(r, http.MethodPost, "/v1/bond/payload", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().BuildBondPayload(gomock.Any(), "Q-1", gomock.Nil()).Return(entities.BondRequestPayload{
		QuotationID: "Q-1", Attachments: []string{}, Notes: entities.BondRequestNotes,
	}, nil)
	w := serve(r, http.MethodPost, "/v1/bond/payload", `{"quotationId":"Q-1"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), entities.BondRequestNotes) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().BuildBondPayload(gomock.Any(), "Q-2", gomock.Not(gomock.Nil())).Return(entities.BondRequestPayload{QuotationID: "Q-2"}, nil)
	if w := serve(r, http.MethodPost, "/v1/bond/payload", `{"quotationId":"Q-2","quoteDraft":{"companyId":"C-001"}}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
