package agent

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"bond_quotation/internal/domain/entities"
	mock_interfaces "bond_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newKeywordAgent(l Lookups) *Agent {
	opts := testOptions()
	return New(NewKeywordStrategy(l, NewStrictPricer(DefaultPricingConfig()), opts...), opts...)
}

func TestKeywordStrategy_StepByStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newKeywordAgent(stubLookups(ctrl))
	s := entities.NewConversationSession("s-k", StrategyKeyword, fixedNow)

	msg := send(t, a, s, "Hi, I need a quote")
	if !strings.Contains(msg.Content, "I need to fetch your company's grade from IRP first") {
		t.Fatalf("unexpected reply: %q", msg.Content)
	}
	expectStage(t, s, entities.StageCompanyID)

	msg = send(t, a, s, "Company ID C-001")
	if !strings.Contains(msg.Content, "Great! I've fetched your company's grade from IRP: A") {
		t.Fatalf("unexpected reply: %q", msg.Content)
	}
	if !msg.HasChip("IRP", entities.ChipSuccess) || !strings.Contains(msg.Content, "amount, tenor") {
		t.Fatalf("expected grade chip and missing details prompt: %+v", msg)
	}

	msg = send(t, a, s, "Performance bond, $2.5M, 180 days, US")
	if !strings.Contains(msg.Content, "Perfect! I've found pricing information") {
		t.Fatalf("unexpected reply: %q", msg.Content)
	}
	expectStage(t, s, entities.StagePricing)
	d := s.Draft
	if d.BondType != entities.BondTypePerformance || d.Amount != 2_500_000 || d.TenorDays != 180 || d.Country != "US" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.Pricing.FinalRateBps != 220 || !d.IsComplete() || !d.CanFinalize() {
		t.Fatalf("unexpected pricing: %+v", d.Pricing)
	}
	if !msg.HasChip("RAG", entities.ChipSuccess) {
		t.Fatalf("expected RAG chip: %+v", msg.ToolChips)
	}
}

func TestKeywordStrategy_OneShot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newKeywordAgent(stubLookups(ctrl))
	s := entities.NewConversationSession("s-k", StrategyKeyword, fixedNow)

	msg := send(t, a, s, "C-002 needs a bid bond of $1M for 6 months in DE")
	expectStage(t, s, entities.StagePricing)
	d := s.Draft
	if d.Grade != entities.GradeB || d.BondType != entities.BondTypeBid || d.Amount != 1_000_000 || d.TenorDays != 180 {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.Pricing.BaseRateBps != 250 || d.Pricing.FinalRateBps != 270 {
		t.Fatalf("unexpected pricing: %+v", d.Pricing)
	}
	if !strings.Contains(msg.Content, "grade from IRP: B") || !strings.Contains(msg.Content, "your Bid bond") {
		t.Fatalf("unexpected reply: %q", msg.Content)
	}
}

func TestKeywordStrategy_GradeDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newKeywordAgent(stubLookups(ctrl))
	s := entities.NewConversationSession("s-k", StrategyKeyword, fixedNow)

	msg := send(t, a, s, "Company ID C-004")
	if !strings.Contains(msg.Content, "grade from IRP: D") || !msg.HasChip("IRP", entities.ChipWarning) {
		t.Fatalf("unexpected reply: %+v", msg)
	}

	msg = send(t, a, s, "I need pricing for a performance bond")
	if !strings.Contains(msg.Content, "cannot provide pricing information for companies with grade D") {
		t.Fatalf("unexpected reply: %q", msg.Content)
	}
	if !msg.HasChip("RAG", entities.ChipError) || s.Draft.Pricing != (entities.Pricing{}) {
		t.Fatalf("expected denial chip and empty pricing: %+v", msg)
	}
	if s.State.Stage == entities.StagePricing {
		t.Fatalf("denied draft must not reach pricing")
	}
}

func TestKeywordStrategy_GradeLookupFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	l := stubLookups(ctrl)
	grades := mock_interfaces.NewMockICompanyGradeProvider(ctrl)
	grades.EXPECT().GetCompanyGrade(gomock.Any(), "C-001").Return(entities.CompanyGrade{}, errors.New("irp down"))
	l.Grades = grades
	a := newKeywordAgent(l)
	s := entities.NewConversationSession("s-k", StrategyKeyword, fixedNow)

	before := s.Draft
	msg := send(t, a, s, "C-001 performance bond $2M 90 days")
	if !reflect.DeepEqual(s.Draft, before) || !msg.HasChip("IRP", entities.ChipError) {
		t.Fatalf("draft changed or missing error chip: %+v", msg)
	}
}

func TestKeywordStrategy_PricingFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	l := stubLookups(ctrl)
	retriever := mock_interfaces.NewMockIPricingRetriever(ctrl)
	retriever.EXPECT().QueryPricing(gomock.Any(), gomock.Any()).Return(entities.PricingGuidance{}, errors.New("index unavailable"))
	l.Pricing = retriever
	opts := testOptions()
	a := New(NewKeywordStrategy(l, NewRandomPricer(DefaultPricingConfig(), l, nil, opts...), opts...), opts...)
	s := entities.NewConversationSession("s-k", StrategyKeyword, fixedNow)

	msg := send(t, a, s, "C-001 performance bond $2M 90 days")
	if !msg.HasChip("RAG", entities.ChipError) {
		t.Fatalf("expected RAG error chip: %+v", msg)
	}
	if s.Draft.CompanyID != "" || s.State.Stage != entities.StageIntermediaryID {
		t.Fatalf("draft and stage must be unchanged: %+v %+v", s.Draft, s.State)
	}
}

func TestKeywordStrategy_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newKeywordAgent(stubLookups(ctrl))
	s := entities.NewConversationSession("s-k", StrategyKeyword, fixedNow)

	send(t, a, s, "C-001 performance bond $2M 90 days")
	expectStage(t, s, entities.StagePricing)

	msg := send(t, a, s, "reset")
	if msg.Content != "Session reset. "+keywordFirstPrompt || !reflect.DeepEqual(s.Draft, entities.NewQuoteDraft()) {
		t.Fatalf("unexpected reset: %q %+v", msg.Content, s.Draft)
	}
}
