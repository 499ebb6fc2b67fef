package agent

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/infrastructure/irp"
	"bond_quotation/internal/infrastructure/rag"
	"bond_quotation/internal/infrastructure/sanction"
	mock_interfaces "bond_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testOptions() []Option {
	return []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLookupTimeout(time.Second),
	}
}

func stubLookups(ctrl *gomock.Controller) Lookups {
	addresses := mock_interfaces.NewMockICompanyAddressRepository(ctrl)
	addresses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.CompanyAddress) (entities.CompanyAddress, error) {
			return a, nil
		},
	).AnyTimes()
	registry := irp.NewStubRegistry(nil)
	return Lookups{
		Registry:  registry,
		Grades:    registry,
		Addresses: addresses,
		Sanctions: sanction.NewStubScreener(),
		Pricing:   rag.NewStubRetriever(),
	}
}

func newLinearAgent(l Lookups, opts ...Option) *Agent {
	opts = append(testOptions(), opts...)
	return New(NewLinearStrategy(l, NewStrictPricer(DefaultPricingConfig()), opts...), opts...)
}

func newSession() *entities.ConversationSession {
	return entities.NewConversationSession("s-1", StrategyLinear, fixedNow)
}

func send(t *testing.T, a *Agent, s *entities.ConversationSession, text string) entities.ChatMessage {
	t.Helper()
	msg := a.ProcessMessage(context.Background(), s, text)
	if msg.Type != entities.MessageTypeAgent || msg.ID == "" || !msg.Timestamp.Equal(fixedNow) {
		t.Fatalf("unexpected agent message envelope: %+v", msg)
	}
	return msg
}

func expectStage(t *testing.T, s *entities.ConversationSession, stage entities.Stage) {
	t.Helper()
	if s.State.Stage != stage {
		t.Fatalf("expected stage %s, got %s", stage, s.State.Stage)
	}
}

// walkTo drives a fresh session up to (not including) the given stage.
func walkTo(t *testing.T, a *Agent, s *entities.ConversationSession, company string, stage entities.Stage) {
	t.Helper()
	steps := []struct {
		stage entities.Stage
		input string
	}{
		{entities.StageIntermediaryID, "INT-100"},
		{entities.StageCompanyID, company},
		{entities.StageCompanyAddress, "123 Main Street, Springfield"},
		{entities.StageBusinessUnit, "Construction"},
		{entities.StageDebtTypeCode, "DT-01"},
		{entities.StageDepositionCountry, "US"},
		{entities.StageDuration, "6 months"},
		{entities.StageContractAsk, "yes"},
		{entities.StageContractNumber, "CN-1"},
		{entities.StageSubcontractNumber, "SC-1"},
		{entities.StageLimitNumber, "LN-1"},
	}
	for _, st := range steps {
		if st.stage == stage {
			return
		}
		expectStage(t, s, st.stage)
		send(t, a, s, st.input)
	}
}

func TestLinearStrategy_FullFlowWithoutContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newLinearAgent(stubLookups(ctrl))
	s := newSession()

	msg := send(t, a, s, "INT-100")
	expectStage(t, s, entities.StageCompanyID)
	if !msg.HasChip("Intermediary", entities.ChipSuccess) || s.Draft.IntermediaryID != "INT-100" {
		t.Fatalf("unexpected intermediary reply: %+v draft=%+v", msg, s.Draft)
	}

	msg = send(t, a, s, "C-001")
	expectStage(t, s, entities.StageCompanyAddress)
	if s.Draft.CompanyID != "C-001" || s.Draft.Grade != entities.GradeA || !msg.HasChip("IRP", entities.ChipSuccess) {
		t.Fatalf("unexpected company reply: %+v draft=%+v", msg, s.Draft)
	}

	send(t, a, s, "123 Main Street, Springfield")
	expectStage(t, s, entities.StageBusinessUnit)

	msg = send(t, a, s, "Construction")
	expectStage(t, s, entities.StageDebtTypeCode)
	if !s.State.SanctionDone || !msg.HasChip("Sanction", entities.ChipSuccess) || !msg.HasChip("IRP", entities.ChipInfo) {
		t.Fatalf("unexpected sanction reply: %+v", msg)
	}
	if !strings.Contains(msg.Content, "Sanction Check: PASS - No sanctions found") || !strings.Contains(msg.Content, "Company Grade: A") {
		t.Fatalf("unexpected sanction content: %q", msg.Content)
	}

	send(t, a, s, "DT-01")
	send(t, a, s, "US")
	expectStage(t, s, entities.StageDuration)

	send(t, a, s, "6 months")
	expectStage(t, s, entities.StageContractAsk)
	if s.Draft.DurationMonths != 6 || s.Draft.TenorDays != 180 {
		t.Fatalf("unexpected duration: %+v", s.Draft)
	}

	msg = send(t, a, s, "no")
	expectStage(t, s, entities.StagePricing)
	if s.Draft.HasContract == nil || *s.Draft.HasContract {
		t.Fatalf("expected hasContract=false")
	}
	want := entities.Pricing{BaseRateBps: 200, LoadingsBps: 20, FinalRateBps: 220}
	if s.Draft.Pricing != want {
		t.Fatalf("unexpected pricing: %+v", s.Draft.Pricing)
	}
	if !msg.HasChip("RAG", entities.ChipSuccess) || !strings.Contains(msg.Content, "Pricing data ready") {
		t.Fatalf("unexpected pricing reply: %+v", msg)
	}
	if !s.Draft.CanFinalize() {
		t.Fatalf("expected draft to be finalizable")
	}
}

func TestLinearStrategy_ContractBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newLinearAgent(stubLookups(ctrl))
	s := newSession()

	walkTo(t, a, s, "C-002", entities.StageContractAsk)
	send(t, a, s, "Yes")
	expectStage(t, s, entities.StageContractNumber)
	send(t, a, s, "CN-77")
	expectStage(t, s, entities.StageSubcontractNumber)
	send(t, a, s, "SC-77")
	expectStage(t, s, entities.StageLimitNumber)
	msg := send(t, a, s, "LN-77")
	expectStage(t, s, entities.StagePricing)

	d := s.Draft
	if d.ContractNumber != "CN-77" || d.SubcontractNumber != "SC-77" || d.LimitNumber != "LN-77" || d.ContractAnswer() != "yes" {
		t.Fatalf("unexpected contract fields: %+v", d)
	}
	if d.Grade != entities.GradeB || d.Pricing.BaseRateBps != 250 || d.Pricing.FinalRateBps != 270 {
		t.Fatalf("unexpected pricing: %+v", d.Pricing)
	}
	if !msg.HasChip("RAG", entities.ChipSuccess) {
		t.Fatalf("expected pricing chip, got %+v", msg.ToolChips)
	}
}

func TestLinearStrategy_PricingIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newLinearAgent(stubLookups(ctrl))
	s := newSession()

	walkTo(t, a, s, "C-003", entities.StagePricing)
	expectStage(t, s, entities.StagePricing)
	first := s.Draft.Pricing
	if first.BaseRateBps != 300 || first.FinalRateBps != 320 {
		t.Fatalf("unexpected grade C pricing: %+v", first)
	}

	send(t, a, s, "anything else?")
	expectStage(t, s, entities.StagePricing)
	if s.Draft.Pricing != first {
		t.Fatalf("expected pricing to be recomputed identically, got %+v", s.Draft.Pricing)
	}
}

func TestLinearStrategy_InvalidInputKeepsState(t *testing.T) {
	tests := []struct {
		stage entities.Stage
		input string
	}{
		{entities.StageIntermediaryID, "hello"},
		{entities.StageCompanyID, "c-001"},
		{entities.StageCompanyAddress, "abc"},
		{entities.StageBusinessUnit, "   "},
		{entities.StageDebtTypeCode, ""},
		{entities.StageDepositionCountry, " "},
		{entities.StageDuration, "soon"},
		{entities.StageContractAsk, "maybe"},
		{entities.StageContractNumber, ""},
		{entities.StageSubcontractNumber, ""},
		{entities.StageLimitNumber, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			a := newLinearAgent(stubLookups(ctrl))
			s := newSession()
			walkTo(t, a, s, "C-001", tt.stage)

			before := s.Draft
			beforeState := s.State
			msg := send(t, a, s, tt.input)

			if !reflect.DeepEqual(s.Draft, before) || s.State != beforeState {
				t.Fatalf("state changed on invalid input: %+v -> %+v", beforeState, s.State)
			}
			if msg.Content != stagePrompts[tt.stage] {
				t.Fatalf("expected re-prompt %q, got %q", stagePrompts[tt.stage], msg.Content)
			}
		})
	}
}

func TestLinearStrategy_UnregisteredIntermediary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newLinearAgent(stubLookups(ctrl))
	s := newSession()

	msg := send(t, a, s, "INT-999")
	expectStage(t, s, entities.StageIntermediaryID)
	if !strings.Contains(msg.Content, "INT-999 is not registered") || !msg.HasChip("Intermediary", entities.ChipError) {
		t.Fatalf("unexpected reply: %+v", msg)
	}
	if s.Draft.IntermediaryID != "" {
		t.Fatalf("draft must not change")
	}
}

func TestLinearStrategy_LookupFailureKeepsState(t *testing.T) {
	t.Run("grade lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		l := stubLookups(ctrl)
		grades := mock_interfaces.NewMockICompanyGradeProvider(ctrl)
		grades.EXPECT().GetCompanyGrade(gomock.Any(), "C-001").Return(entities.CompanyGrade{}, errors.New("irp down"))
		l.Grades = grades
		a := newLinearAgent(l)
		s := newSession()

		send(t, a, s, "INT-100")
		before := s.Draft
		msg := send(t, a, s, "C-001")
		expectStage(t, s, entities.StageCompanyID)
		if !reflect.DeepEqual(s.Draft, before) || !msg.HasChip("IRP", entities.ChipError) {
			t.Fatalf("unexpected reply or draft change: %+v", msg)
		}
	})

	t.Run("unknown grade returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		l := stubLookups(ctrl)
		grades := mock_interfaces.NewMockICompanyGradeProvider(ctrl)
		grades.EXPECT().GetCompanyGrade(gomock.Any(), "C-001").Return(entities.CompanyGrade{CompanyID: "C-001", Grade: "Z"}, nil)
		l.Grades = grades
		a := newLinearAgent(l)
		s := newSession()

		send(t, a, s, "INT-100")
		send(t, a, s, "C-001")
		expectStage(t, s, entities.StageCompanyID)
		if s.Draft.Grade != "" {
			t.Fatalf("invalid grade must not be stored")
		}
	})

	t.Run("address store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		l := stubLookups(ctrl)
		addresses := mock_interfaces.NewMockICompanyAddressRepository(ctrl)
		addresses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CompanyAddress{}, errors.New("db"))
		l.Addresses = addresses
		a := newLinearAgent(l)
		s := newSession()

		walkTo(t, a, s, "C-001", entities.StageCompanyAddress)
		msg := send(t, a, s, "123 Main Street")
		expectStage(t, s, entities.StageCompanyAddress)
		if s.Draft.ProspectCompanyAddress != "" || !msg.HasChip("Company", entities.ChipError) {
			t.Fatalf("unexpected reply: %+v", msg)
		}
	})

	t.Run("registry timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		l := stubLookups(ctrl)
		registry := mock_interfaces.NewMockIIntermediaryRegistry(ctrl)
		registry.EXPECT().ValidateIntermediary(gomock.Any(), "INT-100").DoAndReturn(
			func(ctx context.Context, _ string) (entities.IntermediaryValidation, error) {
				<-ctx.Done()
				return entities.IntermediaryValidation{}, ctx.Err()
			},
		)
		l.Registry = registry
		a := newLinearAgent(l, WithLookupTimeout(20*time.Millisecond))
		s := newSession()

		msg := send(t, a, s, "INT-100")
		expectStage(t, s, entities.StageIntermediaryID)
		if !msg.HasChip("Intermediary", entities.ChipError) || !strings.Contains(msg.Content, "Failed to validate intermediary") {
			t.Fatalf("unexpected reply: %+v", msg)
		}
	})
}

func TestLinearStrategy_SanctionFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	l := stubLookups(ctrl)
	screener := mock_interfaces.NewMockISanctionScreener(ctrl)
	screener.EXPECT().CheckSanction(gomock.Any(), entities.SanctionCheck{BeneficiaryName: "Company C-001"}).
		Return(entities.SanctionResult{}, errors.New("screening offline"))
	l.Sanctions = screener
	a := newLinearAgent(l)
	s := newSession()

	walkTo(t, a, s, "C-001", entities.StageBusinessUnit)
	msg := send(t, a, s, "Construction")
	expectStage(t, s, entities.StageDebtTypeCode)
	if s.State.SanctionDone {
		t.Fatalf("sanctionDone must stay false when the check failed")
	}
	if s.Draft.BusinessUnit != "Construction" || !msg.HasChip("Sanction", entities.ChipWarning) {
		t.Fatalf("unexpected reply: %+v", msg)
	}
}

func TestLinearStrategy_SanctionReviewIsInformational(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	l := stubLookups(ctrl)
	screener := mock_interfaces.NewMockISanctionScreener(ctrl)
	screener.EXPECT().CheckSanction(gomock.Any(), gomock.Any()).
		Return(entities.SanctionResult{Status: entities.SanctionFail, Reason: "listed"}, nil)
	l.Sanctions = screener
	a := newLinearAgent(l)
	s := newSession()

	walkTo(t, a, s, "C-001", entities.StageBusinessUnit)
	msg := send(t, a, s, "Construction")
	expectStage(t, s, entities.StageDebtTypeCode)
	if !s.State.SanctionDone || !msg.HasChip("Sanction", entities.ChipError) || !strings.Contains(msg.Content, "FAIL - listed") {
		t.Fatalf("unexpected reply: %+v", msg)
	}
}

func TestLinearStrategy_GradeGate(t *testing.T) {
	for _, company := range []string{"C-004", "C-005"} {
		t.Run(company, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			a := newLinearAgent(stubLookups(ctrl))
			s := newSession()

			walkTo(t, a, s, company, entities.StageContractAsk)
			msg := send(t, a, s, "no")
			expectStage(t, s, entities.StagePricing)

			if s.Draft.Pricing != (entities.Pricing{}) {
				t.Fatalf("expected empty pricing, got %+v", s.Draft.Pricing)
			}
			if !msg.HasChip("RAG", entities.ChipError) || !strings.Contains(msg.Content, "RAG access denied") {
				t.Fatalf("unexpected reply: %+v", msg)
			}
			if s.Draft.CanFinalize() {
				t.Fatalf("denied grade must not be finalizable")
			}
		})
	}
}

func TestLinearStrategy_Duration(t *testing.T) {
	tests := []struct {
		input  string
		months int
		days   int
		tenor  int
	}{
		{"180 days", 0, 180, 180},
		{"6 months", 6, 0, 180},
		{"2 months 10 days", 2, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			a := newLinearAgent(stubLookups(ctrl))
			s := newSession()

			walkTo(t, a, s, "C-001", entities.StageDuration)
			send(t, a, s, tt.input)
			expectStage(t, s, entities.StageContractAsk)
			d := s.Draft
			if d.DurationMonths != tt.months || d.DurationDays != tt.days || d.TenorDays != tt.tenor {
				t.Fatalf("unexpected duration: months=%d days=%d tenor=%d", d.DurationMonths, d.DurationDays, d.TenorDays)
			}
		})
	}
}

func TestAgent_ResetFromAnyStage(t *testing.T) {
	stages := []entities.Stage{
		entities.StageIntermediaryID,
		entities.StageCompanyID,
		entities.StageCompanyAddress,
		entities.StageBusinessUnit,
		entities.StageDebtTypeCode,
		entities.StageDepositionCountry,
		entities.StageDuration,
		entities.StageContractAsk,
		entities.StageContractNumber,
		entities.StageSubcontractNumber,
		entities.StageLimitNumber,
		entities.StagePricing,
	}
	for i, stage := range stages {
		t.Run(string(stage), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			a := newLinearAgent(stubLookups(ctrl))
			s := newSession()
			walkTo(t, a, s, "C-001", stage)

			cmd := []string{"restart", "RESET", "  Restart "}[i%3]
			msg := send(t, a, s, cmd)

			expectStage(t, s, entities.StageIntermediaryID)
			if !reflect.DeepEqual(s.Draft, entities.NewQuoteDraft()) || s.State.SanctionDone {
				t.Fatalf("expected fresh draft, got %+v", s.Draft)
			}
			if msg.Content != "Session reset. Please provide your Intermediary ID (e.g., INT-100)." {
				t.Fatalf("unexpected reset content: %q", msg.Content)
			}
			if !msg.HasChip("Flow", entities.ChipInfo) || msg.ToolChips[0].Value != "Restarted" {
				t.Fatalf("unexpected reset chips: %+v", msg.ToolChips)
			}
		})
	}
}

func TestAgent_ResetWordInsideSentenceIsNotReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newLinearAgent(stubLookups(ctrl))
	s := newSession()

	walkTo(t, a, s, "C-001", entities.StageBusinessUnit)
	send(t, a, s, "reset team")
	expectStage(t, s, entities.StageDebtTypeCode)
	if s.Draft.BusinessUnit != "reset team" {
		t.Fatalf("expected input to be treated as a business unit")
	}
}

func TestAgent_Greeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := newLinearAgent(stubLookups(ctrl))

	msg := a.Greeting()
	if msg.Type != entities.MessageTypeAgent || !strings.Contains(msg.Content, "Intermediary ID") {
		t.Fatalf("unexpected greeting: %+v", msg)
	}
	if a.StrategyName() != StrategyLinear {
		t.Fatalf("unexpected strategy name %s", a.StrategyName())
	}
}

func TestNewStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	l := stubLookups(ctrl)
	p := NewStrictPricer(DefaultPricingConfig())

	for name, want := range map[string]string{"": StrategyLinear, "LINEAR": StrategyLinear, " keyword ": StrategyKeyword} {
		s, err := NewStrategy(name, l, p)
		if err != nil || s.Name() != want {
			t.Fatalf("NewStrategy(%q) = %v, %v", name, s, err)
		}
	}
	if _, err := NewStrategy("llm", l, p); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}
