package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bond_quotation/internal/domain/entities"

	"go.uber.org/zap"
)

const linearFirstPrompt = "Please provide your Intermediary ID (e.g., INT-100)."

var stagePrompts = map[entities.Stage]string{
	entities.StageIntermediaryID:    "Please provide your Intermediary ID (e.g., INT-100) to continue.",
	entities.StageCompanyID:         "Please provide Prospect Company ID (e.g., C-001).",
	entities.StageCompanyAddress:    "Please provide a valid Prospect Company Address (at least 5 characters).",
	entities.StageBusinessUnit:      "Please provide your Business Unit.",
	entities.StageDebtTypeCode:      "Please provide Debt Type Code.",
	entities.StageDepositionCountry: "Please provide Deposition Country.",
	entities.StageDuration:          `Please specify duration in months and/or days. Example: "6 months" or "180 days".`,
	entities.StageContractAsk:       "Please answer yes or no. Is there an existing contract?",
	entities.StageContractNumber:    "Please provide Contract Number.",
	entities.StageSubcontractNumber: "Please provide Subcontract Number.",
	entities.StageLimitNumber:       "Please provide Limit Number.",
}

type stageHandler func(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage

// LinearStrategy walks the fixed stage sequence, one piece of data per input.
type LinearStrategy struct {
	replier
	lookups  *lookupRunner
	pricer   Pricer
	log      *zap.Logger
	handlers map[entities.Stage]stageHandler
}

var _ ConversationStrategy = (*LinearStrategy)(nil)

func NewLinearStrategy(lookups Lookups, pricer Pricer, opts ...Option) *LinearStrategy {
	o := newOptions(opts)
	l := &LinearStrategy{
		replier: replier{now: o.now, newID: o.newID},
		lookups: &lookupRunner{lookups: lookups, timeout: o.timeout},
		pricer:  pricer,
		log:     o.log,
	}
	l.handlers = map[entities.Stage]stageHandler{
		entities.StageIntermediaryID:    l.handleIntermediaryID,
		entities.StageCompanyID:         l.handleCompanyID,
		entities.StageCompanyAddress:    l.handleCompanyAddress,
		entities.StageBusinessUnit:      l.handleBusinessUnit,
		entities.StageDebtTypeCode:      l.handleDebtTypeCode,
		entities.StageDepositionCountry: l.handleDepositionCountry,
		entities.StageDuration:          l.handleDuration,
		entities.StageContractAsk:       l.handleContractAsk,
		entities.StageContractNumber:    l.handleContractNumber,
		entities.StageSubcontractNumber: l.handleSubcontractNumber,
		entities.StageLimitNumber:       l.handleLimitNumber,
		entities.StagePricing:           l.handlePricing,
	}
	return l
}

func (l *LinearStrategy) Name() string { return StrategyLinear }

func (l *LinearStrategy) Greeting() string {
	return "Hello! I'm your Quote Specialist Agent. I'll guide you step by step through your bond quotation. " + linearFirstPrompt
}

func (l *LinearStrategy) FirstPrompt() string { return linearFirstPrompt }

func (l *LinearStrategy) Handle(ctx context.Context, s *entities.ConversationSession, input string) entities.ChatMessage {
	stage := s.State.Stage
	handler, ok := l.handlers[stage]
	if !ok {
		l.log.Error("[agent][linear] no handler for stage", zap.String("session_id", s.ID), zap.String("stage", string(stage)))
		return l.reply("Something went wrong with this conversation. Type \"restart\" to begin again.")
	}
	res := ParseStage(stage, input)
	if !res.OK() {
		l.log.Debug("[agent][linear] input rejected", zap.String("session_id", s.ID), zap.Error(res.Err))
		return l.reprompt(stage)
	}
	return handler(ctx, s, res)
}

func (l *LinearStrategy) reprompt(stage entities.Stage) entities.ChatMessage {
	return l.reply(stagePrompts[stage])
}

// commit applies updates and advances the stage. On error nothing changes.
func (l *LinearStrategy) commit(s *entities.ConversationSession, next entities.Stage, updates ...entities.DraftUpdate) error {
	draft, err := entities.ApplyDraftUpdates(s.Draft, updates...)
	if err != nil {
		return err
	}
	s.Draft = draft
	s.State.Stage = next
	return nil
}

func (l *LinearStrategy) handleIntermediaryID(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	v, err := l.lookups.validateIntermediary(ctx, in.Text)
	if err != nil {
		l.log.Warn("[agent][linear] intermediary validation failed", zap.String("session_id", s.ID), zap.Error(err))
		return l.reply("Failed to validate intermediary. Please try again later.",
			chip("Intermediary", "Validation error", entities.ChipError))
	}
	if !v.Registered {
		return l.reply(fmt.Sprintf("Intermediary %s is not registered. Please contact admin or provide a valid ID.", in.Text),
			chip("Intermediary", "Unregistered", entities.ChipError))
	}
	if err := l.commit(s, entities.StageCompanyID, entities.SetIntermediaryID(in.Text)); err != nil {
		return l.reprompt(entities.StageIntermediaryID)
	}
	greeting := "Welcome!"
	if v.Name != "" {
		greeting = fmt.Sprintf("Welcome, %s!", v.Name)
	}
	return l.reply(greeting+" Please provide:\n\n- Prospect Company ID (e.g., C-001)",
		chip("Intermediary", in.Text, entities.ChipSuccess))
}

func (l *LinearStrategy) handleCompanyID(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	g, err := l.lookups.companyGrade(ctx, in.Text)
	if err != nil {
		l.log.Warn("[agent][linear] company grade lookup failed", zap.String("session_id", s.ID), zap.Error(err))
		return l.reply("Failed to fetch company grade from IRP. Please try again.",
			chip("IRP", "Lookup error", entities.ChipError))
	}
	if err := l.commit(s, entities.StageCompanyAddress, entities.SetCompany(in.Text, "Company "+in.Text, g.Grade)); err != nil {
		return l.reprompt(entities.StageCompanyID)
	}
	status := entities.ChipSuccess
	if !g.Grade.AllowsPricing() {
		status = entities.ChipWarning
	}
	return l.reply(
		fmt.Sprintf("Got it. Company ID: %s. Grade: %s.\n\n%s\n\nNow, please provide the Prospect Company Address (free text).",
			in.Text, g.Grade, gradeMessage(g.Grade)),
		chip("IRP", "Grade "+string(g.Grade), status),
	)
}

func (l *LinearStrategy) handleCompanyAddress(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	companyID := s.Draft.CompanyID
	if companyID == "" {
		companyID = "UNKNOWN"
	}
	err := l.lookups.postCompanyAddress(ctx, entities.CompanyAddress{
		CompanyID:  companyID,
		Address:    in.Text,
		RecordedAt: l.now(),
	})
	if err != nil {
		l.log.Warn("[agent][linear] address recording failed", zap.String("session_id", s.ID), zap.Error(err))
		return l.reply("Failed to record address. Please try again.",
			chip("Company", "Address error", entities.ChipError))
	}
	if err := l.commit(s, entities.StageBusinessUnit, entities.SetProspectCompanyAddress(in.Text)); err != nil {
		return l.reprompt(entities.StageCompanyAddress)
	}
	return l.reply("Address recorded. Please provide your Business Unit.",
		chip("Company", "Address recorded", entities.ChipSuccess))
}

// handleBusinessUnit stores the unit and runs the sanction screen. The screen
// never blocks the flow: a failed lookup only yields a warning chip.
func (l *LinearStrategy) handleBusinessUnit(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StageDebtTypeCode, entities.SetBusinessUnit(in.Text)); err != nil {
		return l.reprompt(entities.StageBusinessUnit)
	}

	d := s.Draft
	beneficiary := d.CompanyName
	if beneficiary == "" {
		beneficiary = d.CompanyID
	}
	grade := string(d.Grade)
	if grade == "" {
		grade = "N/A"
	}

	res, err := l.lookups.checkSanction(ctx, entities.SanctionCheck{
		BeneficiaryName: beneficiary,
		Country:         d.Country,
		Amount:          d.Amount,
	})
	if err != nil {
		l.log.Warn("[agent][linear] sanction check failed", zap.String("session_id", s.ID), zap.Error(err))
		return l.reply(
			fmt.Sprintf("Sanction Check: could not be completed right now and will need manual review.\n\nCompany Grade: %s\n\nNow I need additional details. Please provide Debt Type Code.", grade),
			chip("Sanction", "Unavailable", entities.ChipWarning),
			chip("IRP", "Grade "+grade, entities.ChipInfo),
		)
	}
	s.State.SanctionDone = true

	reason := res.Reason
	if reason == "" {
		reason = "OK"
	}
	return l.reply(
		fmt.Sprintf("Sanction Check: %s - %s\n\nCompany Grade: %s\n\nNow I need additional details. Please provide Debt Type Code.", res.Status, reason, grade),
		chip("Sanction", string(res.Status), res.Status.ChipStatus()),
		chip("IRP", "Grade "+grade, entities.ChipInfo),
	)
}

func (l *LinearStrategy) handleDebtTypeCode(_ context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StageDepositionCountry, entities.SetDebtTypeCode(in.Text)); err != nil {
		return l.reprompt(entities.StageDebtTypeCode)
	}
	return l.reply("Thanks. Please provide Deposition Country.")
}

func (l *LinearStrategy) handleDepositionCountry(_ context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StageDuration, entities.SetDepositionCountry(in.Text)); err != nil {
		return l.reprompt(entities.StageDepositionCountry)
	}
	return l.reply(`Please provide the Duration (e.g., "6 months" or "180 days").`)
}

func (l *LinearStrategy) handleDuration(_ context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StageContractAsk, entities.SetDuration(in.Months, in.Days)); err != nil {
		return l.reprompt(entities.StageDuration)
	}
	return l.reply("Is there an existing contract? (yes/no)")
}

func (l *LinearStrategy) handleContractAsk(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if in.Yes {
		if err := l.commit(s, entities.StageContractNumber, entities.SetHasContract(true)); err != nil {
			return l.reprompt(entities.StageContractAsk)
		}
		return l.reply("Please provide Contract Number.")
	}
	if err := l.commit(s, entities.StagePricing, entities.SetHasContract(false)); err != nil {
		return l.reprompt(entities.StageContractAsk)
	}
	return l.showPricing(ctx, s)
}

func (l *LinearStrategy) handleContractNumber(_ context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StageSubcontractNumber, entities.SetContractNumber(in.Text)); err != nil {
		return l.reprompt(entities.StageContractNumber)
	}
	return l.reply("Please provide Subcontract Number.")
}

func (l *LinearStrategy) handleSubcontractNumber(_ context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StageLimitNumber, entities.SetSubcontractNumber(in.Text)); err != nil {
		return l.reprompt(entities.StageSubcontractNumber)
	}
	return l.reply("Please provide Limit Number.")
}

func (l *LinearStrategy) handleLimitNumber(ctx context.Context, s *entities.ConversationSession, in ParseResult) entities.ChatMessage {
	if err := l.commit(s, entities.StagePricing, entities.SetLimitNumber(in.Text)); err != nil {
		return l.reprompt(entities.StageLimitNumber)
	}
	return l.showPricing(ctx, s)
}

func (l *LinearStrategy) handlePricing(ctx context.Context, s *entities.ConversationSession, _ ParseResult) entities.ChatMessage {
	return l.showPricing(ctx, s)
}

// showPricing recomputes pricing for the current draft. Denied grades get
// their pricing cleared; a failed retrieval leaves the draft as it was.
func (l *LinearStrategy) showPricing(ctx context.Context, s *entities.ConversationSession) entities.ChatMessage {
	d := s.Draft
	if !d.CanUseRAG() {
		return l.denyPricing(s)
	}
	out, err := l.pricer.Price(ctx, d)
	if errors.Is(err, entities.ErrAccessDenied) {
		return l.denyPricing(s)
	}
	if err != nil {
		l.log.Warn("[agent][linear] pricing failed", zap.String("session_id", s.ID), zap.Error(err))
		return l.reply("Pricing is temporarily unavailable. Please send any message to try again.",
			chip("RAG", "Lookup error", entities.ChipError))
	}
	draft, err := entities.ApplyDraftUpdates(d, entities.SetPricing(out.Pricing))
	if err != nil {
		l.log.Error("[agent][linear] pricing rejected by draft validation", zap.String("session_id", s.ID), zap.Error(err))
		return l.reply("Pricing is temporarily unavailable. Please send any message to try again.",
			chip("RAG", "Invalid pricing", entities.ChipError))
	}
	s.Draft = draft

	p := draft.Pricing
	var b strings.Builder
	b.WriteString("Pricing data ready.\n\n")
	fmt.Fprintf(&b, "- Grade: %s\n", draft.Grade)
	fmt.Fprintf(&b, "- Base Rate: %d bps\n", p.BaseRateBps)
	fmt.Fprintf(&b, "- Loadings: %d bps\n", p.LoadingsBps)
	if p.DiscountsBps > 0 {
		fmt.Fprintf(&b, "- Discounts: %d bps\n", p.DiscountsBps)
	}
	fmt.Fprintf(&b, "- Final Rate: %d bps\n", p.FinalRateBps)
	fmt.Fprintf(&b, "- Duration: %d months, %d days (tenor %d days)\n", draft.DurationMonths, draft.DurationDays, draft.TenorDays)
	if draft.Amount > 0 {
		fmt.Fprintf(&b, "- Estimated Premium: %.2f\n", draft.EstimatedPremium())
	}
	b.WriteString("\nUse \"Finalize & Save\" to store this quotation.")

	return l.reply(b.String(), chip("RAG", "Pricing Computed", entities.ChipSuccess))
}

func (l *LinearStrategy) denyPricing(s *entities.ConversationSession) entities.ChatMessage {
	if draft, err := entities.ApplyDraftUpdates(s.Draft, entities.ClearPricing()); err == nil {
		s.Draft = draft
	}
	grade := string(s.Draft.Grade)
	if grade == "" {
		grade = "N/A"
	}
	return l.reply(
		fmt.Sprintf("RAG access denied for grade %s. Only grades A, B, and C are permitted, so this quotation cannot be priced automatically.", grade),
		chip("RAG", "Denied: Grade "+grade, entities.ChipError),
	)
}

// gradeMessage explains what a company grade means for pricing.
func gradeMessage(g entities.Grade) string {
	switch g {
	case entities.GradeA:
		return "Excellent! Your company has the highest creditworthiness rating. You'll get our best rates."
	case entities.GradeB:
		return "Good! Your company has a strong creditworthiness rating. You'll get competitive rates."
	case entities.GradeC:
		return "Your company has an acceptable creditworthiness rating. Standard rates will apply."
	case entities.GradeD:
		return "Your company has a below-average creditworthiness rating. Automated pricing is not available for this grade."
	case entities.GradeE:
		return "Your company has a poor creditworthiness rating. Automated pricing is not available for this grade."
	}
	return "Grade information is unavailable."
}
