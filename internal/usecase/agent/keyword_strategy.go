package agent

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bond_quotation/internal/domain/entities"

	"go.uber.org/zap"
)

const keywordFirstPrompt = "Please provide your Company ID (e.g., C-001)."

var (
	bondTypePattern      = regexp.MustCompile(`(?i)\b(performance|advanced?|bid|custom)\b`)
	dollarAmountPattern  = regexp.MustCompile(`(?i)\$\s*(\d[\d,]*(?:\.\d+)?)\s*(mm|m|million|k|thousand)?\b`)
	suffixAmountPattern  = regexp.MustCompile(`(?i)\b(\d[\d,]*(?:\.\d+)?)\s*(mm|m|million|k|thousand)\b`)
	groupedAmountPattern = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+(?:\.\d+)?\b`)
	countryPattern       = regexp.MustCompile(`\b[A-Z]{2}\b`)
	pricingIntentPattern = regexp.MustCompile(`(?i)\b(pric(e|es|ing)|quote|quotation|rates?|premium)\b`)
)

// knownCountries limits country extraction so that words like "ID" are not
// taken for country codes.
var knownCountries = map[string]bool{
	"US": true, "CA": true, "UK": true, "GB": true, "DE": true, "FR": true,
	"IT": true, "ES": true, "MX": true, "BR": true, "JP": true, "CN": true,
	"IN": true, "AU": true, "NL": true, "CH": true, "SG": true, "XX": true,
}

// keywordSlots is everything the keyword strategy could pick out of one message.
type keywordSlots struct {
	CompanyID    string
	BondType     entities.BondType
	Amount       float64
	Months       int
	Days         int
	Country      string
	WantsPricing bool
}

func (s keywordSlots) updates() []entities.DraftUpdate {
	var u []entities.DraftUpdate
	if s.BondType != "" {
		u = append(u, entities.SetBondType(s.BondType))
	}
	if s.Amount > 0 {
		u = append(u, entities.SetAmount(s.Amount))
	}
	if s.Months > 0 || s.Days > 0 {
		u = append(u, entities.SetDuration(s.Months, s.Days))
	}
	if s.Country != "" {
		u = append(u, entities.SetCountry(s.Country))
	}
	return u
}

func extractSlots(input string) keywordSlots {
	lower := strings.ToLower(input)
	s := keywordSlots{
		CompanyID:    companyIDPattern.FindString(input),
		WantsPricing: pricingIntentPattern.MatchString(input),
		Amount:       extractAmount(input),
	}
	s.Months, s.Days = extractDuration(lower)
	if m := bondTypePattern.FindStringSubmatch(lower); m != nil {
		s.BondType = bondTypeFromKeyword(m[1])
	}
	for _, c := range countryPattern.FindAllString(input, -1) {
		if knownCountries[c] {
			s.Country = c
			break
		}
	}
	return s
}

func bondTypeFromKeyword(k string) entities.BondType {
	switch k {
	case "performance":
		return entities.BondTypePerformance
	case "advance", "advanced":
		return entities.BondTypeAdvance
	case "bid":
		return entities.BondTypeBid
	case "custom":
		return entities.BondTypeCustom
	}
	return ""
}

// extractAmount reads "$2.5M", "3 million", "$750k" or "2,500,000".
func extractAmount(input string) float64 {
	for _, re := range []*regexp.Regexp{dollarAmountPattern, suffixAmountPattern} {
		if m := re.FindStringSubmatch(input); m != nil {
			return scaleAmount(m[1], m[2])
		}
	}
	if m := groupedAmountPattern.FindString(input); m != "" {
		return scaleAmount(m, "")
	}
	return 0
}

func scaleAmount(number, suffix string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(number, ",", ""), 64)
	if err != nil || v < 0 {
		return 0
	}
	switch strings.ToLower(suffix) {
	case "m", "mm", "million":
		v *= 1_000_000
	case "k", "thousand":
		v *= 1_000
	}
	return v
}

// KeywordStrategy answers free-form messages: it picks out a company ID and
// bond details in any order and prices as soon as it has enough.
type KeywordStrategy struct {
	replier
	lookups *lookupRunner
	pricer  Pricer
	log     *zap.Logger
}

var _ ConversationStrategy = (*KeywordStrategy)(nil)

func NewKeywordStrategy(lookups Lookups, pricer Pricer, opts ...Option) *KeywordStrategy {
	o := newOptions(opts)
	return &KeywordStrategy{
		replier: replier{now: o.now, newID: o.newID},
		lookups: &lookupRunner{lookups: lookups, timeout: o.timeout},
		pricer:  pricer,
		log:     o.log,
	}
}

func (k *KeywordStrategy) Name() string { return StrategyKeyword }

func (k *KeywordStrategy) Greeting() string {
	return "Hello! I'm your Quote Specialist Agent. I can fetch your company's grade from IRP and find bond pricing for you. " +
		"Please provide your Company ID (e.g., C-001) and your bond details (type, amount, tenor and country)."
}

func (k *KeywordStrategy) FirstPrompt() string { return keywordFirstPrompt }

// Handle works on a local copy of the draft and commits it only when every
// lookup the message needed has succeeded.
func (k *KeywordStrategy) Handle(ctx context.Context, s *entities.ConversationSession, input string) entities.ChatMessage {
	slots := extractSlots(input)
	draft := s.Draft
	var lines []string
	var chips []entities.ToolChip

	if slots.CompanyID != "" && slots.CompanyID != draft.CompanyID {
		g, err := k.lookups.companyGrade(ctx, slots.CompanyID)
		if err != nil {
			k.log.Warn("[agent][keyword] company grade lookup failed", zap.String("session_id", s.ID), zap.Error(err))
			return k.reply(fmt.Sprintf("I couldn't fetch the grade for %s from IRP. Please try again.", slots.CompanyID),
				chip("IRP", "Lookup error", entities.ChipError))
		}
		next, err := entities.ApplyDraftUpdates(draft,
			entities.SetCompany(slots.CompanyID, "Company "+slots.CompanyID, g.Grade),
			entities.ClearPricing(),
		)
		if err != nil {
			return k.reply("I couldn't use that Company ID. " + keywordFirstPrompt)
		}
		draft = next
		status := entities.ChipSuccess
		if !g.Grade.AllowsPricing() {
			status = entities.ChipWarning
		}
		lines = append(lines, fmt.Sprintf("Great! I've fetched your company's grade from IRP: %s\n\n%s", g.Grade, gradeMessage(g.Grade)))
		chips = append(chips, chip("IRP", "Grade: "+string(g.Grade), status))
	}

	updates := slots.updates()
	if len(updates) > 0 {
		next, err := entities.ApplyDraftUpdates(draft, updates...)
		if err != nil {
			k.log.Debug("[agent][keyword] bond details rejected", zap.String("session_id", s.ID), zap.Error(err))
			return k.reply("I couldn't use those bond details. Please restate them (e.g., Performance bond, $2.5M, 180 days, US).")
		}
		draft = next
	}

	if draft.CompanyID == "" {
		s.Draft = draft
		s.State.Stage = entities.StageCompanyID
		return k.reply("I need to fetch your company's grade from IRP first. " + keywordFirstPrompt)
	}

	if !draft.CanUseRAG() {
		if slots.WantsPricing || len(updates) > 0 {
			if next, err := entities.ApplyDraftUpdates(draft, entities.ClearPricing()); err == nil {
				draft = next
			}
			lines = append(lines, fmt.Sprintf("I'm sorry, I cannot provide pricing information for companies with grade %s. RAG pricing is restricted to grades A, B, and C.", draft.Grade))
			chips = append(chips, chip("RAG", "Denied: Grade "+string(draft.Grade), entities.ChipError))
		} else if len(lines) == 0 {
			lines = append(lines, fmt.Sprintf("Automated pricing is not available for grade %s. Type \"restart\" to quote another company.", draft.Grade))
		}
		s.Draft = draft
		s.State.Stage = entities.StageCompanyID
		return k.reply(strings.Join(lines, "\n\n"), chips...)
	}

	if missing := missingBondDetails(draft); len(missing) > 0 {
		lines = append(lines, fmt.Sprintf("To find pricing, please share the bond details I'm still missing: %s (e.g., Performance bond, $2.5M, 180 days, US).",
			strings.Join(missing, ", ")))
		s.Draft = draft
		s.State.Stage = entities.StageCompanyID
		return k.reply(strings.Join(lines, "\n\n"), chips...)
	}

	out, err := k.pricer.Price(ctx, draft)
	if errors.Is(err, entities.ErrAccessDenied) {
		s.Draft = draft
		return k.reply(fmt.Sprintf("I'm sorry, I cannot provide pricing information for companies with grade %s. RAG pricing is restricted to grades A, B, and C.", draft.Grade),
			chip("RAG", "Denied: Grade "+string(draft.Grade), entities.ChipError))
	}
	if err != nil {
		k.log.Warn("[agent][keyword] pricing failed", zap.String("session_id", s.ID), zap.Error(err))
		return k.reply("I couldn't retrieve pricing information right now. Please try again.",
			chip("RAG", "Lookup error", entities.ChipError))
	}
	priced, err := entities.ApplyDraftUpdates(draft, entities.SetPricing(out.Pricing))
	if err != nil {
		k.log.Error("[agent][keyword] pricing rejected by draft validation", zap.String("session_id", s.ID), zap.Error(err))
		return k.reply("I couldn't retrieve pricing information right now. Please try again.",
			chip("RAG", "Invalid pricing", entities.ChipError))
	}
	s.Draft = priced
	s.State.Stage = entities.StagePricing

	lines = append(lines, pricingSummary(priced, out.Rules))
	chips = append(chips, chip("RAG", string(priced.BondType), entities.ChipSuccess))
	return k.reply(strings.Join(lines, "\n\n"), chips...)
}

func missingBondDetails(d entities.QuoteDraft) []string {
	var missing []string
	if d.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if d.TenorDays <= 0 {
		missing = append(missing, "tenor")
	}
	return missing
}

func pricingSummary(d entities.QuoteDraft, rules []string) string {
	p := d.Pricing
	var b strings.Builder
	fmt.Fprintf(&b, "Perfect! I've found pricing information for your %s bond:\n\n", d.BondType)
	fmt.Fprintf(&b, "- Base Rate: %d bps\n", p.BaseRateBps)
	fmt.Fprintf(&b, "- Loadings: %d bps\n", p.LoadingsBps)
	fmt.Fprintf(&b, "- Discounts: %d bps\n", p.DiscountsBps)
	fmt.Fprintf(&b, "- Final Rate: %d bps\n", p.FinalRateBps)
	fmt.Fprintf(&b, "- Estimated Premium: %.2f for %d days", d.EstimatedPremium(), d.TenorDays)
	if len(rules) > 0 {
		b.WriteString("\n\nApplied rules:")
		for _, r := range rules {
			b.WriteString("\n- " + r)
		}
	}
	b.WriteString("\n\nUse \"Finalize & Save\" to store this quotation.")
	return b.String()
}
