package agent

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"bond_quotation/internal/domain/entities"
)

var (
	intermediaryIDPattern = regexp.MustCompile(`(?i)\bINT-\d{3}\b`)
	companyIDPattern      = regexp.MustCompile(`\b[A-Z]-\d{3}\b`)
	monthsPattern         = regexp.MustCompile(`(\d+)\s*months?`)
	daysPattern           = regexp.MustCompile(`(\d+)\s*days?`)
	yesPattern            = regexp.MustCompile(`(?i)^y(es)?\b`)
	noPattern             = regexp.MustCompile(`(?i)^n(o)?\b`)
)

const minAddressLength = 5

// ParseResult is the typed value extracted from one user message.
// Only the fields relevant to the parsed stage are set.
type ParseResult struct {
	Text   string
	Months int
	Days   int
	Yes    bool
	Err    error
}

func (r ParseResult) OK() bool {
	return r.Err == nil
}

// StageParser turns trimmed user text into a ParseResult.
type StageParser func(input string) ParseResult

var stageParsers = map[entities.Stage]StageParser{
	entities.StageIntermediaryID:    parseIntermediaryID,
	entities.StageCompanyID:         parseCompanyID,
	entities.StageCompanyAddress:    parseAddress,
	entities.StageBusinessUnit:      parseRequired(entities.StageBusinessUnit),
	entities.StageDebtTypeCode:      parseRequired(entities.StageDebtTypeCode),
	entities.StageDepositionCountry: parseRequired(entities.StageDepositionCountry),
	entities.StageDuration:          parseDuration,
	entities.StageContractAsk:       parseYesNo,
	entities.StageContractNumber:    parseRequired(entities.StageContractNumber),
	entities.StageSubcontractNumber: parseRequired(entities.StageSubcontractNumber),
	entities.StageLimitNumber:       parseRequired(entities.StageLimitNumber),
	entities.StagePricing:           parseAny,
}

// ParseStage runs the parser registered for stage over input.
func ParseStage(stage entities.Stage, input string) ParseResult {
	p, ok := stageParsers[stage]
	if !ok {
		return invalid(stage, "no parser for stage")
	}
	return p(strings.TrimSpace(input))
}

func invalid(stage entities.Stage, reason string) ParseResult {
	return ParseResult{Err: &ValidationError{Stage: stage, Reason: reason}}
}

func parseIntermediaryID(input string) ParseResult {
	m := intermediaryIDPattern.FindString(input)
	if m == "" {
		return invalid(entities.StageIntermediaryID, "expected an ID like INT-100")
	}
	return ParseResult{Text: strings.ToUpper(m)}
}

func parseCompanyID(input string) ParseResult {
	m := companyIDPattern.FindString(input)
	if m == "" {
		return invalid(entities.StageCompanyID, "expected an ID like C-001")
	}
	return ParseResult{Text: m}
}

func parseAddress(input string) ParseResult {
	if utf8.RuneCountInString(input) < minAddressLength {
		return invalid(entities.StageCompanyAddress, "address too short")
	}
	return ParseResult{Text: input}
}

func parseRequired(stage entities.Stage) StageParser {
	return func(input string) ParseResult {
		if input == "" {
			return invalid(stage, "value required")
		}
		return ParseResult{Text: input}
	}
}

// parseDuration accepts "<n> months" and/or "<n> days". Zero counts as absent.
func parseDuration(input string) ParseResult {
	months, days := extractDuration(strings.ToLower(input))
	if months == 0 && days == 0 {
		return invalid(entities.StageDuration, "expected months and/or days")
	}
	return ParseResult{Months: months, Days: days}
}

func extractDuration(lower string) (months, days int) {
	return firstInt(monthsPattern, lower), firstInt(daysPattern, lower)
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseYesNo(input string) ParseResult {
	switch {
	case yesPattern.MatchString(input):
		return ParseResult{Yes: true}
	case noPattern.MatchString(input):
		return ParseResult{Yes: false}
	}
	return invalid(entities.StageContractAsk, "expected yes or no")
}

func parseAny(input string) ParseResult {
	return ParseResult{Text: input}
}
