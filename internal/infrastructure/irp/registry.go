package irp

import (
	"context"
	"errors"
	"strings"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"
)

var ErrMissingCompanyID = errors.New("companyId is required")

// DefaultIntermediaries is the registered set used when none is configured.
var DefaultIntermediaries = map[string]string{
	"INT-100": "Atlas Surety Brokers",
	"INT-101": "Harbor Risk Partners",
	"INT-200": "Meridian Bond Agency",
}

// companyGrades is the hardcoded IRP grade table. Unknown companies grade B.
var companyGrades = map[string]entities.Grade{
	"C-001": entities.GradeA,
	"C-002": entities.GradeB,
	"C-003": entities.GradeC,
	"C-004": entities.GradeD,
	"C-005": entities.GradeE,
}

const defaultGrade = entities.GradeB

// StubRegistry is an in-memory stand-in for the IRP intermediary and grading services.
type StubRegistry struct {
	intermediaries map[string]string
	now            func() time.Time
}

var (
	_ interfaces.IIntermediaryRegistry = (*StubRegistry)(nil)
	_ interfaces.ICompanyGradeProvider = (*StubRegistry)(nil)
)

// NewStubRegistry builds a registry over the given intermediary IDs (ID -> display name).
// A nil map selects DefaultIntermediaries.
func NewStubRegistry(intermediaries map[string]string) *StubRegistry {
	if intermediaries == nil {
		intermediaries = DefaultIntermediaries
	}
	normalized := make(map[string]string, len(intermediaries))
	for id, name := range intermediaries {
		normalized[strings.ToUpper(strings.TrimSpace(id))] = name
	}
	return &StubRegistry{intermediaries: normalized, now: time.Now}
}

func (r *StubRegistry) ValidateIntermediary(ctx context.Context, intermediaryID string) (entities.IntermediaryValidation, error) {
	if err := ctx.Err(); err != nil {
		return entities.IntermediaryValidation{}, err
	}
	id := strings.ToUpper(strings.TrimSpace(intermediaryID))
	name, ok := r.intermediaries[id]
	return entities.IntermediaryValidation{IntermediaryID: id, Registered: ok, Name: name}, nil
}

func (r *StubRegistry) GetCompanyGrade(ctx context.Context, companyID string) (entities.CompanyGrade, error) {
	if err := ctx.Err(); err != nil {
		return entities.CompanyGrade{}, err
	}
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.CompanyGrade{}, ErrMissingCompanyID
	}
	grade, ok := companyGrades[companyID]
	if !ok {
		grade = defaultGrade
	}
	return entities.CompanyGrade{CompanyID: companyID, Grade: grade, Timestamp: r.now().UTC()}, nil
}
