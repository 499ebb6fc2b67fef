package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidDraft    = errors.New("invalid quote draft")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrEmptyDraftField = errors.New("draft field cannot be empty")
)

var draftValidator = validator.New()

// DraftUpdate changes one aspect of a draft. It may reject the change.
type DraftUpdate func(d *QuoteDraft) error

// ApplyDraftUpdates returns a copy of current with every update applied.
//
// Updates are all-or-nothing: if any update fails, or the resulting draft
// breaks an invariant, current is returned unchanged together with the error.
func ApplyDraftUpdates(current QuoteDraft, updates ...DraftUpdate) (QuoteDraft, error) {
	next := current
	if current.HasContract != nil {
		v := *current.HasContract
		next.HasContract = &v
	}
	for _, update := range updates {
		if err := update(&next); err != nil {
			return current, err
		}
	}
	if err := ValidateDraft(next); err != nil {
		return current, err
	}
	return next, nil
}

// ValidateDraft checks the struct-level invariants of a draft.
func ValidateDraft(d QuoteDraft) error {
	if err := draftValidator.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
			return fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	return nil
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyDraftField, field)
	}
	return nil
}

func SetIntermediaryID(id string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("intermediaryId", id); err != nil {
			return err
		}
		d.IntermediaryID = id
		return nil
	}
}

// SetCompany records the prospect company and its IRP grade.
func SetCompany(companyID, companyName string, grade Grade) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("companyId", companyID); err != nil {
			return err
		}
		d.CompanyID = companyID
		d.CompanyName = companyName
		d.Grade = grade
		return nil
	}
}

func SetProspectCompanyAddress(address string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("prospectCompanyAddress", address); err != nil {
			return err
		}
		d.ProspectCompanyAddress = address
		return nil
	}
}

func SetBusinessUnit(unit string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("businessUnit", unit); err != nil {
			return err
		}
		d.BusinessUnit = unit
		return nil
	}
}

func SetDebtTypeCode(code string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("debtTypeCode", code); err != nil {
			return err
		}
		d.DebtTypeCode = code
		return nil
	}
}

func SetDepositionCountry(country string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("depositionCountry", country); err != nil {
			return err
		}
		d.DepositionCountry = country
		return nil
	}
}

// SetDuration stores the raw duration and derives the tenor: days win over
// months, and a month counts as 30 days.
func SetDuration(months, days int) DraftUpdate {
	return func(d *QuoteDraft) error {
		if months < 0 || days < 0 || (months == 0 && days == 0) {
			return ErrInvalidDuration
		}
		d.DurationMonths = months
		d.DurationDays = days
		if days > 0 {
			d.TenorDays = days
		} else {
			d.TenorDays = months * 30
		}
		return nil
	}
}

func SetHasContract(has bool) DraftUpdate {
	return func(d *QuoteDraft) error {
		d.HasContract = &has
		return nil
	}
}

func SetContractNumber(n string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("contractNumber", n); err != nil {
			return err
		}
		d.ContractNumber = n
		return nil
	}
}

func SetSubcontractNumber(n string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("subcontractNumber", n); err != nil {
			return err
		}
		d.SubcontractNumber = n
		return nil
	}
}

func SetLimitNumber(n string) DraftUpdate {
	return func(d *QuoteDraft) error {
		if err := requireText("limitNumber", n); err != nil {
			return err
		}
		d.LimitNumber = n
		return nil
	}
}

func SetBondType(t BondType) DraftUpdate {
	return func(d *QuoteDraft) error {
		d.BondType = t
		return nil
	}
}

func SetAmount(amount float64) DraftUpdate {
	return func(d *QuoteDraft) error {
		d.Amount = amount
		return nil
	}
}

func SetCountry(country string) DraftUpdate {
	return func(d *QuoteDraft) error {
		d.Country = country
		return nil
	}
}

// SetPricing replaces the pricing sub-record wholesale.
func SetPricing(p Pricing) DraftUpdate {
	return func(d *QuoteDraft) error {
		d.Pricing = p
		return nil
	}
}

// ClearPricing zeroes the pricing sub-record.
func ClearPricing() DraftUpdate {
	return SetPricing(Pricing{})
}
