package request

import (
	"strings"

	"bond_quotation/internal/domain/entities"
)

// SendMessageRequest needs the text field; blank text is passed on and the
// agent asks again for the current step.
type SendMessageRequest struct {
	Text *string `json:"text" binding:"required"`
}

// ResolveText returns the trimmed message text.
func (r SendMessageRequest) ResolveText() string {
	if r.Text == nil {
		return ""
	}
	return strings.TrimSpace(*r.Text)
}

// ReplaceDraftRequest carries the whole draft edited in the quote panel.
type ReplaceDraftRequest struct {
	Draft *entities.QuoteDraft `json:"draft" binding:"required"`
}
