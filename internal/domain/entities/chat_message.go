package entities

import "time"

type MessageType string

const (
	MessageTypeUser  MessageType = "user"
	MessageTypeAgent MessageType = "agent"
)

type ChipStatus string

const (
	ChipSuccess ChipStatus = "success"
	ChipWarning ChipStatus = "warning"
	ChipError   ChipStatus = "error"
	ChipInfo    ChipStatus = "info"
)

// ToolChip reports which lookup fired for a message and how it went.
type ToolChip struct {
	Label  string     `json:"label"`
	Value  string     `json:"value"`
	Status ChipStatus `json:"status"`
}

type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	ToolChips []ToolChip  `json:"toolChips,omitempty"`
}

// HasChip reports whether the message carries a chip with the given label and status.
func (m ChatMessage) HasChip(label string, status ChipStatus) bool {
	for _, c := range m.ToolChips {
		if c.Label == label && c.Status == status {
			return true
		}
	}
	return false
}
