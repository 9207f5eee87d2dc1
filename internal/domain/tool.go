package domain

type ToolStatus string

const (
	ToolStatusAvailable      ToolStatus = "AVAILABLE"
	ToolStatusLoaned         ToolStatus = "LOANED"
	ToolStatusInRepair       ToolStatus = "IN_REPAIR"
	ToolStatusDecommissioned ToolStatus = "DECOMMISSIONED"
)

// ValidToolStatus reports whether s is one of the four known statuses.
func ValidToolStatus(s ToolStatus) bool {
	switch s {
	case ToolStatusAvailable, ToolStatusLoaned, ToolStatusInRepair, ToolStatusDecommissioned:
		return true
	}
	return false
}

type Tool struct {
	ID                    int32      `json:"id"`
	Name                  string     `json:"name"`     // stored lowercased
	Category              string     `json:"category"` // stored lowercased
	ReplacementValueCents int32      `json:"replacement_value_cents"`
	Status                ToolStatus `json:"status"`
	CreatedOn             string     `json:"created_on"`
	DeletedOn             *string    `json:"deleted_on,omitempty"`
}
