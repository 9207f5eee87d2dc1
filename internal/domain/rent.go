package domain

import "time"

// Rent is a single loan transaction linking a client and a tool.
// A rent is mutated exactly once after creation (on return); fine and
// total amounts stay zero until then and are fixed afterwards.
type Rent struct {
	ID           int32      `json:"id"`
	ClientID     int32      `json:"client_id"`
	ToolID       int32      `json:"tool_id"`
	StartDate    time.Time  `json:"start_date"`
	FinishDate   time.Time  `json:"finish_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Active       bool       `json:"active"`
	Damaged      bool       `json:"damaged"`
	Irreparable  bool       `json:"irreparable"`
	FineCents    int32      `json:"fine_cents"`
	TotalCents   int32      `json:"total_cents"`
	EmployeeName string     `json:"employee_name"`
	CreatedOn    string     `json:"created_on"`
	UpdatedOn    string     `json:"updated_on"`
}

// Returned reports whether the rent has been closed out.
func (r *Rent) Returned() bool {
	return r.ReturnDate != nil
}
