package http

import (
	"time"

	"toolrent-backend/internal/domain"
)

// RentView is the wire representation of a rental. Client and tool are
// rendered by name so the front desk never sees raw ids.
type RentView struct {
	ID           int32  `json:"id"`
	ClientName   string `json:"clientName"`
	ToolName     string `json:"toolName"`
	StartDate    string `json:"startDate"`
	FinishDate   string `json:"finishDate"`
	ReturnDate   string `json:"returnDate,omitempty"`
	Active       bool   `json:"active"`
	Damaged      bool   `json:"damaged"`
	Irreparable  bool   `json:"irreparable"`
	FineCents    int32  `json:"fineCents"`
	TotalCents   int32  `json:"totalCents"`
	EmployeeName string `json:"employeeName"`
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func newRentView(rent *domain.Rent, clientName, toolName string) RentView {
	view := RentView{
		ID:           rent.ID,
		ClientName:   clientName,
		ToolName:     toolName,
		StartDate:    formatDate(rent.StartDate),
		FinishDate:   formatDate(rent.FinishDate),
		Active:       rent.Active,
		Damaged:      rent.Damaged,
		Irreparable:  rent.Irreparable,
		FineCents:    rent.FineCents,
		TotalCents:   rent.TotalCents,
		EmployeeName: rent.EmployeeName,
	}
	if rent.ReturnDate != nil {
		view.ReturnDate = formatDate(*rent.ReturnDate)
	}
	return view
}
