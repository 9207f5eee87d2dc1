package service

import (
	"context"
	"fmt"
	"strings"

	"toolrent-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueRentSummary(ctx context.Context, to string, rents []domain.Rent) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%d overdue rental(s) pending return", len(rents)))

	var b strings.Builder
	b.WriteString("The following rentals are past their agreed finish date and not yet returned:\n\n")
	for _, rt := range rents {
		fmt.Fprintf(&b, "  rent #%d  client %d  tool %d  due %s\n",
			rt.ID, rt.ClientID, rt.ToolID, rt.FinishDate.Format("2006-01-02"))
	}
	b.WriteString("\nToolRent")
	m.SetBody("text/plain", b.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue summary: %w", err)
	}
	return nil
}
