package email

import (
	"fmt"
	"net/smtp"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// DueItem is one pending installment listed in a reminder digest
type DueItem struct {
	Source      string  // card or loan name
	Description string
	Amount      float64
}

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendDueReminder sends a digest of the installments still pending in the
// given month. Nothing is sent when the digest is empty.
func (s *Sender) SendDueReminder(to, month string, items []DueItem) error {
	if len(items) == 0 {
		return nil
	}
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Parcelas pendentes em %s", month)

	var total float64
	body := fmt.Sprintf("Olá,\n\nVocê tem %d parcela(s) pendente(s) em %s:\n\n", len(items), month)
	for _, it := range items {
		body += fmt.Sprintf("  - %s: %s (%.2f)\n", it.Source, it.Description, it.Amount)
		total += it.Amount
	}
	body += fmt.Sprintf("\nTotal pendente: %.2f\n", total)
	body += "\nGerenciamento Familiar"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send reminder to %s: %v", to, err)
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
