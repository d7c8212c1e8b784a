package services

import (
	"context"
	"fmt"

	"conferencehub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendPaymentConfirmation sends the ticket payment confirmation email using
// the "payment_confirmation" template.
func (s *emailService) SendPaymentConfirmation(ctx context.Context, data *domain.PaymentConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("payment confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("payment_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render payment_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send payment confirmation email: %w", err)
	}
	return nil
}
