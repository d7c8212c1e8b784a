package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// PaymentConfirmationEmailData holds data for the payment confirmation email.
type PaymentConfirmationEmailData struct {
	Email          string
	AttendeeName   string
	TicketTypeName string
	IsRemote       bool
	IncludesHotel  bool
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendPaymentConfirmation(ctx context.Context, data *PaymentConfirmationEmailData) error
}
