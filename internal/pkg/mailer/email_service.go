// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, fullName string) error
	SendResetToken(toEmail, token string) error
	SendEstimateReview(toEmail, fullName string, total float64) error
	SendCheckoutReceipt(toEmail, planName string, monthlyTotal float64) error
	SendLeadAlert(toEmail, contactName, contactEmail, addressSummary string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendWelcome(toEmail, fullName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Trash Panda, %s!</h2>
			<p>Your account is ready. Head over to your dashboard to pick the services you need and schedule your first visit.</p>
			<a href="%s/app" style="background-color: #2E7D32; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Go to Dashboard</a>
			<p>Questions? Just reply to this email.</p>
		</div>
	`, fullName, s.frontendURL)

	return s.send(toEmail, "Welcome to Trash Panda", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendEstimateReview(toEmail, fullName string, total float64) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your custom estimate is ready</h2>
			<p>Hi %s, we've put together a custom service plan for you at <strong>$%.2f/month</strong>.</p>
			<p>Review the details and accept it from your dashboard:</p>
			<a href="%s/app/estimates" style="background-color: #2E7D32; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Review Estimate</a>
		</div>
	`, fullName, total, s.frontendURL)

	return s.send(toEmail, "Your Trash Panda Estimate Is Ready", body)
}

func (s *emailService) SendCheckoutReceipt(toEmail, planName string, monthlyTotal float64) error {
	if planName == "" {
		planName = "Custom Service Plan"
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You're all set!</h2>
			<p>Your subscription to <strong>%s</strong> is active at <strong>$%.2f/month</strong>.</p>
			<p>We'll reach out before your first service visit. Manage your plan anytime from your dashboard.</p>
		</div>
	`, planName, monthlyTotal)

	return s.send(toEmail, "Your Trash Panda Subscription Is Active", body)
}

func (s *emailService) SendLeadAlert(toEmail, contactName, contactEmail, addressSummary string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New quote request</h2>
			<p><strong>%s</strong> (%s) submitted a quote request.</p>
			<p>Address: %s</p>
		</div>
	`, contactName, contactEmail, addressSummary)

	return s.send(toEmail, "New Quote Request", body)
}
