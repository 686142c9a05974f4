package email

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jordanlanch/squadscore/pkg/cache"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool

	cache    *cache.Client
	cooldown time.Duration
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SetResendCooldown enables a Redis-backed cooldown for resend endpoints.
// Without it, CheckResendCooldown always allows.
func (s *Service) SetResendCooldown(c *cache.Client, cooldown time.Duration) {
	s.cache = c
	s.cooldown = cooldown
}

// CheckResendCooldown reports whether an email may be re-sent to the
// given address, and starts the cooldown window if it may.
func (s *Service) CheckResendCooldown(ctx context.Context, toEmail string) (bool, error) {
	if s.cache == nil || s.cooldown <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("email:resend:%s", toEmail)
	return s.cache.SetNX(ctx, key, "1", s.cooldown)
}

// SendVerificationEmail sends an email verification link
func (s *Service) SendVerificationEmail(toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email/%s", s.baseURL, token)

	subject := "Verify your SquadScore account"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to SquadScore!</h2>
			<p>Hi %s,</p>
			<p>Thank you for registering with SquadScore. Please verify your email address by clicking the button below:</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Verify Email</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This link will expire in 24 hours.</strong></p>
			<p>If you didn't create an account, you can safely ignore this email.</p>
			<p>Thanks,<br>The SquadScore Team</p>
		</body>
		</html>
	`, toName, verificationURL, verificationURL, verificationURL)

	plainText := fmt.Sprintf(`
Hi %s,

Welcome to SquadScore! Please verify your email address by clicking the link below:

%s

This link will expire in 24 hours.

If you didn't create an account, you can safely ignore this email.

Thanks,
The SquadScore Team
	`, toName, verificationURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, verificationURL)
}

// SendWelcomeEmail sends a welcome email after verification
func (s *Service) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to SquadScore!"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to SquadScore!</h2>
			<p>Hi %s,</p>
			<p>Your email has been verified successfully! You now have full access to SquadScore.</p>
			<h3>Get Started:</h3>
			<ul>
				<li>Find your club and teams</li>
				<li>Share your family's season experience</li>
				<li>Claim your organization to respond to reviews</li>
			</ul>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The SquadScore Team</p>
		</body>
		</html>
	`, toName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your email has been verified successfully! You now have full access to SquadScore.

Get Started:
- Find your club and teams
- Share your family's season experience
- Claim your organization to respond to reviews

Visit your dashboard: %s/dashboard

Thanks,
The SquadScore Team
	`, toName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	log.Printf("📧 [EMAIL] Welcome email to: %s <%s>", toName, toEmail)
	return nil
}

// SendPaymentReceiptEmail confirms a successful subscription payment
func (s *Service) SendPaymentReceiptEmail(toEmail, toName, planName string, amount int64, currency string) error {
	subject := fmt.Sprintf("Your SquadScore %s subscription is active", planName)
	formatted := fmt.Sprintf("%.2f %s", float64(amount)/100.0, currency)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment received</h2>
			<p>Hi %s,</p>
			<p>We received your payment of <strong>%s</strong> for the <strong>%s</strong> plan.</p>
			<p>Your subscription is now active. Thank you for supporting your club's community!</p>
			<p><a href="%s/billing" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Billing</a></p>
			<p>Thanks,<br>The SquadScore Team</p>
		</body>
		</html>
	`, toName, formatted, planName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

We received your payment of %s for the %s plan.

Your subscription is now active. Thank you for supporting your club's community!

View billing: %s/billing

Thanks,
The SquadScore Team
	`, toName, formatted, planName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, s.baseURL+"/billing")
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}
