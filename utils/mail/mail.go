package mail

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/gauthamtours/travels-backend/logger"
)

// sendTimeout bounds one SMTP send so a stalled mail server cannot hold the
// HTTP request open. gomail has no context support, so the send runs in a
// goroutine and we stop waiting after the deadline.
const sendTimeout = 10 * time.Second

// Status of one delivery attempt.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome reports what happened to one outbound email. Delivery problems are
// carried in the value; they never propagate as errors past this package.
type Outcome struct {
	Status     Status `json:"status"`
	Reason     string `json:"reason,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

func Sent(previewURL string) Outcome { return Outcome{Status: StatusSent, PreviewURL: previewURL} }
func Failed(reason string) Outcome   { return Outcome{Status: StatusFailed, Reason: reason} }
func Skipped(reason string) Outcome  { return Outcome{Status: StatusSkipped, Reason: reason} }

// Config holds the outbound mail settings.
type Config struct {
	Host        string
	Port        int
	Secure      bool
	User        string
	Password    string
	OwnerEmail  string
	FromAddress string
}

// ConfigFromEnv reads the EMAIL_* variables. The owner address falls back
// from OWNER_EMAIL to ADMIN_EMAIL to the business inbox.
func ConfigFromEnv() Config {
	port, err := strconv.Atoi(os.Getenv("EMAIL_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	host := os.Getenv("EMAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	owner := os.Getenv("OWNER_EMAIL")
	if owner == "" {
		owner = os.Getenv("ADMIN_EMAIL")
	}
	if owner == "" {
		owner = "info@gauthamtoursandtravels.com"
	}

	user := os.Getenv("EMAIL_USER")
	from := user
	if from == "" {
		from = "bookings@gauthamtoursandtravels.com"
	}

	return Config{
		Host:        host,
		Port:        port,
		Secure:      os.Getenv("EMAIL_SECURE") == "true",
		User:        user,
		Password:    os.Getenv("EMAIL_PASSWORD"),
		OwnerEmail:  owner,
		FromAddress: from,
	}
}

type transport interface {
	// Send delivers one HTML email. previewURL is non-empty only for
	// sandboxed sends.
	Send(to, subject, htmlBody string) (previewURL string, err error)
}

// Mailer turns accepted bookings and contact messages into emails. The
// underlying transport is chosen once per process: a live SMTP dialer when
// credentials are configured, otherwise a disposable sandbox mailbox.
type Mailer struct {
	cfg     Config
	once    sync.Once
	tr      transport
	sandbox *Sandbox
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) getTransport() transport {
	m.once.Do(func() {
		if m.cfg.User == "" || m.cfg.Password == "" {
			m.sandbox = NewSandbox()
			logger.InfoLogger.Infof("Email credentials not found. Sandbox mailbox %s will capture outbound mail", m.sandbox.Account())
			m.tr = &sandboxTransport{box: m.sandbox, from: m.sandbox.Account()}
			return
		}

		dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
		dialer.SSL = m.cfg.Secure
		dialer.TLSConfig = &tls.Config{ServerName: m.cfg.Host}
		m.tr = &smtpTransport{dialer: dialer, from: m.cfg.FromAddress, timeout: sendTimeout}
	})
	return m.tr
}

// Sandbox returns the disposable mailbox, or nil when a live SMTP transport
// is configured.
func (m *Mailer) Sandbox() *Sandbox {
	m.getTransport()
	return m.sandbox
}

func (m *Mailer) send(to, subject, templateName string, data interface{}) Outcome {
	body, err := render(templateName, data)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to render email template %s: %v", templateName, err)
		return Failed(fmt.Sprintf("template error: %v", err))
	}

	previewURL, err := m.getTransport().Send(to, subject, body)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to send email to %s: %v", to, err)
		return Failed(err.Error())
	}

	logger.InfoLogger.Infof("Email %q sent to %s", subject, to)
	return Sent(previewURL)
}

type smtpTransport struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

func (t *smtpTransport) Send(to, subject, htmlBody string) (string, error) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", t.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	errc := make(chan error, 1)
	go func() { errc <- t.dialer.DialAndSend(msg) }()

	select {
	case err := <-errc:
		if err != nil {
			return "", fmt.Errorf("failed to send email: %w", err)
		}
		return "", nil
	case <-time.After(t.timeout):
		return "", fmt.Errorf("smtp send timed out after %s", t.timeout)
	}
}
