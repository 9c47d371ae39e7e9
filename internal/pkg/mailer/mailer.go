package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"skybook/internal/config"
)

// Mailer sends transactional mail. It is an external collaborator: callers
// treat failures as non-fatal and only log them.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

var otpTemplate = template.Must(template.New("otp").Parse(`
<p>Hello {{.Email}},</p>
<p>Your verification code is <strong>{{.OTP}}</strong>. It expires in 30 minutes.</p>
`))

var resetTemplate = template.Must(template.New("reset").Parse(`
<p>We received a request to reset your password.</p>
<p><a href="{{.Link}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this message.</p>
`))

var promoTemplate = template.Must(template.New("promo").Parse(`
<p>Good news! A discount of {{.Percent}}% is valid from {{.Start}} until {{.End}}.</p>
`))

func (m *Mailer) SendOTP(to, otp string) error {
	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, map[string]string{"Email": to, "OTP": otp}); err != nil {
		return err
	}
	return m.send(to, "Email Activation", body.String())
}

func (m *Mailer) SendPasswordReset(to, link string) error {
	var body bytes.Buffer
	if err := resetTemplate.Execute(&body, map[string]string{"Link": link}); err != nil {
		return err
	}
	return m.send(to, "Reset Password", body.String())
}

func (m *Mailer) SendPromotionAnnouncement(to string, percent float64, start, end string) error {
	var body bytes.Buffer
	err := promoTemplate.Execute(&body, map[string]string{
		"Percent": fmt.Sprintf("%g", percent),
		"Start":   start,
		"End":     end,
	})
	if err != nil {
		return err
	}
	return m.send(to, "New Promotion", body.String())
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
