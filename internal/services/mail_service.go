package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type MailServiceInterface interface {
	SendPlanReminder(to string, name string) error
	SendPasswordResetCode(to string, code string) error
}

// SMTPConfig holds the SMTP connection plus branding settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS (465) instead of STARTTLS (587)
	RequireTLS bool

	AppName string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (MailServiceInterface, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(htmlTemplate)),
		textTpl: template.Must(template.New("text").Parse(textTemplate)),
	}, nil
}

type emailData struct {
	Title   string
	Intro   string
	Code    string
	AppName string
	Year    int
}

const htmlTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="margin:0;padding:24px;background:#f4f7f6;font-family:Helvetica,Arial,sans-serif;color:#1f2d27;">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;">
    <div style="font-weight:700;font-size:20px;color:#1a936f;">{{.AppName}}</div>
    <h1 style="font-size:24px;margin:24px 0 12px;">{{.Title}}</h1>
    <p style="line-height:1.6;color:#44554e;">{{.Intro}}</p>
    {{if .Code}}
    <p style="font-size:28px;letter-spacing:6px;font-weight:700;text-align:center;margin:28px 0;">{{.Code}}</p>
    {{end}}
    <p style="color:#8aa198;font-size:12px;margin-top:32px;">© {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const textTemplate = `{{.Title}}

{{.Intro}}
{{if .Code}}
Code: {{.Code}}
{{end}}
— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendPlanReminder(to string, name string) error {
	subject := "Your plans are waiting"
	intro := fmt.Sprintf("Hi %s, remember to check today's meals and training session and log your progress.", name)
	return s.sendTemplated(to, subject, emailData{
		Title:   subject,
		Intro:   intro,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) SendPasswordResetCode(to string, code string) error {
	subject := "Reset your password"
	return s.sendTemplated(to, subject, emailData{
		Title:   subject,
		Intro:   "Use the code below to reset your password. It expires in 15 minutes. If you did not request this, ignore this email.",
		Code:    code,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) sendTemplated(to, subject string, data emailData) error {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var client *smtp.Client
	if s.cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
		client = c
	} else {
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err := dialer.Dial("tcp", addr)
		if err != nil {
			return err
		}
		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(tlsCfg); err != nil {
				c.Close()
				return err
			}
		} else if s.cfg.RequireTLS {
			c.Close()
			return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
		}
		client = c
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.cfg.From)
}
