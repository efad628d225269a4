package utils

import (
	"bytes"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Filename string
	Content  []byte
}

// BookingStatusData feeds templates/booking_status.html.
type BookingStatusData struct {
	CustomerName string
	BookingCode  string
	TableNumber  int
	Date         string
	Time         string
	Guests       int
	Status       string
	CancelLink   string
}

// EventStatusData feeds templates/event_status.html.
type EventStatusData struct {
	ContactName string
	EventCode   string
	Date        string
	TimeSlot    string
	Guests      int
	Status      string
}

// OtpData feeds templates/otp_code.html.
type OtpData struct {
	Name    string
	Code    string
	Minutes int
}

// CancellationData feeds templates/cancellation_confirmed.html.
type CancellationData struct {
	Name string
	Code string
	Kind string
}

// OperatorNoticeData feeds templates/operator_notice.html.
type OperatorNoticeData struct {
	Subject string
	Lines   []string
}

// SendTemplateEmail renders templates/<name>.html and sends it synchronously.
// Callers that must not block go through the notification worker instead.
func SendTemplateEmail(to, subject, tmplName string, data any, attachments []Attachment) error {
	tmpl, err := template.ParseFiles(filepath.Join("templates", tmplName))
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return err
	}

	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())
	for _, a := range attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.Rename(a.Filename), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
