package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const displayDateLayout = "Monday, January 2 2006 at 15:04"

type baseEmailData struct {
	Title   string
	Heading string
}

type confirmationEmailData struct {
	baseEmailData
	CustomerName    string
	AppointmentDate string
	ServiceNames    []string
}

type reminderEmailData struct {
	baseEmailData
	CustomerName    string
	AppointmentDate string
	ServiceNames    []string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatDisplayDate(at time.Time) string {
	return at.Format(displayDateLayout)
}
