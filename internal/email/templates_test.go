package email

import (
	"strings"
	"testing"
	"time"
)

func TestRenderConfirmationTemplate(t *testing.T) {
	at := time.Date(2026, time.June, 12, 14, 30, 0, 0, time.UTC)

	content, err := renderEmailTemplate("confirmation.html", confirmationEmailData{
		baseEmailData: baseEmailData{
			Title:   "Appointment booked",
			Heading: "Your appointment is booked",
		},
		CustomerName:    "Alice",
		AppointmentDate: formatDisplayDate(at),
		ServiceNames:    []string{"Haircut", "Facial"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"Alice", "Friday, June 12 2026 at 14:30", "Haircut", "Facial"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderReminderTemplateEscapesHTML(t *testing.T) {
	content, err := renderEmailTemplate("reminder.html", reminderEmailData{
		baseEmailData:   baseEmailData{Title: "Appointment reminder", Heading: "See you soon"},
		CustomerName:    "<script>alert(1)</script>",
		AppointmentDate: formatDisplayDate(time.Now()),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(content, "<script>") {
		t.Error("customer name was not escaped")
	}
}
