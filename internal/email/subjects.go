package email

const (
	subjectConfirmation = "Your appointment is booked"
	subjectReminder     = "Reminder: your upcoming appointment"
)
