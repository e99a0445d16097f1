package models

// ReminderPayload is the queued task payload for the appointment reminder
// worker.
type ReminderPayload struct {
	ReminderID  string `json:"reminderId"`
	OrderNumber string `json:"orderNumber"`
	FireDate    string `json:"fireDate"`
}
