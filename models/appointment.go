package models

const (
	AppointmentUpcoming  = "upcoming"
	AppointmentOverdue   = "overdue"
	AppointmentCompleted = "completed"

	ConfirmationConfirmed = "confirmed"
	ConfirmationPending   = "pending"
)

// Appointment is a scheduled preventative health visit.
type Appointment struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ConfirmationStatus string `json:"confirmationStatus"`
	Status             string `json:"status"`
	Doctor             string `json:"doctor"`
	Specialty          string `json:"specialty"`
	Date               string `json:"date"` // YYYY-MM-DD
	Time               string `json:"time"`
	Location           string `json:"location"`
	Phone              string `json:"phone"`
}

// DashboardStats summarizes the appointment list for the dashboard header.
type DashboardStats struct {
	DaysUntilNext        *int `json:"daysUntilNext"`
	TotalScheduled       int  `json:"totalScheduled"`
	PendingConfirmations int  `json:"pendingConfirmations"`
	Upcoming             int  `json:"upcoming"`
	Overdue              int  `json:"overdue"`
	Completed            int  `json:"completed"`
}
