package models

import "time"

// Appointment dates and times are literal strings ("2006-01-02", "15:04")
// interpreted in the practitioner's local zone. The appointments-by-date
// lookup is an exact string match on Date.
type Appointment struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patientId"`
	UserID    int       `json:"userId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Appointment) OwnedBy(userID int) bool {
	return a.UserID == userID
}
