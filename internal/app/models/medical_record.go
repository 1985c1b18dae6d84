package models

import "time"

// MedicalRecord is append-only: records are never updated or removed once
// written, so the clinical history stays auditable.
type MedicalRecord struct {
	ID         int       `json:"id"`
	PatientID  int       `json:"patientId"`
	UserID     int       `json:"userId"`
	Date       time.Time `json:"date"`
	RecordType string    `json:"recordType"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (m MedicalRecord) OwnedBy(userID int) bool {
	return m.UserID == userID
}
