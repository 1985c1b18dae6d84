package models

import "time"

// WhatsappTemplate is a reusable reminder-message pattern. Placeholder tags
// inside Message are stored verbatim; no dispatch happens here.
type WhatsappTemplate struct {
	ID                    int       `json:"id"`
	UserID                int       `json:"userId"`
	Name                  string    `json:"name"`
	Message               string    `json:"message"`
	TimeBeforeAppointment int       `json:"timeBeforeAppointment"`
	Status                string    `json:"status"`
	RequestConfirmation   bool      `json:"requestConfirmation"`
	SendTime              string    `json:"sendTime,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (t WhatsappTemplate) OwnedBy(userID int) bool {
	return t.UserID == userID
}
