package models

import "time"

type Patient struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	BirthDate  string    `json:"birthDate,omitempty"`
	Profession string    `json:"profession,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (p Patient) OwnedBy(userID int) bool {
	return p.UserID == userID
}
