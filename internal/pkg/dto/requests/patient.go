package requests

type CreatePatient struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,phone_number"`
	BirthDate  string `json:"birthDate" validate:"omitempty,date_ymd"`
	Profession string `json:"profession" validate:"omitempty,max=120"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdatePatient is an explicit patch: only non-nil fields are applied, so
// unexpected keys are rejected by shape and unspecified columns stay put.
type UpdatePatient struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=120"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,phone_number"`
	BirthDate  *string `json:"birthDate" validate:"omitempty,date_ymd"`
	Profession *string `json:"profession" validate:"omitempty,max=120"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive"`
}
