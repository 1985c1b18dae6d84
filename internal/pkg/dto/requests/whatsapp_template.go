package requests

type CreateWhatsappTemplate struct {
	Name                  string `json:"name" validate:"required,min=2,max=120"`
	Message               string `json:"message" validate:"required,max=4000"`
	TimeBeforeAppointment int    `json:"timeBeforeAppointment" validate:"omitempty,gte=0"`
	Status                string `json:"status" validate:"omitempty,oneof=active inactive"`
	RequestConfirmation   bool   `json:"requestConfirmation"`
	SendTime              string `json:"sendTime" validate:"omitempty,time_hm"`
}

type UpdateWhatsappTemplate struct {
	Name                  *string `json:"name" validate:"omitempty,min=2,max=120"`
	Message               *string `json:"message" validate:"omitempty,max=4000"`
	TimeBeforeAppointment *int    `json:"timeBeforeAppointment" validate:"omitempty,gte=0"`
	Status                *string `json:"status" validate:"omitempty,oneof=active inactive"`
	RequestConfirmation   *bool   `json:"requestConfirmation"`
	SendTime              *string `json:"sendTime" validate:"omitempty,time_hm"`
}
