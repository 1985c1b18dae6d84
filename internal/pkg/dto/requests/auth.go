package requests

type RegisterUser struct {
	Username   string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,password"`
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Profession string `json:"profession" validate:"omitempty,max=120"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
