package utils

import (
	"strings"

	"atenda-service/internal/pkg/dto/requests"
)

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Name = strings.TrimSpace(request.Name)
	request.Profession = strings.TrimSpace(request.Profession)
}

func SanitizeLoginUserRequest(request *requests.LoginUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Profession = strings.TrimSpace(request.Profession)
}

func SanitizeUpdatePatientRequest(request *requests.UpdatePatient) {
	if request.Name != nil {
		trimmed := strings.TrimSpace(*request.Name)
		request.Name = &trimmed
	}
	if request.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*request.Email))
		request.Email = &lowered
	}
	if request.Phone != nil {
		trimmed := strings.TrimSpace(*request.Phone)
		request.Phone = &trimmed
	}
	if request.Profession != nil {
		trimmed := strings.TrimSpace(*request.Profession)
		request.Profession = &trimmed
	}
}
