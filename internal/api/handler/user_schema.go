package handler

import (
	"github.com/lojaviva/commerce-system/internal/core/ports"
)

// detailResponse is the envelope used for health checks, delete
// confirmations and (via the central error handler) every error.
type detailResponse struct {
	Detail string `json:"detail"`
}

// userRequest is the registration/update payload. phone_number may be
// omitted at the transport layer; validation still demands it, so an absent
// phone fails with the phone format message rather than a bind error.
type userRequest struct {
	FullName    string  `json:"full_name"`
	CPF         string  `json:"cpf"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

func (r userRequest) input() ports.UserInput {
	return ports.UserInput{
		FullName:    r.FullName,
		CPF:         r.CPF,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}
