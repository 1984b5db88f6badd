package response

import (
	"github.com/lotecerto/lotecerto-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
