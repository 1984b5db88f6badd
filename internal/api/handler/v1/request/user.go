package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateSettingsRequest struct {
	Theme string `json:"theme"`
}

func (req *UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Theme, validation.Required, validation.In("light", "dark")),
	)
}
