package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type DescribeImageRequest struct {
	Image string `json:"image"`
}

func (req *DescribeImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Image, validation.Required),
	)
}
