package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验请求体，错误类型保留给 response.Error 统一映射
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
