package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// RegisterValidators installs the custom binding rules on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseAttendanceStatus(fl.Field().String())
		return err == nil
	})
}
