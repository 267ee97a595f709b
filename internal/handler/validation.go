package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/clinichq/frontdesk-api/internal/model"
)

// RegisterValidations installs the custom binding validations. Safe to call
// more than once; re-registration overwrites.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("visittime", validVisitTime)
	}
}

// validVisitTime accepts timestamps in the visit-record layout
// (MM/dd/yyyy:HH:mm).
func validVisitTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(model.TimeLayout, fl.Field().String())
	return err == nil
}
