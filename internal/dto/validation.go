package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the extra binding tags used by the
// request DTOs onto gin's validator engine. Called once at startup.
func RegisterCustomValidations() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return engine.RegisterValidation("ymd", validYMD)
}

// validYMD accepts calendar dates in YYYY-MM-DD form, the only date format
// ever stored or exchanged.
func validYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
