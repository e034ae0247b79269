package request

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding rules on gin's validator
// engine. Called once during router setup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// hhmm: a 24-hour HH:MM wall-clock value
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		parts := strings.SplitN(fl.Field().String(), ":", 2)
		if len(parts) != 2 {
			return false
		}
		hour, err := strconv.Atoi(parts[0])
		if err != nil {
			return false
		}
		minute, err := strconv.Atoi(parts[1])
		if err != nil {
			return false
		}
		return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
	})
}
