package request

import (
	"time"

	"club-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const GermanDateLayout = "02.01.2006"

// RegisterValidators adds the custom binding tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("germandate", validateGermanDate); err != nil {
		return errs.Wrap(err, "failed to register germandate validation")
	}
	return nil
}

func validateGermanDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(GermanDateLayout, fl.Field().String())
	return err == nil
}
