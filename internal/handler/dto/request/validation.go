package request

import (
	"sync"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's
// validator engine. Safe to call more than once; every call returns the first result.
func RegisterValidators() error {
	registerOnce.Do(func() {
		registerErr = registerValidators(binding.Validator.Engine())
	})
	return registerErr
}

func registerValidators(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return errs.Newf("binding engine is %T, cardlast4 needs go-playground/validator", engine)
	}
	if err := v.RegisterValidation("cardlast4", cardLast4); err != nil {
		return errs.Wrap(err, "register cardlast4 validator")
	}
	return nil
}

func cardLast4(fl validator.FieldLevel) bool {
	return booking.IsCardLast4(fl.Field().String())
}
