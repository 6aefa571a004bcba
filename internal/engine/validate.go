package engine

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/danieljhkim/timetable/internal/timetable"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "{0} must be a weekday (Monday to Friday)"

	requiredTag  = "required"
	requiredText = "{0} is required"
)

// requestValidator checks request structs and renders failures in English.
type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestValidator() *requestValidator {
	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	// Report JSON names (batch, slot) rather than Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(weekdayTag, func(fl validator.FieldLevel) bool {
		_, ok := timetable.ParseDay(fl.Field().String())
		return ok
	})
	registerTranslation(validate, trans, weekdayTag, weekdayText, false)
	registerTranslation(validate, trans, requiredTag, requiredText, true)

	return &requestValidator{validate: validate, trans: trans}
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates req and returns a *ValidationError describing every
// failing field.
func (v *requestValidator) Struct(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(v.trans))
	}
	return &ValidationError{Msg: strings.Join(msgs, "; ")}
}

// ParseSlot converts user input to a slot index.
func ParseSlot(s string) (int, error) {
	slot, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, NewValidationError("slot must be an integer between 0 and %d, got %q", timetable.SlotCount-1, s)
	}
	if !timetable.ValidSlot(slot) {
		return 0, NewValidationError("slot must be between 0 and %d, got %d", timetable.SlotCount-1, slot)
	}
	return slot, nil
}
