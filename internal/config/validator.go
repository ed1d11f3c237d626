package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"discordsend/internal/errorwrapper"
	"discordsend/internal/urlhandler"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the validator instance with the custom rules used by
// the configuration structs.
func newValidator() *validator.Validate {
	validate := validator.New()

	// http or https URL (avatar and webhook fields)
	_ = validate.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true // Optional field, valid if empty
		}
		return urlhandler.ValidateHTTPURL(value) == nil
	})

	// 6 hex digits with optional leading '#'
	_ = validate.RegisterValidation("colorcode", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, err := ParseColorCode(value)
		return err == nil
	})

	// existing, readable, non-empty regular file
	_ = validate.RegisterValidation("attachment", func(fl validator.FieldLevel) bool {
		path := fl.Field().String()
		if path == "" {
			return true
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || info.Size() == 0 {
			return false
		}
		f, err := os.Open(path)
		if err != nil {
			return false
		}
		_ = f.Close()
		return true
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := newValidator()
	if err := validate.Struct(cfg); err != nil {
		return translateValidatorError(err)
	}
	return nil
}

// ValidateNotification validates the notification record after flag and
// config-file merging. Beyond the per-field rules it requires at least one
// content-bearing field (message, title, description or file path).
func ValidateNotification(nc *NotificationConfig) error {
	validate := newValidator()
	if err := validate.Struct(nc); err != nil {
		return translateValidatorError(err)
	}

	if !nc.HasContent() {
		return errorwrapper.NewValidationError("content", "", "at least one of message, title, description or file is required")
	}

	return nil
}

// translateValidatorError converts validator/v10 errors into the
// application's ValidationError type, keeping every failed rule in the
// message.
func translateValidatorError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return errorwrapper.WrapError(err, "configuration validation error")
	}

	var messages []string
	for _, e := range errs {
		msg := fmt.Sprintf("validation failed for '%s': rule '%s'", e.Field(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		messages = append(messages, msg)
	}

	first := errs[0]
	return errorwrapper.NewValidationError(first.Field(), first.Value(), strings.Join(messages, "; "))
}
