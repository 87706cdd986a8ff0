package widget

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// validatorInstance returns the shared validator with the widget tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("preset_color", func(fl validator.FieldLevel) bool {
			return IsValidColor(fl.Field().String())
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			_, err := NormalizeHex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return Platform(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// NormalizeHex parses #rgb or #rrggbb and returns lowercase #rrggbb.
func NormalizeHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("not a hex colour: %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Validate checks every field of c and returns one error per violation.
// An empty slice means c is valid.
func (c Config) Validate() []error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []error{NewParseError("validation failed", err)}
	}

	errs := make([]error, 0, len(ves))
	for _, fe := range ves {
		errs = append(errs, NewValidationError(jsonPath(fe.Namespace()), describe(fe)))
	}
	return errs
}

// jsonPath turns "Config.SocialLinks[1].Platform" into "socialLinks[1].platform".
func jsonPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	case "min", "max":
		return fmt.Sprintf("%v is out of range 0-%d", fe.Value(), MaxBottomOffset)
	case "preset_color":
		return fmt.Sprintf("unknown colour %q", fe.Value())
	case "hex_color":
		return fmt.Sprintf("invalid hex colour %q", fe.Value())
	case "platform":
		return fmt.Sprintf("unknown platform %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
