package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Link struct {
//       Label     string `yaml:"label" validate:"required"`
//       AriaLabel string `yaml:"ariaLabel" validate:"required"`
//   }
//   type File struct {
//       Ease string `yaml:"ease" validate:"omitempty,ease"`
//   }
//
// Custom tags registered here: ease (known easing curve name) and color
// (empty, #RRGGBB/#RGB hex, or a 0-255 ANSI colour index).

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/bestpick/cardnav/internal/motion"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate

	hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	customTags = map[string]validator.Func{
		"ease": func(fl validator.FieldLevel) bool {
			return motion.KnownEase(fl.Field().String())
		},
		"color": func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		},
	}
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		mustRegister(validatorInst, customTags)
	})
	return validatorInst
}

// mustRegister adds tags to v. A tag that cannot be registered is a
// programming error, so it panics here rather than on first use.
func mustRegister(v *validator.Validate, tags map[string]validator.Func) {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validate: register %q: %v", tag, err))
		}
	}
}

// IsColor reports whether s is usable as a terminal colour hint.
func IsColor(s string) bool {
	if s == "" || hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
