// Package validate owns the shared struct validator and its custom rules.
package validate

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	v    *validator.Validate
	once sync.Once
)

// Instance returns the process-wide validator, registering custom rules on
// first use.
func Instance() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		// required passes for whitespace-only strings; titles must not.
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return v
}

// Struct runs the shared validator against s.
func Struct(s any) error {
	return Instance().Struct(s)
}
