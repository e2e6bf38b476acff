package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	chainNameRe   = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,31}$`)
	tokenSymbolRe = regexp.MustCompile(`^[A-Za-z0-9.]{1,16}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators adds the payroll request validators to v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("chain", validateChain)
	_ = v.RegisterValidation("decimal", validateDecimal)
	_ = v.RegisterValidation("token_symbol", validateTokenSymbol)
}

// validateChain accepts lowercase chain identifiers. Membership in the chain
// registry is not checked here; unknown chains fail at execution.
func validateChain(fl validator.FieldLevel) bool {
	return chainNameRe.MatchString(strings.ToLower(strings.TrimSpace(fl.Field().String())))
}

// validateDecimal accepts any decimal number. Positivity is reported by the
// advisory validation endpoint.
func validateDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateTokenSymbol(fl validator.FieldLevel) bool {
	return tokenSymbolRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		case reflect.Slice:
			for j := 0; j < f.Len(); j++ {
				if item := f.Index(j); item.Kind() == reflect.Struct {
					sanitizeFields(item)
				}
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
