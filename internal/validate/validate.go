package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"kuliner/internal/errs"

	"github.com/go-playground/validator/v10"
)

var nikPattern = regexp.MustCompile(`^[0-9]{16}$`)

// MaxPasswordBytes is the most bcrypt will hash.
const MaxPasswordBytes = 72

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Indonesian national identity number (NIK): exactly 16 digits
	v.RegisterValidation("nik", func(fl validator.FieldLevel) bool {
		return nikPattern.MatchString(fl.Field().String())
	})

	// bcrypt counts bytes, not characters
	v.RegisterValidation("password_bytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
}

// Struct validates s and converts failures into *errs.ValidationError.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &errs.ValidationError{}
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe), message(fe))
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "nik":
		return "must be exactly 16 digits"
	case "password_bytes":
		return fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes)
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
