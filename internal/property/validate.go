package property

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationResult lists every rule a submission violates, in rule order.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {}, "PR": {}, "VI": {}, "GU": {}, "AS": {}, "MP": {},
}

// messages maps a failing Submission field to its user-facing message.
var messages = map[string]string{
	"City":    "City is required",
	"Street":  "Street is required",
	"State":   "Invalid state code",
	"ZipCode": "Zip code must be 5 digits",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		_, ok := usStates[strings.ToUpper(strings.TrimSpace(fl.Field().String()))]
		return ok
	})
	_ = v.RegisterValidation("zip5", func(fl validator.FieldLevel) bool {
		return isZip5(fl.Field().String())
	})
	return v
}

func isZip5(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Sanitize trims every field and uppercases the state. It is idempotent.
func Sanitize(s Submission) Submission {
	return Submission{
		City:    strings.TrimSpace(s.City),
		Street:  strings.TrimSpace(s.Street),
		State:   strings.ToUpper(strings.TrimSpace(s.State)),
		ZipCode: strings.TrimSpace(s.ZipCode),
	}
}

// Validate checks s against all rules without stopping at the first failure.
// Rules apply to the sanitized form, so surrounding whitespace and state case
// do not matter.
func Validate(s Submission) ValidationResult {
	err := validate.Struct(Sanitize(s))
	if err == nil {
		return ValidationResult{Valid: true, Errors: []string{}}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationResult{Valid: false, Errors: []string{err.Error()}}
	}

	// Field errors come back in struct field order, which is rule order.
	res := ValidationResult{Errors: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		msg, known := messages[fe.StructField()]
		if !known {
			msg = fe.Error()
		}
		res.Errors = append(res.Errors, msg)
	}
	return res
}
