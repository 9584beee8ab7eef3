// Package validate checks the shape of a single record against the rules of
// its type. Rules are keyed by "record-<type>".
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

const keyPrefix = "record-"

type aRecord struct {
	Name   string `json:"name"   validate:"required,printascii"`
	IP     string `json:"ip"     validate:"required,ipv4"`
	Alias  string `json:"alias"  validate:"isdefault"`
	Host   string `json:"host"   validate:"isdefault"`
	Txt    string `json:"txt"    validate:"isdefault"`
	Target string `json:"target" validate:"isdefault"`
	Value  string `json:"value"  validate:"isdefault"`
}

type cnameRecord struct {
	Name   string `json:"name"   validate:"required,printascii"`
	Alias  string `json:"alias"  validate:"required,printascii"`
	IP     string `json:"ip"     validate:"isdefault"`
	Host   string `json:"host"   validate:"isdefault"`
	Txt    string `json:"txt"    validate:"isdefault"`
	Target string `json:"target" validate:"isdefault"`
	Value  string `json:"value"  validate:"isdefault"`
}

// Key returns the rule key of a record type.
func Key(t zone.Type) string {
	return keyPrefix + t.String()
}

// Validator validates records and keeps the reason of the last failure.
// It is not safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	errText  string
}

// New returns a Validator reporting fields by their serialized names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate reports whether r satisfies the rules registered under key.
func (v *Validator) Validate(key string, r zone.Record) bool {
	var shadow any

	switch key {
	case Key(zone.TypeA):
		shadow = &aRecord{
			Name: r.Name, IP: r.IP, Alias: r.Alias, Host: r.Host, Txt: r.Txt, Target: r.Target, Value: r.Value,
		}
	case Key(zone.TypeCNAME):
		shadow = &cnameRecord{
			Name: r.Name, Alias: r.Alias, IP: r.IP, Host: r.Host, Txt: r.Txt, Target: r.Target, Value: r.Value,
		}
	default:
		v.errText = "no schema with key or ref \"" + key + "\""
		return false
	}

	if err := v.validate.Struct(shadow); err != nil {
		v.errText = errorsText(err)
		return false
	}

	v.errText = ""

	return true
}

// ErrorsText returns the reason of the last failed validation, or "" if the
// last validation passed.
func (v *Validator) ErrorsText() string {
	return v.errText
}

func errorsText(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	errorMessages := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
	}

	return strings.Join(errorMessages, ", ")
}
