// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the shared validator instance. Field names in
// reported errors use the json tag, so they match what the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs tag-based validation and converts the result into a
// [*ValidationError] with one message per failed field (first rule wins).
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		if _, seen := fields[fieldError.Field()]; seen {
			continue
		}
		fields[fieldError.Field()] = ruleMessage(fieldError)
	}

	return &ValidationError{Fields: fields}
}

// validateField validates a single value against a validator tag and
// reports the failure under the given field name. Used for the optional
// fields of partial updates, where struct tags cannot distinguish
// "absent" from "present but invalid".
func validateField(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	return &ValidationError{
		Fields: map[string]string{field: ruleMessage(validationErrors[0])},
	}
}

// ruleMessage renders a human-readable message for one failed rule.
func ruleMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fieldError.Param())
	case "max":
		return fmt.Sprintf("ensure this field has at most %s characters", fieldError.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fieldError.Tag())
	}
}
