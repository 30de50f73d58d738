// Package validator provides validation utilities for tool arguments.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValidationError reports the first offending field of an argument struct,
// the constraint it violated, and the supplied value.
type ValidationError struct {
	Field      string
	Constraint string
	Value      interface{}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Constraint, e.Value)
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, constraint string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint, Value: value}
}

// Arguments enforces `required`, `enum`, `minimum`, `maximum`, and `itemsEnum`
// struct tags on an argument struct. Optional fields are pointers (or slices);
// bound and enum checks apply only when a value was supplied. Fields are checked
// in declaration order and the first violation is returned.
//
// Usage: if err := validator.Arguments(args); err != nil { ... }
func Arguments(s interface{}) error {
	v := reflect.ValueOf(s)
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		v = v.Elem()
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		name := fieldName(field)

		if field.Tag.Get("required") == "true" && isEmpty(value) {
			return NewValidationError(name, "is required", nil)
		}

		// Unwrap optional pointers; nil means the caller omitted the field.
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		}

		if err := checkBounds(name, field, value); err != nil {
			return err
		}
		if err := checkEnum(name, field, value); err != nil {
			return err
		}
	}
	return nil
}

func fieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag != "" && jsonTag != "-" {
		return strings.Split(jsonTag, ",")[0]
	}
	return strings.ToLower(field.Name)
}

func isEmpty(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.String:
		return value.String() == ""
	case reflect.Slice, reflect.Array:
		return value.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return value.IsNil()
	}
	return false
}

func checkBounds(name string, field reflect.StructField, value reflect.Value) error {
	var num float64
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num = float64(value.Int())
	case reflect.Float32, reflect.Float64:
		num = value.Float()
	default:
		return nil
	}

	if minTag := field.Tag.Get("minimum"); minTag != "" {
		min, err := strconv.ParseFloat(minTag, 64)
		if err == nil && num < min {
			return NewValidationError(name, fmt.Sprintf("must be at least %s", minTag), num)
		}
	}
	if maxTag := field.Tag.Get("maximum"); maxTag != "" {
		max, err := strconv.ParseFloat(maxTag, 64)
		if err == nil && num > max {
			return NewValidationError(name, fmt.Sprintf("must be at most %s", maxTag), num)
		}
	}
	return nil
}

func checkEnum(name string, field reflect.StructField, value reflect.Value) error {
	if enumTag := field.Tag.Get("enum"); enumTag != "" && value.Kind() == reflect.String {
		if !contains(strings.Split(enumTag, ","), value.String()) {
			return NewValidationError(name, fmt.Sprintf("must be one of [%s]", enumTag), value.String())
		}
	}
	if itemsTag := field.Tag.Get("itemsEnum"); itemsTag != "" && value.Kind() == reflect.Slice {
		allowed := strings.Split(itemsTag, ",")
		for j := 0; j < value.Len(); j++ {
			elem := value.Index(j)
			if elem.Kind() != reflect.String {
				continue
			}
			if !contains(allowed, elem.String()) {
				return NewValidationError(name, fmt.Sprintf("elements must be one of [%s]", itemsTag), elem.String())
			}
		}
	}
	return nil
}

func contains(allowed []string, s string) bool {
	for _, a := range allowed {
		if strings.TrimSpace(a) == s {
			return true
		}
	}
	return false
}
