// Package schema provides utilities for generating MCP tool input schemas from
// Go structs and for decoding raw tool-call arguments into them.
package schema

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/voyagehq/travelmcp/protocol"
	"github.com/voyagehq/travelmcp/util/validator"
)

// goTypeToMCPType maps Go kinds to MCP schema types.
func goTypeToMCPType(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

// FromStruct generates a protocol.ToolInputSchema from struct tags. Non-pointer,
// non-slice fields are required; `description`, `enum`, `minimum`, `maximum`, and
// `itemsEnum` tags fill in the corresponding schema keywords. The generated schema
// always sets additionalProperties:false so unknown caller fields are rejected at
// the schema level as well as at decode time.
func FromStruct(v interface{}) protocol.ToolInputSchema {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	props := map[string]protocol.PropertyDetail{}
	var requiredFields []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.ToLower(field.Name)
		if jsonTag != "" {
			name = strings.Split(jsonTag, ",")[0]
		}

		fieldType := field.Type
		isPtr := fieldType.Kind() == reflect.Ptr
		if isPtr {
			fieldType = fieldType.Elem()
		}
		isSlice := fieldType.Kind() == reflect.Slice || fieldType.Kind() == reflect.Array
		if !isPtr && !isSlice {
			requiredFields = append(requiredFields, name)
		}

		detail := protocol.PropertyDetail{
			Type:        goTypeToMCPType(fieldType.Kind()),
			Description: field.Tag.Get("description"),
			Enum:        enumValues(field.Tag.Get("enum")),
			Minimum:     boundValue(field.Tag.Get("minimum")),
			Maximum:     boundValue(field.Tag.Get("maximum")),
		}
		if isSlice {
			items := protocol.PropertyDetail{
				Type: goTypeToMCPType(fieldType.Elem().Kind()),
				Enum: enumValues(field.Tag.Get("itemsEnum")),
			}
			detail.Items = &items
		}
		props[name] = detail
	}

	noAdditional := false
	schema := protocol.ToolInputSchema{
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: &noAdditional,
	}
	if len(requiredFields) > 0 {
		schema.Required = requiredFields
	}
	return schema
}

func enumValues(tag string) []interface{} {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, ",")
	values := make([]interface{}, len(parts))
	for i, p := range parts {
		values[i] = strings.TrimSpace(p)
	}
	return values
}

func boundValue(tag string) *float64 {
	if tag == "" {
		return nil
	}
	f, err := strconv.ParseFloat(tag, 64)
	if err != nil {
		return nil
	}
	return &f
}

// DecodeArgs decodes raw tool-call arguments into a strongly-typed struct T and
// validates it against its struct tags. Unknown fields are rejected rather than
// ignored, so caller mistakes surface early. The returned error, when non-nil,
// is a *validator.ValidationError describing the first offending field.
func DecodeArgs[T any](arguments map[string]interface{}) (*T, error) {
	var args T
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	var md mapstructure.Metadata
	decoderConfig := &mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &args,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, validator.NewValidationError("arguments", err.Error(), nil)
	}
	if err := decoder.Decode(arguments); err != nil {
		// mapstructure names the offending field in its error text.
		return nil, validator.NewValidationError("arguments", err.Error(), nil)
	}
	if len(md.Unused) > 0 {
		return nil, validator.NewValidationError(md.Unused[0], "is not a recognized field", arguments[md.Unused[0]])
	}

	if err := validator.Arguments(&args); err != nil {
		return nil, err
	}
	return &args, nil
}
