package llmtool

import (
	"fmt"
	"reflect"
	"strings"
)

// Struct tags read by FieldsFromStruct.
const (
	descTag   = "prompt_desc"
	typeTag   = "prompt_type"
	promptTag = "prompt"
)

// FieldsFromStruct builds prompt fields from a Go struct. Names come from the
// json tag; fields tagged omitempty are optional unless `prompt:"required"`;
// `prompt:"-"` skips a field.
func FieldsFromStruct(v any) ([]PromptField, error) {
	if v == nil {
		return nil, fmt.Errorf("llmtool: struct is nil")
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("llmtool: expected struct, got %s", t.Kind())
	}
	fields := make([]PromptField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || hasOption(f.Tag.Get(promptTag), "-") {
			continue
		}
		name, omitEmpty := jsonName(f)
		if name == "" {
			continue
		}
		required := !omitEmpty
		switch {
		case hasOption(f.Tag.Get(promptTag), "required"):
			required = true
		case hasOption(f.Tag.Get(promptTag), "optional"):
			required = false
		}
		typ := strings.TrimSpace(f.Tag.Get(typeTag))
		if typ == "" {
			typ = typeString(f.Type)
		}
		fields = append(fields, PromptField{
			Name:        name,
			Type:        typ,
			Required:    required,
			Description: strings.TrimSpace(f.Tag.Get(descTag)),
		})
	}
	return fields, nil
}

// MustFieldsFromStruct panics on error; useful for prompt spec literals.
func MustFieldsFromStruct(v any) []PromptField {
	fields, err := FieldsFromStruct(v)
	if err != nil {
		panic(err)
	}
	return fields
}

func hasOption(tag, opt string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == opt {
			return true
		}
	}
	return false
}

func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	parts := strings.Split(tag, ",")
	name := strings.TrimSpace(parts[0])
	if name == "-" {
		return "", false
	}
	if name == "" {
		name = f.Name
	}
	return name, hasOption(strings.Join(parts[1:], ","), "omitempty")
}

func typeString(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "[]" + typeString(t.Elem())
	case reflect.Map:
		return "object"
	case reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return "object"
	default:
		return "any"
	}
}
