package config

import (
	"reflect"
	"strings"
)

// yamlTagName reports struct fields by their yaml key in validation errors.
func yamlTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
