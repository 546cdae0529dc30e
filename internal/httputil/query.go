package httputil

import (
	"net/url"
	"reflect"
)

// SetFields returns the names of the fields of filter whose form parameter
// is present in the query, in field order.
//
// A parameter with an empty value counts as present, which allows
// filtering for zero values without pointer fields.
func SetFields(query url.Values, filter any) []string {
	var fields []string

	t := reflect.Indirect(reflect.ValueOf(filter)).Type()
	for i := 0; i < t.NumField(); i++ {
		param, ok := t.Field(i).Tag.Lookup("form")
		if !ok || param == "" {
			continue
		}

		if query.Has(param) {
			fields = append(fields, t.Field(i).Name)
		}
	}

	return fields
}
