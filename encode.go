package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Args carries the parameters of one API operation. Where they end up on
// the wire depends on the [Encoding]: the query string or a JSON body.
type Args map[string]any

// Encoding selects where a request's payload is serialized.
type Encoding int

const (
	// EncodeQuery appends the payload to the query string. Slice values
	// are joined with commas into a single parameter; nil-valued keys
	// are omitted entirely.
	EncodeQuery Encoding = iota

	// EncodeBody serializes the payload as a JSON request body. GET
	// requests never carry a body, so EncodeBody payloads are ignored
	// for them.
	EncodeBody
)

// queryValues flattens the arguments into URL query values.
func (a Args) queryValues() url.Values {
	values := url.Values{}
	for key, val := range a {
		if isNil(val) {
			continue
		}
		values.Set(key, queryValue(val))
	}
	return values
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// queryValue renders one argument value. Slices collapse into a single
// comma-joined parameter, the form the API expects for id lists.
func queryValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}
