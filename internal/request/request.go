// Package request builds outgoing API requests from an endpoint template and a payload struct
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"
)

// Endpoint names one API operation
type Endpoint struct {
	Method string
	// Path is relative to the base URL and may hold {name} placeholders filled from `path` tagged fields
	Path string
}

type endpointKey struct{}

// WithEndpoint stores the endpoint template on ctx so transport layers can label requests without the interpolated ids
func WithEndpoint(ctx context.Context, ep Endpoint) context.Context {
	return context.WithValue(ctx, endpointKey{}, ep)
}

// EndpointFrom returns the endpoint template stored on ctx, if any
func EndpointFrom(ctx context.Context) (Endpoint, bool) {
	ep, ok := ctx.Value(endpointKey{}).(Endpoint)
	return ep, ok
}

// New creates the http request for ep.
// Path parameters are taken out of params; GET sends the rest as a query string, POST and PUT always
// send a JSON object, DELETE sends JSON only when non-path fields exist.
func New(ctx context.Context, base *url.URL, ep Endpoint, params any) (*http.Request, error) {

	path, bodyFields, err := interpolate(ep.Path, params)
	if err != nil {
		return nil, err
	}

	u := base.ResolveReference(&url.URL{Path: path})

	var body io.Reader
	switch ep.Method {
	case http.MethodGet:
		if params != nil {
			values, err := query.Values(params)
			if err != nil {
				return nil, fmt.Errorf("error encoding query for %s, %w", ep.Path, err)
			}
			u.RawQuery = values.Encode()
		}
	case http.MethodDelete:
		if bodyFields {
			if body, err = encodeJSON(params); err != nil {
				return nil, fmt.Errorf("error encoding body for %s, %w", ep.Path, err)
			}
		}
	default:
		if params == nil {
			body = strings.NewReader("{}")
		} else if body, err = encodeJSON(params); err != nil {
			return nil, fmt.Errorf("error encoding body for %s, %w", ep.Path, err)
		}
	}

	req, err := http.NewRequestWithContext(WithEndpoint(ctx, ep), ep.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s, %w", ep.Path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func encodeJSON(params any) (io.Reader, error) {
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(params); err != nil {
		return nil, err
	}
	return &b, nil
}

// interpolate fills {name} placeholders from fields tagged `path:"name"` and reports whether any field
// would still be encoded into a body
func interpolate(template string, params any) (string, bool, error) {

	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}

	bodyFields := false
	path := template

	if rv.Kind() == reflect.Struct {
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			name, ok := f.Tag.Lookup("path")
			if !ok {
				if jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ","); jsonName != "-" {
					bodyFields = true
				}
				continue
			}
			path = strings.ReplaceAll(path, "{"+name+"}", fmt.Sprint(rv.Field(i).Interface()))
		}
	} else if rv.IsValid() && rv.Kind() == reflect.Slice {
		bodyFields = true
	} else if rv.IsValid() && rv.Kind() == reflect.Map {
		bodyFields = rv.Len() > 0
	}

	if i := strings.IndexByte(path, '{'); i >= 0 {
		return "", false, fmt.Errorf("error building path %q, unfilled parameter in %q", template, path[i:])
	}

	return path, bodyFields, nil
}
