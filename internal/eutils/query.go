// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import "strings"

// Param is one query string parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is preserved in the
// built URL so requests are reproducible.
type Params []Param

// Add appends key=value and returns the extended list.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// AddIfSet appends key=value only when value is non-empty.
func (p Params) AddIfSet(key, value string) Params {
	if value == "" {
		return p
	}
	return p.Add(key, value)
}

// BuildURL joins params onto base as "base?k1=v1&k2=v2". Values are not
// escaped; callers must encode them first when needed.
func BuildURL(base string, params Params) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Key + "=" + p.Value
	}
	return base + "?" + strings.Join(parts, "&")
}
