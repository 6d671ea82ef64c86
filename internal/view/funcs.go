// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"fmt"
	"html/template"
)

func funcs() template.FuncMap {
	return template.FuncMap{
		"field": field,
	}
}

// field reads a key of a decoded JSON object; anything missing renders empty.
func field(obj any, key string) string {
	values, ok := obj.(map[string]any)
	if !ok {
		return ""
	}

	v, ok := values[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
