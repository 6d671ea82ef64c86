// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"strings"
)

const redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"accesstoken":   {},
	"authorization": {},
}

// redactPayload renders v as JSON for debug logging with the values of
// sensitive keys replaced at any depth. Keys are matched case-insensitively.
func redactPayload(v any) string {
	if v == nil {
		return ""
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return ""
	}

	out, err := json.Marshal(redactValue(generic))
	if err != nil {
		return ""
	}
	return string(out)
}

func redactValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for k, inner := range value {
			if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
				value[k] = redacted
				continue
			}
			value[k] = redactValue(inner)
		}
		return value
	case []any:
		for i, inner := range value {
			value[i] = redactValue(inner)
		}
		return value
	default:
		return v
	}
}
