// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ErrUnsupportedType is returned when the validated value is not a struct or
// a pointer to one.
var ErrUnsupportedType = errors.New("unsupported type for validation")
