// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request models through their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] that reports fields by their
// wire name: the `json` tag, or the `param` tag for values taken from the
// URL path.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(wireName)

	return &RequestValidator{validate: validate}
}

// Validate implements [Validator]. Only the first failing field is reported.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return app.NewRequiredFieldError(fieldErrs[0].Field())
	}

	return fmt.Errorf("validate %T: %w", obj, err)
}

func wireName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		name = field.Tag.Get("param")
	}
	return name
}
