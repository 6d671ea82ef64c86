// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/cardify/models"
)

type ctxKey struct{}

// NewContext returns a copy of ctx carrying sess.
func NewContext(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session attached by the session middleware.
func FromContext(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*models.Session)
	return sess, ok && sess != nil
}
