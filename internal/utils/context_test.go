// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if traceID != "trace-1" {
		t.Errorf("expected traceID=trace-1, got %s", traceID)
	}
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	ctx := WithAccessToken(context.Background(), "tok")

	token, ok := GetAccessTokenFromContext(ctx)

	if !ok || token != "tok" {
		t.Fatalf("expected tok/true, got %q/%v", token, ok)
	}
}

func TestAccessToken_MissingOrEmpty(t *testing.T) {
	if _, ok := GetAccessTokenFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing token")
	}
	if _, ok := GetAccessTokenFromContext(WithAccessToken(context.Background(), "")); ok {
		t.Error("expected ok=false for empty token")
	}
}

func TestAccessToken_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "tok")

	if _, ok := GetAccessTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
