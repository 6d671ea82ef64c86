// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned when the access token carries an expiry claim
// in the past.
var ErrTokenExpired = errors.New("token expired")

// ValidateAccessToken checks an access token issued by the backend.
//
// With a non-empty signKey the HMAC signature and the registered time claims
// are verified. Without a key the token is only parsed and its expiry claim
// checked; the backend remains the authority on the signature.
func ValidateAccessToken(tokenString, signKey string) (*jwt.RegisteredClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	claims := &jwt.RegisteredClaims{}

	if signKey != "" {
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			return []byte(signKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}))
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		if err != nil {
			return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
		}
		return claims, nil
	}

	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("error occurred parsing token: %w", err)
	}

	if err := jwt.NewValidator().Validate(claims); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("error occurred validating token claims: %w", err)
	}

	return claims, nil
}
