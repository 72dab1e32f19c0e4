package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when the Authorization header is absent
	ErrMissingToken = errors.New("auth: missing bearer token")

	// ErrMalformedToken is returned when the header or the token cannot be read
	ErrMalformedToken = errors.New("auth: malformed bearer token")
)

// Claims identity carried by a clinic CRM token.
// The signature is checked by the clinic backend, this service only reads the claims.
type Claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role,omitempty"`
	ClinicID string `json:"clinic_id,omitempty"`
}

// Principal authenticated caller of a request
type Principal struct {
	Token    string
	UserID   string
	Role     string
	ClinicID string
}

type contextKey struct{}

// WithPrincipal stores p in ctx
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the principal stored in ctx
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// TokenFromContext returns the raw bearer token stored in ctx, or ""
func TokenFromContext(ctx context.Context) string {
	p, _ := FromContext(ctx)
	return p.Token
}

// BearerToken extracts the token from an Authorization header value.
// A "Bearer " prefix is accepted in any case.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedToken
	}

	return parts[1], nil
}

// ParsePrincipal decodes the token claims without verifying the signature.
// Opaque (non-JWT) tokens are accepted with empty claims and forwarded as is.
func ParsePrincipal(token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrMissingToken
	}

	p := Principal{Token: token}
	if strings.Count(token, ".") != 2 {
		return p, nil
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	p.UserID = claims.Subject
	p.Role = claims.Role
	p.ClinicID = claims.ClinicID
	return p, nil
}
