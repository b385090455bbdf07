package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"golang.org/x/oauth2"

	"bizlens/internal/config"
	"bizlens/internal/models"
)

// Authentication errors.
var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// SubjectKey is the Locals key holding the authenticated subject.
const SubjectKey = "subject"

// TokenVerifier checks a raw bearer token and returns its subject.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

// OIDCVerifier verifies ID tokens issued by an OIDC provider. With the
// userinfo fallback enabled, opaque access tokens are checked against the
// provider's userinfo endpoint instead.
type OIDCVerifier struct {
	provider         *oidc.Provider
	verifier         *oidc.IDTokenVerifier
	userInfoFallback bool
}

// NewOIDCVerifier discovers the provider configured in cfg.
func NewOIDCVerifier(ctx context.Context, cfg *config.Config) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &OIDCVerifier{
		provider:         provider,
		verifier:         provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		userInfoFallback: cfg.OIDCUserInfoFallback,
	}, nil
}

// Verify returns the subject of a valid token.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err == nil {
		return idToken.Subject, nil
	}
	if !v.userInfoFallback {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	info, uerr := v.provider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: rawToken}))
	if uerr != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, uerr)
	}
	return info.Subject, nil
}

// AuthMiddleware guards the analysis API with bearer tokens.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware instance. A nil verifier
// disables authentication.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if m.verifier == nil {
		return c.Next()
	}

	raw, err := BearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return unauthorized(c, err)
	}

	subject, err := m.verifier.Verify(c.Context(), raw)
	if err != nil {
		slog.Debug("bearer token rejected", "path", c.Path(), "error", err)
		return unauthorized(c, ErrInvalidToken)
	}

	c.Locals(SubjectKey, subject)
	return c.Next()
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

func unauthorized(c fiber.Ctx, err error) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="bizlens"`)
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
		Status: models.StatusError,
		Error:  err.Error(),
	})
}
