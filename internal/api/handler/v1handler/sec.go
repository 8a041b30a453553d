package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"holerite/internal/config"
	"holerite/pkg/logger"
	"holerite/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is the type of the context keys set by this package.
type CtxKey string

// SubjectKey is the context key under which the token subject is stored.
const SubjectKey CtxKey = "Subject"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with. Auth is
	// disabled when it is empty.
	PublicKey string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies RS256 bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	s := &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return s, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	s.publicKey = key

	return s, nil
}

// Enabled reports whether tokens are verified at all.
func (s *SecHandler) Enabled() bool {
	return s != nil && s.publicKey != nil
}

// HandleBearerAuth verifies token and returns ctx carrying its subject.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if !s.Enabled() {
		return ctx, nil
	}

	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, SubjectKey, claims.Subject)
	ctx = logger.WithFields(ctx, zap.String(string(SubjectKey), claims.Subject))

	return ctx, nil
}

// Authenticate reads the bearer token of r and verifies it.
func (s *SecHandler) Authenticate(r *http.Request) (context.Context, error) {
	if !s.Enabled() {
		return r.Context(), nil
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return r.Context(), serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	return s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
}

// GetSubjectFromContext returns the token subject, or "" when auth is disabled.
func GetSubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)

	return subject
}
