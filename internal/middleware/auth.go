package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// tokenLeeway absorbs clock drift between the login service and the till.
const tokenLeeway = 30 * time.Second

var (
	errNoCredentials  = errors.New("authorization header required")
	errBadCredentials = errors.New("authorization header format must be Bearer {token}")
	errNoCashier      = errors.New("token carries no cashier")
)

// cashierClaims are the claims of a till session token. Subject is the cashier's user ID.
type cashierClaims struct {
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token issued by the shop's login service
// and binds the cashier it names to the request. Only HS256 tokens with an
// expiry are accepted.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(tokenLeeway),
	)
	key := []byte(jwtSecret)
	keyFunc := func(*jwt.Token) (interface{}, error) { return key, nil }

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			rejectRequest(c, logger, err)
			return
		}

		var claims cashierClaims
		if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
			rejectRequest(c, logger, err)
			return
		}
		cashierID := strings.TrimSpace(claims.Subject)
		if cashierID == "" {
			rejectRequest(c, logger, errNoCashier)
			return
		}

		bindCashier(c, cashierID, logger.With(slog.String("user_id", cashierID)))
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errNoCredentials
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", errBadCredentials
	}
	return token, nil
}

// rejectRequest aborts with 401 and a message saying which check failed.
func rejectRequest(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Request not authenticated",
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()))
	c.Header("WWW-Authenticate", `Bearer realm="pos"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": rejectionMessage(err)})
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, errNoCredentials):
		return "Authorization header required"
	case errors.Is(err, errBadCredentials):
		return "Authorization header format must be Bearer {token}"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return "Token not valid yet"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "Token has no expiry"
	case errors.Is(err, errNoCashier):
		return "Token does not name a cashier"
	default:
		return "Invalid token"
	}
}
