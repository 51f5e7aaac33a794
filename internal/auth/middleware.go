package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/chitsa/order-service/internal/logger"
)

// subjectKey is the gin context key holding the authenticated subject.
const subjectKey = "authSubject"

// Verifier validates bearer tokens issued by a single trusted issuer and
// exposes the token subject to handlers.
type Verifier struct {
	issuer string
	keys   *jwksCache
}

func NewVerifier(issuer string) *Verifier {
	return &Verifier{
		issuer: issuer,
		keys:   newJWKSCache(issuer),
	}
}

// Middleware rejects requests without a valid RS256 bearer token carrying a
// subject claim, and stores the subject in the request context.
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.Request)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token not provided"})
			return
		}

		token, err := jwt.Parse(raw, v.keyFunc,
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithIssuer(v.issuer),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			logger.L().Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid bearer token"})
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// Subject returns the authenticated subject set by Middleware, or "".
func Subject(c *gin.Context) string {
	v, ok := c.Get(subjectKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// SetSubject injects a subject directly; handler tests use it in place of
// the full middleware.
func SetSubject(c *gin.Context, subject string) {
	c.Set(subjectKey, subject)
}

func (v *Verifier) keyFunc(t *jwt.Token) (interface{}, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token missing kid header")
	}
	return v.keys.get(kid)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
