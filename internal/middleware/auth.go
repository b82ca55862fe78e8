package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const userContextKey = "currentUser"

// TokenClaims are the claims issued by the external identity provider.
// Tokens are verified here but never issued; sign-in lives outside this service.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
)

// ExtractTokenFromHeader extracts the token from the Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrMissingAuthHeader
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

// ValidateToken parses and verifies an HS256 token against the shared secret.
func ValidateToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Auth verifies the bearer token and loads the user row, creating it on the
// first request for an unknown subject.
func Auth(secret string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		role := claims.Role
		if role == "" {
			role = "student"
		}
		user, err := userRepo.FindOrCreateByExternalID(claims.Subject, claims.Email, claims.Name, role)
		if err != nil {
			log.Error().Err(err).Str("subject", claims.Subject).Msg("Failed to resolve user from token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not resolve user"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin allows only admin users through. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok || user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user set by Auth.
func UserFromContext(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
