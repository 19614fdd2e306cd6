package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/model"
	"github.com/coverly/intake/internal/repository"
)

const currentUserKey = "currentUser"

// Claims carries the authenticated user id. Token issuance lives outside
// this service; SignToken exists for tooling and tests.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func SignToken(secret string, userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

type Auth struct {
	secret string
	users  repository.UserRepository
}

func NewAuth(secret string, users repository.UserRepository) *Auth {
	return &Auth{secret: secret, users: users}
}

// Handler authenticates the bearer token and loads the acting user into the
// request context. Requests without a valid token are rejected outright.
func (a *Auth) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(a.secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		user, err := a.users.FindByID(claims.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unknown user"})
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// RequireAdmin guards the question registry routes.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil || !user.Role.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		ctx.Next()
	}
}

func CurrentUser(ctx *gin.Context) *model.User {
	value, ok := ctx.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*model.User)
	return user
}
