package lib

import (
	"errors"
	"favour_crochet_server/structs"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// identityClaims is the token payload issued by the identity provider.
type identityClaims struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// ParseToken parses and validates an HS256 token string and returns the claims
func ParseToken(tokenStr string, secret string) (*structs.AuthClaims, error) {
	if secret == "" {
		return nil, ErrInvalidToken
	}

	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid UUID in sub claim", ErrInvalidToken)
	}

	return &structs.AuthClaims{
		Sub:       sub,
		Username:  claims.Username,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}

// SignToken issues an HS256 token for the given identity. The service itself never
// issues tokens; this exists for tooling and tests that stand in for the provider.
func SignToken(identity structs.AuthClaims, secret string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = identity.Sub.String()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identityClaims{
		Username:         identity.Username,
		Email:            identity.Email,
		FirstName:        identity.FirstName,
		LastName:         identity.LastName,
		RegisteredClaims: claims,
	})
	return token.SignedString([]byte(secret))
}

// ExtractClaims reads the access token from the Authorization header, falling back to the cookie.
func ExtractClaims(r *http.Request, cookieName, secret string) (*structs.AuthClaims, error) {
	tokenStr := BearerToken(r)
	if tokenStr == "" && cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil {
			tokenStr = cookie.Value
		}
	}
	if tokenStr == "" {
		return nil, ErrMissingToken
	}
	return ParseToken(tokenStr, secret)
}

func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
