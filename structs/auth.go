package structs

import (
	"github.com/google/uuid"
)

// AuthClaims is the identity an upstream provider attaches to a request.
type AuthClaims struct {
	Sub       uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}
