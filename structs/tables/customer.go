package tables

import (
	"favour_crochet_server/structs"
	"time"

	"github.com/google/uuid"
)

// Customer is the shop profile of an authenticated identity. UserID is the token subject.
type Customer struct {
	tableName      struct{}             `bun:"table:customers,alias:cu"`
	ID             uuid.UUID            `bun:"id,pk,type:uuid" json:"id"`
	UserID         uuid.UUID            `bun:"user_id,type:uuid,notnull,unique" json:"user_id"`
	Phone          string               `bun:"phone,notnull" json:"phone"`
	Address        string               `bun:"address,notnull" json:"address"`
	City           string               `bun:"city,notnull" json:"city"`
	Country        string               `bun:"country,notnull" json:"country"`
	PostalCode     string               `bun:"postal_code,notnull" json:"postal_code"`
	DateOfBirth    *structs.Date        `bun:"date_of_birth,type:date,nullzero" json:"date_of_birth"`
	PreferredStyle structs.AfricanStyle `bun:"preferred_style,notnull" json:"preferred_style"`
	CreatedAt      time.Time            `bun:"created_at,notnull" json:"created_at"`
}

func NewCustomer(userID uuid.UUID) *Customer {
	return &Customer{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
