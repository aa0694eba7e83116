package lib

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber generates an order number in the format FCXXXXXXXX,
// where XXXXXXXX are the first 8 hex digits of a random UUID in upper case.
func GenerateOrderNumber() string {
	id := uuid.New()
	return "FC" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
