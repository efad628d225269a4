package helper

import (
	"strings"

	"github.com/google/uuid"
)

// Public code prefixes, shown to customers and used for lookups.
const (
	BookingCodePrefix  = "BKG"
	EventCodePrefix    = "EVT"
	PreOrderCodePrefix = "PRE"
)

// NewPublicCode builds a short human-readable code like "BKG-3F0A91C2".
func NewPublicCode(prefix string) string {
	fragment := strings.ToUpper(uuid.New().String()[:8])
	return prefix + "-" + fragment
}
