package constants

import "time"

// Session and context keys
const (
	SessionCookieName = "game_journal_session"
	SessionTokenKey   = "token"

	ContextKeyIdentity   = "identity"
	ContextKeyGamePacket = "game_packet"
	ContextKeyNote       = "note"
)

// Credential settings
const (
	// BcryptCost keeps a single hash around 100ms on commodity hardware.
	BcryptCost = 10
	TokenTTL   = 7 * 24 * time.Hour
)

// Catalog settings
const (
	DefaultRecommendationLimit = 50
	MaxRecommendationLimit     = 100
)

// TopGameQueries are broad search terms merged into the "top games" list.
// The store search API has no trending endpoint.
var TopGameQueries = []string{"a", "e", "i", "o", "u", "s", "r"}

// UploadsURLPrefix is the public path prefix of disk-stored attachments.
const UploadsURLPrefix = "/uploads"
