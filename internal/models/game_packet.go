package models

import "time"

// GamePacket is a tracked game owned by a single user.
type GamePacket struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	SteamAppID *int64    `json:"steam_app_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Notes []Note `gorm:"foreignKey:GamePacketID;constraint:OnDelete:CASCADE" json:"-"`
}

// OwnedBy is the ownership predicate checked before any mutation.
func (p *GamePacket) OwnedBy(userID uint64) bool {
	return p != nil && userID != 0 && p.UserID == userID
}
