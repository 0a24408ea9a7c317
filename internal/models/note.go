package models

import "time"

type Note struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	GamePacketID uint64    `gorm:"not null;index" json:"game_packet_id"`
	NoteText     string    `gorm:"type:text;not null" json:"note_text"`
	FilePath     *string   `gorm:"type:varchar(512)" json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	GamePacket GamePacket `gorm:"foreignKey:GamePacketID" json:"-"`
}
