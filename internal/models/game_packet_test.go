package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGamePacket_OwnedBy(t *testing.T) {
	packet := &GamePacket{ID: 1, UserID: 10}

	assert.True(t, packet.OwnedBy(10))
	assert.False(t, packet.OwnedBy(11))
	assert.False(t, packet.OwnedBy(0))

	var missing *GamePacket
	assert.False(t, missing.OwnedBy(10))
}
