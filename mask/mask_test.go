package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, I1))
	assert.True(t, IsSet(0b1101_1000, I2))
	assert.False(t, IsSet(0b1101_1000, I3))
	assert.True(t, IsSet(0b1101_1000, I4))
	assert.False(t, IsSet(0b1101_1000, I8))
}

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x02, 0x00), uint16(0x0200))
	assert.Equal(t, Word(0xff, 0xff), uint16(0xffff))
	assert.Equal(t, Word(0x00, 0x01), uint16(0x0001))
}
