package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	var m Memory
	m.Write(0x0200, 0xAB)
	assert.Equal(t, byte(0xAB), m.Read(0x0200))
	assert.Equal(t, byte(0), m.Read(0x0201))
}

func TestReadWriteWord(t *testing.T) {
	var m Memory
	m.WriteWord(0xFFFC, 0x8000)
	assert.Equal(t, byte(0x00), m.Read(0xFFFC))
	assert.Equal(t, byte(0x80), m.Read(0xFFFD))
	assert.Equal(t, uint16(0x8000), m.ReadWord(0xFFFC))
}

func TestLoadHex(t *testing.T) {
	var m Memory
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"
	err := m.LoadHex(program, 0x8000)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xa2), m.Read(0x8000))
	assert.Equal(t, byte(0x0a), m.Read(0x8001))
	assert.Equal(t, byte(0x8e), m.Read(0x8002))
	assert.Equal(t, byte(0xea), m.Read(0x801b))
	assert.Equal(t, byte(0), m.Read(0x801c))
}

func TestLoadHexInvalidByte(t *testing.T) {
	var m Memory
	err := m.LoadHex("A9 zz", 0x0200)
	assert.Error(t, err)
}

func TestLoadHexOverflow(t *testing.T) {
	var m Memory
	err := m.LoadHex("A9 0A", 0xFFFF)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	var m Memory
	m.Write(0x0200, 0xFF)
	m.Reset()
	assert.Equal(t, byte(0), m.Read(0x0200))
}
