package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTableHasNoNilHandlers(t *testing.T) {
	for i, e := range decodeTable {
		assert.NotNil(t, e.AddressingMode, "opcode %#02x missing addressing mode", i)
		assert.NotNil(t, e.Instruction, "opcode %#02x missing instruction", i)
	}
}

func TestDecodeTableDocumentsExactlyOneHundredFiftyOneOpcodes(t *testing.T) {
	documented := 0
	for _, e := range decodeTable {
		if e.Name != "XXX" {
			documented++
		}
	}
	assert.Equal(t, 151, documented)
}

func TestUndocumentedSlotsAreTheSentinel(t *testing.T) {
	e := decodeTable[0x02] // never assigned by the 6502 instruction set
	assert.Equal(t, "XXX", e.Name)
	assert.Equal(t, byte(0), e.Cycles)
}

func TestKnownOpcodeEncodings(t *testing.T) {
	cases := []struct {
		opcode byte
		name   string
		cycles byte
	}{
		{0x69, "ADC", 2},
		{0xA9, "LDA", 2},
		{0x8D, "STA", 4},
		{0x00, "BRK", 7},
		{0x20, "JSR", 6},
		{0x60, "RTS", 6},
		{0xEA, "NOP", 2},
		{0x0A, "ASL", 2}, // accumulator mode
	}
	for _, c := range cases {
		e := decodeTable[c.opcode]
		assert.Equal(t, c.name, e.Name, "opcode %#02x", c.opcode)
		assert.Equal(t, c.cycles, e.Cycles, "opcode %#02x", c.opcode)
	}
}
