// Package mem implements the 6502's address space: a single flat bank of
// 64 KiB, with no mirroring or memory-mapped peripherals.
package mem

import (
	"fmt"
	"strconv"
	"strings"
)

const size = 1 << 16 // 64 KiB, the full range a 16-bit address can reach

// Memory is the physical byte-addressable space a Chip executes against. The
// zero value is 65536 zeroed bytes, ready to use.
type Memory struct {
	data [size]byte
}

// Read returns the byte stored at addr.
func (m *Memory) Read(addr uint16) byte {
	return m.data[addr]
}

// Write stores v at addr.
func (m *Memory) Write(addr uint16, v byte) {
	m.data[addr] = v
}

// ReadWord reads a 16-bit little-endian value from addr and addr+1 (with
// 16-bit wraparound on the second read, matching how the 6502 itself reads
// multi-byte operands and vectors).
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores v at addr and addr+1, low byte first.
func (m *Memory) WriteWord(addr uint16, v uint16) {
	m.Write(addr, byte(v))
	m.Write(addr+1, byte(v>>8))
}

// Reset zeroes every byte of memory.
func (m *Memory) Reset() {
	m.data = [size]byte{}
}

// LoadHex parses a whitespace-separated string of hex byte pairs (e.g. "A9
// 0A 8D 00 02") and writes the decoded bytes starting at addr. It is meant
// for loading short test programs and fixtures, not for general-purpose
// binary loading.
func (m *Memory) LoadHex(program string, addr uint16) error {
	fields := strings.Fields(program)
	if int(addr)+len(fields) > size {
		return fmt.Errorf("mem: %d-byte program does not fit at %#04x", len(fields), addr)
	}
	for i, f := range fields {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return fmt.Errorf("mem: invalid byte %q: %w", f, err)
		}
		m.data[int(addr)+i] = byte(b)
	}
	return nil
}

// Load copies program into memory starting at addr.
func (m *Memory) Load(program []byte, addr uint16) error {
	if int(addr)+len(program) > size {
		return fmt.Errorf("mem: %d-byte program does not fit at %#04x", len(program), addr)
	}
	copy(m.data[addr:], program)
	return nil
}
