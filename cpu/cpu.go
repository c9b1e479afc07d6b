// Package cpu implements the MOS Technology 6502 microprocessor: register
// file, 64 KiB address space, the 256-entry opcode decode table, and the
// addressing-mode and instruction handlers that back it.
package cpu

import (
	"fmt"

	"mos6502/mask"
	"mos6502/mem"
)

// Status register bit layout (bit 5 is wired high and always reads back as
// 1; it has no architectural meaning).
//
//	7 6 5 4 3 2 1 0
//	N V 1 B D I Z C
const (
	FlagCarry            byte = 1 << 0
	FlagZero             byte = 1 << 1
	FlagInterruptDisable byte = 1 << 2
	FlagDecimal          byte = 1 << 3
	FlagBreak            byte = 1 << 4
	FlagUnused           byte = 1 << 5
	FlagOverflow         byte = 1 << 6
	FlagNegative         byte = 1 << 7
)

// Stack occupies page 1, $0100-$01FF; sp is the low byte of the stack
// pointer's address within it.
const stackPage uint16 = 0x0100

// Chip is the architectural state of a 6502: registers, flags, the
// instruction-in-flight scratch fields, cycle accounting, and the memory it
// executes against.
type Chip struct {
	Mem mem.Memory

	PC uint16 // program counter
	SP byte   // stack pointer, within page 1
	A  byte   // accumulator
	X  byte   // index register X
	Y  byte   // index register Y
	SR byte   // status register (NV1BDIZC)

	// Scratch fields, meaningful only between an addressing-mode handler
	// and the instruction handler it feeds.
	Opcode  byte
	AddrAbs uint16
	AddrRel uint16
	Fetched byte

	CyclesRemaining byte   // cycles still owed for the in-flight instruction
	GlobalClock     uint64 // count of Step invocations since construction

	// isImplied records whether the instruction currently executing used
	// the imp addressing mode, so fetch and the shift/rotate instructions
	// know whether to target the accumulator or mem[AddrAbs].
	isImplied bool
}

// New returns a Chip with registers initialized per the 6502 reset state
// (sp=$FF, sr with only the unused bit set) and memory zeroed. pc is set to
// start, bypassing the $FFFC/$FFFD reset vector lookup a physical CPU would
// perform — callers that want vector-driven startup can write the vector
// bytes themselves and call Reset.
func New(start uint16) *Chip {
	c := &Chip{
		SP: 0xFF,
		SR: FlagUnused,
		PC: start,
	}
	return c
}

// Reset restores register state to the post-reset values and loads PC from
// the reset vector at $FFFC/$FFFD, leaving memory contents untouched. It
// does not touch the stack (a real 6502 nudges sp down by 3 without writing
// to it, since RESET's bus cycles are read-only; modeling that nudge is not
// required since nothing observes it on a freshly constructed Chip).
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.SR = FlagUnused
	c.CyclesRemaining = 0
	c.PC = c.Mem.ReadWord(0xFFFC)
}

func (c *Chip) getFlag(f byte) bool { return c.SR&f != 0 }

func (c *Chip) setFlag(f byte, v bool) {
	if v {
		c.SR |= f
	} else {
		c.SR &^= f
	}
}

func (c *Chip) setZN(v byte) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func (c *Chip) push(v byte) {
	c.Mem.Write(stackPage+uint16(c.SP), v)
	c.SP--
}

func (c *Chip) pop() byte {
	c.SP++
	return c.Mem.Read(stackPage + uint16(c.SP))
}

func (c *Chip) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Chip) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}

// fetch loads Fetched from mem[AddrAbs], unless the instruction's
// addressing mode is imp, in which case Fetched already holds the
// accumulator and AddrAbs is not a real address.
func (c *Chip) fetch() {
	if !c.isImplied {
		c.Fetched = c.Mem.Read(c.AddrAbs)
	}
}

// writeResult stores a computed 8-bit result either to the accumulator or
// to mem[AddrAbs], depending on whether the current instruction addresses
// the accumulator. ASL, LSR, ROL and ROR share this target selection.
func (c *Chip) writeResult(v byte) {
	if c.isImplied {
		c.A = v
	} else {
		c.Mem.Write(c.AddrAbs, v)
	}
}

// Step advances the clock by exactly one machine cycle. When CyclesRemaining
// is zero it fetches the next opcode, dispatches through the decode table,
// and charges the instruction's full cycle count (base plus any page-cross
// penalty); either way, the cycle this call represents is then spent,
// decrementing CyclesRemaining once. A fresh instruction's dispatch cycle is
// itself the first of its charged cycles, so the total number of Step calls
// an instruction consumes equals its decode-table cycle count exactly — with
// one exception: the undocumented-opcode sentinel charges zero base cycles,
// and a zero-cycle slot is considered drained the instant it's dispatched,
// so it does not consume a second Step call to decrement back down.
func (c *Chip) Step() {
	c.GlobalClock++

	if c.CyclesRemaining == 0 {
		c.Opcode = c.Mem.Read(c.PC)
		c.PC++

		entry := decodeTable[c.Opcode]
		c.CyclesRemaining = entry.Cycles

		pageCross := entry.AddressingMode(c)
		mayTakeExtra := entry.Instruction(c)
		c.CyclesRemaining += pageCross & mayTakeExtra
	}

	if c.CyclesRemaining > 0 {
		c.CyclesRemaining--
	}
}

// String renders pc, a, x, y and sp in hex, and the status register as an
// NV1BDIZC letter row with each clear bit shown as a dash. It exists for test failure output
// and ad-hoc debugging, not for any persisted format.
func (c *Chip) String() string {
	flags := [8]struct {
		bit    byte
		letter byte
	}{
		{FlagNegative, 'N'},
		{FlagOverflow, 'V'},
		{FlagUnused, '1'},
		{FlagBreak, 'B'},
		{FlagDecimal, 'D'},
		{FlagInterruptDisable, 'I'},
		{FlagZero, 'Z'},
		{FlagCarry, 'C'},
	}
	var sr [8]byte
	for i, f := range flags {
		if mask.IsSet(c.SR, mask.Index(i+1)) {
			sr[i] = f.letter
		} else {
			sr[i] = '-'
		}
	}
	return fmt.Sprintf("pc=%04X a=%02X x=%02X y=%02X sp=%02X sr=%s", c.PC, c.A, c.X, c.Y, c.SP, sr)
}
