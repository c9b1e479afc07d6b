package cpu

import "mos6502/mask"

// Addressing-mode handlers compute the effective address (or implied
// operand) for the instruction about to run, advance PC past any operand
// bytes, and report whether the address computation crossed a page
// boundary. Each is named after its 6502 reference-manual mnemonic.

// amIMP handles both implied operands and the accumulator addressing mode:
// there is no operand byte to read, and the accumulator is pre-loaded into
// Fetched for instructions (ASL, LSR, ROL, ROR) that might operate on it.
func (c *Chip) amIMP() byte {
	c.isImplied = true
	c.Fetched = c.A
	return 0
}

func (c *Chip) amIMM() byte {
	c.isImplied = false
	c.AddrAbs = c.PC
	c.PC++
	return 0
}

func (c *Chip) amZPG() byte {
	c.isImplied = false
	c.AddrAbs = uint16(c.Mem.Read(c.PC))
	c.PC++
	c.AddrAbs &= 0x00FF
	return 0
}

func (c *Chip) amZPX() byte {
	c.isImplied = false
	c.AddrAbs = uint16(c.Mem.Read(c.PC) + c.X)
	c.PC++
	c.AddrAbs &= 0x00FF
	return 0
}

func (c *Chip) amZPY() byte {
	c.isImplied = false
	c.AddrAbs = uint16(c.Mem.Read(c.PC) + c.Y)
	c.PC++
	c.AddrAbs &= 0x00FF
	return 0
}

// amREL reads the signed branch displacement and sign-extends it into
// AddrRel. The branch instruction itself computes the destination address
// and any cycle penalty; this handler never touches PC beyond the operand
// byte, and never crosses a page on its own.
func (c *Chip) amREL() byte {
	c.isImplied = false
	offset := c.Mem.Read(c.PC)
	c.PC++
	c.AddrRel = uint16(offset)
	if offset&0x80 != 0 {
		c.AddrRel |= 0xFF00
	}
	return 0
}

func (c *Chip) amABS() byte {
	c.isImplied = false
	lo := c.Mem.Read(c.PC)
	c.PC++
	hi := c.Mem.Read(c.PC)
	c.PC++
	c.AddrAbs = mask.Word(hi, lo)
	return 0
}

func (c *Chip) amABX() byte {
	c.isImplied = false
	lo := c.Mem.Read(c.PC)
	c.PC++
	hi := c.Mem.Read(c.PC)
	c.PC++
	base := mask.Word(hi, lo)
	c.AddrAbs = base + uint16(c.X)
	if c.AddrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

func (c *Chip) amABY() byte {
	c.isImplied = false
	lo := c.Mem.Read(c.PC)
	c.PC++
	hi := c.Mem.Read(c.PC)
	c.PC++
	base := mask.Word(hi, lo)
	c.AddrAbs = base + uint16(c.Y)
	if c.AddrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// amIND implements JMP's indirect addressing, including the classic
// hardware bug: when the pointer's low byte is $FF, the high byte of the
// effective address is re-read from the start of the same page instead of
// crossing into the next one.
func (c *Chip) amIND() byte {
	c.isImplied = false
	ptrLo := c.Mem.Read(c.PC)
	c.PC++
	ptrHi := c.Mem.Read(c.PC)
	c.PC++
	ptr := mask.Word(ptrHi, ptrLo)

	lo := c.Mem.Read(ptr)
	var hi byte
	if ptrLo == 0xFF {
		hi = c.Mem.Read(ptr & 0xFF00)
	} else {
		hi = c.Mem.Read(ptr + 1)
	}
	c.AddrAbs = mask.Word(hi, lo)
	return 0
}

// amXID is indexed indirect, (zp,X): the zero-page pointer is indexed by X
// before dereferencing, and both bytes of the pointer wrap within the zero
// page. Never crosses a page.
func (c *Chip) amXID() byte {
	c.isImplied = false
	operand := c.Mem.Read(c.PC)
	c.PC++
	ptr := uint16(operand+c.X) & 0x00FF
	lo := c.Mem.Read(ptr)
	hi := c.Mem.Read((ptr + 1) & 0x00FF)
	c.AddrAbs = mask.Word(hi, lo)
	return 0
}

// amIDY is indirect indexed, (zp),Y: the zero-page pointer is dereferenced
// first, then Y is added to the resulting address, so a page cross is
// possible and must be reported.
func (c *Chip) amIDY() byte {
	c.isImplied = false
	operand := c.Mem.Read(c.PC)
	c.PC++
	ptr := uint16(operand)
	lo := c.Mem.Read(ptr & 0x00FF)
	hi := c.Mem.Read((ptr + 1) & 0x00FF)
	base := mask.Word(hi, lo)
	c.AddrAbs = base + uint16(c.Y)
	if c.AddrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}
