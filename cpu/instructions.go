package cpu

// Instruction handlers consume the operand an addressing-mode handler
// already prepared (via Fetched or AddrAbs), perform the operation, update
// flags, and report whether they belong to the class of instructions that
// can take an extra cycle on a page-crossing addressing mode. Reference:
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// ADC - Add with Carry
func (c *Chip) ADC() byte {
	c.fetch()
	t := uint16(c.A) + uint16(c.Fetched) + carryIn(c)
	c.setFlag(FlagCarry, t > 0xFF)
	result := byte(t)
	c.setFlag(FlagOverflow, ((uint16(c.A)^t)&(uint16(c.Fetched)^t)&0x0080) != 0)
	c.A = result
	c.setZN(c.A)
	return 1
}

// SBC - Subtract with Carry. Implemented as ADC against the one's
// complement of the operand, which folds borrow into the same carry-based
// arithmetic and reuses the identical overflow formula.
func (c *Chip) SBC() byte {
	c.fetch()
	inverted := c.Fetched ^ 0xFF
	t := uint16(c.A) + uint16(inverted) + carryIn(c)
	c.setFlag(FlagCarry, t > 0xFF)
	result := byte(t)
	c.setFlag(FlagOverflow, ((uint16(c.A)^t)&(uint16(inverted)^t)&0x0080) != 0)
	c.A = result
	c.setZN(c.A)
	return 1
}

func carryIn(c *Chip) uint16 {
	if c.getFlag(FlagCarry) {
		return 1
	}
	return 0
}

// AND - Logical AND
func (c *Chip) AND() byte {
	c.fetch()
	c.A &= c.Fetched
	c.setZN(c.A)
	return 1
}

// ORA - Logical Inclusive OR
func (c *Chip) ORA() byte {
	c.fetch()
	c.A |= c.Fetched
	c.setZN(c.A)
	return 1
}

// EOR - Exclusive OR
func (c *Chip) EOR() byte {
	c.fetch()
	c.A ^= c.Fetched
	c.setZN(c.A)
	return 1
}

// BIT - Bit Test
func (c *Chip) BIT() byte {
	c.fetch()
	t := c.A & c.Fetched
	c.setFlag(FlagZero, t == 0)
	c.setFlag(FlagNegative, c.Fetched&0x80 != 0)
	c.setFlag(FlagOverflow, c.Fetched&0x40 != 0)
	return 0
}

// ASL - Arithmetic Shift Left
func (c *Chip) ASL() byte {
	c.fetch()
	c.setFlag(FlagCarry, c.Fetched&0x80 != 0)
	result := c.Fetched << 1
	c.setZN(result)
	c.writeResult(result)
	return 0
}

// LSR - Logical Shift Right
func (c *Chip) LSR() byte {
	c.fetch()
	c.setFlag(FlagCarry, c.Fetched&0x01 != 0)
	result := c.Fetched >> 1
	c.setZN(result)
	c.writeResult(result)
	return 0
}

// ROL - Rotate Left
func (c *Chip) ROL() byte {
	c.fetch()
	carry := carryIn(c)
	result := (c.Fetched << 1) | byte(carry)
	c.setFlag(FlagCarry, c.Fetched&0x80 != 0)
	c.setZN(result)
	c.writeResult(result)
	return 0
}

// ROR - Rotate Right
func (c *Chip) ROR() byte {
	c.fetch()
	carry := carryIn(c)
	result := (c.Fetched >> 1) | byte(carry<<7)
	c.setFlag(FlagCarry, c.Fetched&0x01 != 0)
	c.setZN(result)
	c.writeResult(result)
	return 0
}

func (c *Chip) compare(reg byte) byte {
	c.fetch()
	t := reg - c.Fetched
	c.setFlag(FlagCarry, reg >= c.Fetched)
	c.setFlag(FlagZero, reg == c.Fetched)
	c.setFlag(FlagNegative, t&0x80 != 0)
	return 0
}

// CMP - Compare accumulator
func (c *Chip) CMP() byte { c.compare(c.A); return 1 }

// CPX - Compare X Register
func (c *Chip) CPX() byte { return c.compare(c.X) }

// CPY - Compare Y Register
func (c *Chip) CPY() byte { return c.compare(c.Y) }

// INC - Increment Memory
func (c *Chip) INC() byte {
	c.fetch()
	result := c.Fetched + 1
	c.setZN(result)
	c.writeResult(result)
	return 0
}

// DEC - Decrement Memory
func (c *Chip) DEC() byte {
	c.fetch()
	result := c.Fetched - 1
	c.setZN(result)
	c.writeResult(result)
	return 0
}

// INX - Increment X Register
func (c *Chip) INX() byte { c.X++; c.setZN(c.X); return 0 }

// INY - Increment Y Register
func (c *Chip) INY() byte { c.Y++; c.setZN(c.Y); return 0 }

// DEX - Decrement X Register
func (c *Chip) DEX() byte { c.X--; c.setZN(c.X); return 0 }

// DEY - Decrement Y Register
func (c *Chip) DEY() byte { c.Y--; c.setZN(c.Y); return 0 }

// LDA - Load Accumulator
func (c *Chip) LDA() byte { c.fetch(); c.A = c.Fetched; c.setZN(c.A); return 1 }

// LDX - Load X Register
func (c *Chip) LDX() byte { c.fetch(); c.X = c.Fetched; c.setZN(c.X); return 1 }

// LDY - Load Y Register
func (c *Chip) LDY() byte { c.fetch(); c.Y = c.Fetched; c.setZN(c.Y); return 1 }

// STA - Store Accumulator
func (c *Chip) STA() byte { c.Mem.Write(c.AddrAbs, c.A); return 0 }

// STX - Store X Register
func (c *Chip) STX() byte { c.Mem.Write(c.AddrAbs, c.X); return 0 }

// STY - Store Y Register
func (c *Chip) STY() byte { c.Mem.Write(c.AddrAbs, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func (c *Chip) TAX() byte { c.X = c.A; c.setZN(c.X); return 0 }

// TAY - Transfer Accumulator to Y
func (c *Chip) TAY() byte { c.Y = c.A; c.setZN(c.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func (c *Chip) TSX() byte { c.X = c.SP; c.setZN(c.X); return 0 }

// TXA - Transfer X to Accumulator
func (c *Chip) TXA() byte { c.A = c.X; c.setZN(c.A); return 0 }

// TYA - Transfer Y to Accumulator
func (c *Chip) TYA() byte { c.A = c.Y; c.setZN(c.A); return 0 }

// TXS - Transfer X to Stack Pointer. Unlike the other transfers, no flags
// are affected.
func (c *Chip) TXS() byte { c.SP = c.X; return 0 }

// PHA - Push Accumulator
func (c *Chip) PHA() byte { c.push(c.A); return 0 }

// PHP - Push Processor Status. B and the unused bit always push as 1,
// regardless of their live value.
func (c *Chip) PHP() byte {
	c.setFlag(FlagBreak, true)
	c.push(c.SR | FlagUnused)
	c.setFlag(FlagBreak, false)
	return 0
}

// PLA - Pull Accumulator
func (c *Chip) PLA() byte {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

// PLP - Pull Processor Status. The unused bit always reads back as 1.
func (c *Chip) PLP() byte {
	c.SR = c.pop() | FlagUnused
	return 0
}

func (c *Chip) branch(taken bool) byte {
	if taken {
		c.AddrAbs = c.PC + c.AddrRel
		c.CyclesRemaining++
		if c.AddrAbs&0xFF00 != c.PC&0xFF00 {
			c.CyclesRemaining++
		}
		c.PC = c.AddrAbs
	}
	return 0
}

// BCC - Branch if Carry Clear
func (c *Chip) BCC() byte { return c.branch(!c.getFlag(FlagCarry)) }

// BCS - Branch if Carry Set
func (c *Chip) BCS() byte { return c.branch(c.getFlag(FlagCarry)) }

// BEQ - Branch if Equal
func (c *Chip) BEQ() byte { return c.branch(c.getFlag(FlagZero)) }

// BNE - Branch if Not Equal
func (c *Chip) BNE() byte { return c.branch(!c.getFlag(FlagZero)) }

// BMI - Branch if Minus
func (c *Chip) BMI() byte { return c.branch(c.getFlag(FlagNegative)) }

// BPL - Branch if Positive
func (c *Chip) BPL() byte { return c.branch(!c.getFlag(FlagNegative)) }

// BVS - Branch if Overflow Set
func (c *Chip) BVS() byte { return c.branch(c.getFlag(FlagOverflow)) }

// BVC - Branch if Overflow Clear
func (c *Chip) BVC() byte { return c.branch(!c.getFlag(FlagOverflow)) }

// JMP - Jump
func (c *Chip) JMP() byte { c.PC = c.AddrAbs; return 0 }

// JSR - Jump to Subroutine. The pushed return address points at the last
// byte of the JSR instruction, not the byte after it, per 6502 convention;
// RTS corrects for this on return.
func (c *Chip) JSR() byte {
	c.PC--
	c.pushWord(c.PC)
	c.PC = c.AddrAbs
	return 0
}

// RTS - Return from Subroutine
func (c *Chip) RTS() byte {
	c.PC = c.popWord() + 1
	return 0
}

// BRK - Force Interrupt
func (c *Chip) BRK() byte {
	c.PC++
	c.pushWord(c.PC)
	c.setFlag(FlagBreak, true)
	c.push(c.SR | FlagUnused)
	c.setFlag(FlagBreak, false)
	c.PC = c.Mem.ReadWord(0xFFFE)
	return 0
}

// RTI - Return from Interrupt
func (c *Chip) RTI() byte {
	c.SR = c.pop() | FlagUnused
	c.PC = c.popWord()
	return 0
}

// CLC - Clear Carry Flag
func (c *Chip) CLC() byte { c.setFlag(FlagCarry, false); return 0 }

// SEC - Set Carry Flag
func (c *Chip) SEC() byte { c.setFlag(FlagCarry, true); return 0 }

// CLD - Clear Decimal Mode
func (c *Chip) CLD() byte { c.setFlag(FlagDecimal, false); return 0 }

// SED - Set Decimal Flag
func (c *Chip) SED() byte { c.setFlag(FlagDecimal, true); return 0 }

// CLI - Clear Interrupt Disable
func (c *Chip) CLI() byte { c.setFlag(FlagInterruptDisable, false); return 0 }

// SEI - Set Interrupt Disable
func (c *Chip) SEI() byte { c.setFlag(FlagInterruptDisable, true); return 0 }

// CLV - Clear Overflow Flag
func (c *Chip) CLV() byte { c.setFlag(FlagOverflow, false); return 0 }

// NOP - No Operation
func (c *Chip) NOP() byte { return 0 }

// xxx handles every opcode byte outside the 151 documented encodings. It
// behaves exactly like NOP; the decode table gives it zero base cycles.
func (c *Chip) xxx() byte { return 0 }
