package cpu

// An Entry is one row of the decode table: the addressing-mode handler that
// prepares an operand, the instruction handler that consumes it, and the
// base cycle cost charged before either handler's extra-cycle bits are
// folded in.
type Entry struct {
	AddressingMode func(*Chip) byte
	Instruction    func(*Chip) byte
	Cycles         byte
	Name           string // mnemonic, used only for debugging/tests
}

// decodeTable maps every possible opcode byte to its Entry. The 151
// documented encodings are listed explicitly below; every other slot is
// patched by init to the {xxx, imp, 0} sentinel.
var decodeTable = [256]Entry{
	0x69: {Name: "ADC", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).ADC},
	0x65: {Name: "ADC", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).ADC},
	0x75: {Name: "ADC", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).ADC},
	0x6D: {Name: "ADC", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).ADC},
	0x7D: {Name: "ADC", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).ADC},
	0x79: {Name: "ADC", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).ADC},
	0x61: {Name: "ADC", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).ADC},
	0x71: {Name: "ADC", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).ADC},

	0x29: {Name: "AND", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).AND},
	0x25: {Name: "AND", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).AND},
	0x35: {Name: "AND", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).AND},
	0x2D: {Name: "AND", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).AND},
	0x3D: {Name: "AND", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).AND},
	0x39: {Name: "AND", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).AND},
	0x21: {Name: "AND", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).AND},
	0x31: {Name: "AND", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).AND},

	0x0A: {Name: "ASL", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).ASL},
	0x06: {Name: "ASL", Cycles: 5, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).ASL},
	0x16: {Name: "ASL", Cycles: 6, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).ASL},
	0x0E: {Name: "ASL", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).ASL},
	0x1E: {Name: "ASL", Cycles: 7, AddressingMode: (*Chip).amABX, Instruction: (*Chip).ASL},

	0x24: {Name: "BIT", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).BIT},
	0x2C: {Name: "BIT", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).BIT},

	0x10: {Name: "BPL", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BPL},
	0x30: {Name: "BMI", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BMI},
	0x50: {Name: "BVC", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BVC},
	0x70: {Name: "BVS", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BVS},
	0x90: {Name: "BCC", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BCC},
	0xB0: {Name: "BCS", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BCS},
	0xD0: {Name: "BNE", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BNE},
	0xF0: {Name: "BEQ", Cycles: 2, AddressingMode: (*Chip).amREL, Instruction: (*Chip).BEQ},

	0x00: {Name: "BRK", Cycles: 7, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).BRK},

	0xC9: {Name: "CMP", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).CMP},
	0xC5: {Name: "CMP", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).CMP},
	0xD5: {Name: "CMP", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).CMP},
	0xCD: {Name: "CMP", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).CMP},
	0xDD: {Name: "CMP", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).CMP},
	0xD9: {Name: "CMP", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).CMP},
	0xC1: {Name: "CMP", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).CMP},
	0xD1: {Name: "CMP", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).CMP},

	0xE0: {Name: "CPX", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).CPX},
	0xE4: {Name: "CPX", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).CPX},
	0xEC: {Name: "CPX", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).CPX},

	0xC0: {Name: "CPY", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).CPY},
	0xC4: {Name: "CPY", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).CPY},
	0xCC: {Name: "CPY", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).CPY},

	0xC6: {Name: "DEC", Cycles: 5, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).DEC},
	0xD6: {Name: "DEC", Cycles: 6, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).DEC},
	0xCE: {Name: "DEC", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).DEC},
	0xDE: {Name: "DEC", Cycles: 7, AddressingMode: (*Chip).amABX, Instruction: (*Chip).DEC},

	0x49: {Name: "EOR", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).EOR},
	0x45: {Name: "EOR", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).EOR},
	0x55: {Name: "EOR", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).EOR},
	0x4D: {Name: "EOR", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).EOR},
	0x5D: {Name: "EOR", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).EOR},
	0x59: {Name: "EOR", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).EOR},
	0x41: {Name: "EOR", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).EOR},
	0x51: {Name: "EOR", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).EOR},

	0x18: {Name: "CLC", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).CLC},
	0x38: {Name: "SEC", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).SEC},
	0x58: {Name: "CLI", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).CLI},
	0x78: {Name: "SEI", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).SEI},
	0xB8: {Name: "CLV", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).CLV},
	0xD8: {Name: "CLD", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).CLD},
	0xF8: {Name: "SED", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).SED},

	0xE6: {Name: "INC", Cycles: 5, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).INC},
	0xF6: {Name: "INC", Cycles: 6, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).INC},
	0xEE: {Name: "INC", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).INC},
	0xFE: {Name: "INC", Cycles: 7, AddressingMode: (*Chip).amABX, Instruction: (*Chip).INC},

	0xAA: {Name: "TAX", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).TAX},
	0x8A: {Name: "TXA", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).TXA},
	0xCA: {Name: "DEX", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).DEX},
	0xE8: {Name: "INX", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).INX},
	0xA8: {Name: "TAY", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).TAY},
	0x98: {Name: "TYA", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).TYA},
	0x88: {Name: "DEY", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).DEY},
	0xC8: {Name: "INY", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).INY},

	0x4C: {Name: "JMP", Cycles: 3, AddressingMode: (*Chip).amABS, Instruction: (*Chip).JMP},
	0x6C: {Name: "JMP", Cycles: 5, AddressingMode: (*Chip).amIND, Instruction: (*Chip).JMP},
	0x20: {Name: "JSR", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).JSR},

	0xA9: {Name: "LDA", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).LDA},
	0xA5: {Name: "LDA", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).LDA},
	0xB5: {Name: "LDA", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).LDA},
	0xAD: {Name: "LDA", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).LDA},
	0xBD: {Name: "LDA", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).LDA},
	0xB9: {Name: "LDA", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).LDA},
	0xA1: {Name: "LDA", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).LDA},
	0xB1: {Name: "LDA", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).LDA},

	0xA2: {Name: "LDX", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).LDX},
	0xA6: {Name: "LDX", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).LDX},
	0xB6: {Name: "LDX", Cycles: 4, AddressingMode: (*Chip).amZPY, Instruction: (*Chip).LDX},
	0xAE: {Name: "LDX", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).LDX},
	0xBE: {Name: "LDX", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).LDX},

	0xA0: {Name: "LDY", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).LDY},
	0xA4: {Name: "LDY", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).LDY},
	0xB4: {Name: "LDY", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).LDY},
	0xAC: {Name: "LDY", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).LDY},
	0xBC: {Name: "LDY", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).LDY},

	0x4A: {Name: "LSR", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).LSR},
	0x46: {Name: "LSR", Cycles: 5, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).LSR},
	0x56: {Name: "LSR", Cycles: 6, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).LSR},
	0x4E: {Name: "LSR", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).LSR},
	0x5E: {Name: "LSR", Cycles: 7, AddressingMode: (*Chip).amABX, Instruction: (*Chip).LSR},

	0xEA: {Name: "NOP", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).NOP},

	0x09: {Name: "ORA", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).ORA},
	0x05: {Name: "ORA", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).ORA},
	0x15: {Name: "ORA", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).ORA},
	0x0D: {Name: "ORA", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).ORA},
	0x1D: {Name: "ORA", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).ORA},
	0x19: {Name: "ORA", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).ORA},
	0x01: {Name: "ORA", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).ORA},
	0x11: {Name: "ORA", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).ORA},

	0x9A: {Name: "TXS", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).TXS},
	0xBA: {Name: "TSX", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).TSX},
	0x48: {Name: "PHA", Cycles: 3, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).PHA},
	0x68: {Name: "PLA", Cycles: 4, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).PLA},
	0x08: {Name: "PHP", Cycles: 3, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).PHP},
	0x28: {Name: "PLP", Cycles: 4, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).PLP},

	0x2A: {Name: "ROL", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).ROL},
	0x26: {Name: "ROL", Cycles: 5, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).ROL},
	0x36: {Name: "ROL", Cycles: 6, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).ROL},
	0x2E: {Name: "ROL", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).ROL},
	0x3E: {Name: "ROL", Cycles: 7, AddressingMode: (*Chip).amABX, Instruction: (*Chip).ROL},

	0x6A: {Name: "ROR", Cycles: 2, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).ROR},
	0x66: {Name: "ROR", Cycles: 5, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).ROR},
	0x76: {Name: "ROR", Cycles: 6, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).ROR},
	0x6E: {Name: "ROR", Cycles: 6, AddressingMode: (*Chip).amABS, Instruction: (*Chip).ROR},
	0x7E: {Name: "ROR", Cycles: 7, AddressingMode: (*Chip).amABX, Instruction: (*Chip).ROR},

	0x40: {Name: "RTI", Cycles: 6, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).RTI},
	0x60: {Name: "RTS", Cycles: 6, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).RTS},

	0xE9: {Name: "SBC", Cycles: 2, AddressingMode: (*Chip).amIMM, Instruction: (*Chip).SBC},
	0xE5: {Name: "SBC", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).SBC},
	0xF5: {Name: "SBC", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).SBC},
	0xED: {Name: "SBC", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).SBC},
	0xFD: {Name: "SBC", Cycles: 4, AddressingMode: (*Chip).amABX, Instruction: (*Chip).SBC},
	0xF9: {Name: "SBC", Cycles: 4, AddressingMode: (*Chip).amABY, Instruction: (*Chip).SBC},
	0xE1: {Name: "SBC", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).SBC},
	0xF1: {Name: "SBC", Cycles: 5, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).SBC},

	0x85: {Name: "STA", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).STA},
	0x95: {Name: "STA", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).STA},
	0x8D: {Name: "STA", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).STA},
	0x9D: {Name: "STA", Cycles: 5, AddressingMode: (*Chip).amABX, Instruction: (*Chip).STA},
	0x99: {Name: "STA", Cycles: 5, AddressingMode: (*Chip).amABY, Instruction: (*Chip).STA},
	0x81: {Name: "STA", Cycles: 6, AddressingMode: (*Chip).amXID, Instruction: (*Chip).STA},
	0x91: {Name: "STA", Cycles: 6, AddressingMode: (*Chip).amIDY, Instruction: (*Chip).STA},

	0x86: {Name: "STX", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).STX},
	0x96: {Name: "STX", Cycles: 4, AddressingMode: (*Chip).amZPY, Instruction: (*Chip).STX},
	0x8E: {Name: "STX", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).STX},

	0x84: {Name: "STY", Cycles: 3, AddressingMode: (*Chip).amZPG, Instruction: (*Chip).STY},
	0x94: {Name: "STY", Cycles: 4, AddressingMode: (*Chip).amZPX, Instruction: (*Chip).STY},
	0x8C: {Name: "STY", Cycles: 4, AddressingMode: (*Chip).amABS, Instruction: (*Chip).STY},
}

func init() {
	for i := range decodeTable {
		if decodeTable[i].Instruction == nil {
			decodeTable[i] = Entry{Name: "XXX", Cycles: 0, AddressingMode: (*Chip).amIMP, Instruction: (*Chip).xxx}
		}
	}
}
