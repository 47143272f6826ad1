package cartridge

// Mapper004 implements MMC3 (mapper 4): Super Mario Bros. 2/3, Mega Man
// 3-6, and the most common mapper in the library. It has 8KB PRG
// windows, 1/2KB CHR windows, runtime-mutable mirroring, and a
// scanline-driven IRQ counter clocked by the PPU's A12 line (approximated
// here by the bus's per-scanline hook at PPU dot 260, matching the
// component design's scanline_tick contract).
type Mapper004 struct {
	cart *Cartridge

	prgROM []uint8
	chrMem []uint8
	prgRAM [0x2000]uint8

	prgBanks uint8
	chrIsRAM bool

	bankSelect uint8
	prgMode    uint8
	chrMode    uint8
	registers  [8]uint8

	mirror MirrorMode

	prgRAMEnabled      bool
	prgRAMWriteProtect bool

	irqLatch      uint8
	irqCounter    uint8
	irqEnabled    bool
	irqPending    bool
	irqReloadFlag bool
}

// NewMapper004 creates a new MMC3 mapper.
func NewMapper004(cart *Cartridge) *Mapper004 {
	m := &Mapper004{
		cart:          cart,
		prgROM:        cart.prgROM,
		prgBanks:      uint8(len(cart.prgROM) / 0x2000),
		mirror:        cart.mirror,
		prgRAMEnabled: true,
	}

	if cart.hasCHRRAM {
		m.chrMem = cart.chrROM
		m.chrIsRAM = true
	} else {
		m.chrMem = cart.chrROM
	}

	return m
}

// ReadPRG implements the four 8KB PRG windows: 0x8000-0x9FFF and
// 0xC000-0xDFFF swap which one is the "swappable" R6 bank depending on
// prgMode; 0xA000-0xBFFF is always R7; 0xE000-0xFFFF is always the last
// bank.
func (m *Mapper004) ReadPRG(address uint16) uint8 {
	switch {
	case address >= 0x6000 && address < 0x8000:
		if m.prgRAMEnabled {
			return m.prgRAM[address-0x6000]
		}
		return 0
	case address >= 0x8000 && address < 0xA000:
		var bank uint8
		if m.prgMode == 0 {
			bank = m.registers[6]
		} else {
			bank = m.prgBanks - 2
		}
		return m.prgROM[uint32(bank)*0x2000+uint32(address-0x8000)]
	case address >= 0xA000 && address < 0xC000:
		bank := m.registers[7]
		return m.prgROM[uint32(bank)*0x2000+uint32(address-0xA000)]
	case address >= 0xC000 && address < 0xE000:
		var bank uint8
		if m.prgMode == 0 {
			bank = m.prgBanks - 2
		} else {
			bank = m.registers[6]
		}
		return m.prgROM[uint32(bank)*0x2000+uint32(address-0xC000)]
	case address >= 0xE000:
		bank := m.prgBanks - 1
		return m.prgROM[uint32(bank)*0x2000+uint32(address-0xE000)]
	}
	return 0
}

// WritePRG dispatches to bank-select/bank-data, mirroring, PRG-RAM
// protect, and the four IRQ registers, all multiplexed on even/odd
// addresses within each 0x2000 window as the real hardware does.
func (m *Mapper004) WritePRG(address uint16, value uint8) {
	switch {
	case address >= 0x6000 && address < 0x8000:
		if m.prgRAMEnabled && !m.prgRAMWriteProtect {
			m.prgRAM[address-0x6000] = value
		}

	case address >= 0x8000 && address < 0xA000:
		if address&1 == 0 {
			m.bankSelect = value & 0x07
			m.prgMode = (value >> 6) & 0x01
			m.chrMode = (value >> 7) & 0x01
		} else {
			m.registers[m.bankSelect] = value
		}

	case address >= 0xA000 && address < 0xC000:
		if address&1 == 0 {
			if value&1 == 0 {
				m.mirror = MirrorVertical
			} else {
				m.mirror = MirrorHorizontal
			}
		} else {
			m.prgRAMWriteProtect = value&0x40 != 0
			m.prgRAMEnabled = value&0x80 != 0
		}

	case address >= 0xC000 && address < 0xE000:
		if address&1 == 0 {
			m.irqLatch = value
		} else {
			m.irqCounter = 0
			m.irqReloadFlag = true
		}

	case address >= 0xE000:
		if address&1 == 0 {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *Mapper004) chrOffset(address uint16) uint32 {
	var bank uint8
	var base uint16

	if m.chrMode == 0 {
		switch {
		case address < 0x0800:
			bank, base = m.registers[0]&0xFE, 0x0000
		case address < 0x1000:
			bank, base = m.registers[1]&0xFE, 0x0800
		case address < 0x1400:
			bank, base = m.registers[2], 0x1000
		case address < 0x1800:
			bank, base = m.registers[3], 0x1400
		case address < 0x1C00:
			bank, base = m.registers[4], 0x1800
		default:
			bank, base = m.registers[5], 0x1C00
		}
	} else {
		switch {
		case address < 0x0400:
			bank, base = m.registers[2], 0x0000
		case address < 0x0800:
			bank, base = m.registers[3], 0x0400
		case address < 0x0C00:
			bank, base = m.registers[4], 0x0800
		case address < 0x1000:
			bank, base = m.registers[5], 0x0C00
		case address < 0x1800:
			bank, base = m.registers[0]&0xFE, 0x1000
		default:
			bank, base = m.registers[1]&0xFE, 0x1800
		}
	}

	return uint32(bank)*0x400 + uint32(address-base)
}

// ReadCHR reads from the eight 1KB CHR windows (two of them 2KB, per
// chrMode's A12-inversion arrangement).
func (m *Mapper004) ReadCHR(address uint16) uint8 {
	offset := m.chrOffset(address)
	if int(offset) < len(m.chrMem) {
		return m.chrMem[offset]
	}
	return 0
}

// WriteCHR writes CHR-RAM only; CHR-ROM carts ignore PPU-side writes.
func (m *Mapper004) WriteCHR(address uint16, value uint8) {
	if !m.chrIsRAM {
		return
	}
	offset := m.chrOffset(address)
	if int(offset) < len(m.chrMem) {
		m.chrMem[offset] = value
	}
}

// ScanlineTick clocks the IRQ counter: reload from latch when it's zero
// or a reload was requested, otherwise decrement; assert IRQ when it
// reaches zero while enabled.
func (m *Mapper004) ScanlineTick() {
	if m.irqCounter == 0 || m.irqReloadFlag {
		m.irqCounter = m.irqLatch
		m.irqReloadFlag = false
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}

// IRQPending reports and clears the pending IRQ flag; MMC3's line
// self-acknowledges on read rather than waiting for an explicit ClearIRQ.
func (m *Mapper004) IRQPending() bool {
	pending := m.irqPending
	m.irqPending = false
	return pending
}

func (m *Mapper004) ClearIRQ()             { m.irqPending = false }
func (m *Mapper004) Mirroring() MirrorMode { return m.mirror }
