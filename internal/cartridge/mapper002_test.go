package cartridge

import "testing"

// Test Mapper 2 (UxROM) specific behavior: switchable 16KB window at
// 0x8000-0xBFFF, fixed last bank at 0xC000-0xFFFF, low-nibble bank select.

func newTestMapper002(prgBanks int) (*Cartridge, *Mapper002) {
	cart := &Cartridge{
		prgROM: make([]uint8, prgBanks*0x4000),
		mirror: MirrorHorizontal,
	}
	for bank := 0; bank < prgBanks; bank++ {
		for i := 0; i < 0x4000; i++ {
			cart.prgROM[bank*0x4000+i] = uint8(bank)
		}
	}
	mapper := NewMapper002(cart)
	cart.mapper = mapper
	return cart, mapper
}

func TestMapper002_FixedLastBank(t *testing.T) {
	_, mapper := newTestMapper002(4)

	value := mapper.ReadPRG(0xC000)
	if value != 3 {
		t.Errorf("fixed bank at 0xC000 = %d, want 3 (last of 4 banks)", value)
	}
}

func TestMapper002_BankSelectSwitchesWindow(t *testing.T) {
	_, mapper := newTestMapper002(4)

	mapper.WritePRG(0x8000, 2)
	if got := mapper.ReadPRG(0x8000); got != 2 {
		t.Errorf("switchable bank after selecting 2 = %d, want 2", got)
	}

	mapper.WritePRG(0x8000, 0)
	if got := mapper.ReadPRG(0x8000); got != 0 {
		t.Errorf("switchable bank after selecting 0 = %d, want 0", got)
	}
}

func TestMapper002_BankSelectMasksLowNibble(t *testing.T) {
	_, mapper := newTestMapper002(4)

	// 0x12 has low nibble 0x02; hardware only wires up bits 0-3, so the
	// high bits must be ignored rather than folded in via a full modulo.
	mapper.WritePRG(0x8000, 0x12)
	if mapper.prgBank != 2 {
		t.Errorf("prgBank after writing 0x12 = %d, want 2 (low nibble only)", mapper.prgBank)
	}
}

func TestMapper002_BankSelectWrapsNibbleBeyondBankCount(t *testing.T) {
	_, mapper := newTestMapper002(3) // bank count isn't a power of two

	mapper.WritePRG(0x8000, 0x04) // nibble 4 is out of range for 3 banks
	if mapper.prgBank != 1 {
		t.Errorf("prgBank after writing 0x04 with 3 banks = %d, want 1 (4 %% 3)", mapper.prgBank)
	}
}

func TestMapper002_SRAMReadWrite(t *testing.T) {
	_, mapper := newTestMapper002(2)

	mapper.WritePRG(0x6000, 0x99)
	if got := mapper.ReadPRG(0x6000); got != 0x99 {
		t.Errorf("SRAM read = 0x%02X, want 0x99", got)
	}
}
