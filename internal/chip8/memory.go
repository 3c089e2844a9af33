package chip8

// memory is the bounds checked 4KB address space.
type memory [MemorySize]byte

// checkRange verifies that size bytes starting at address are inside memory.
func (m *memory) checkRange(address uint16, size int) error {
	if size < 0 || int(address)+size > MemorySize {
		return rangeError(address, size)
	}
	return nil
}

// read returns size bytes starting at address, the slice aliases memory.
func (m *memory) read(address uint16, size int) ([]byte, error) {
	if err := m.checkRange(address, size); err != nil {
		return nil, err
	}
	return m[address : int(address)+size], nil
}

// write copies data to memory starting at address. Nothing is written
// if the data does not fit.
func (m *memory) write(address uint16, data []byte) error {
	if err := m.checkRange(address, len(data)); err != nil {
		return err
	}
	copy(m[address:], data)
	return nil
}

// word returns the big-endian 16 bit word at address.
func (m *memory) word(address uint16) (uint16, error) {
	if err := m.checkRange(address, InstructionSize); err != nil {
		return 0, err
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}
