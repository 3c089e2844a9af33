package chip8

// stack is the return address stack of subroutine calls.
type stack struct {
	entries [StackDepth]uint16
	depth   int
}

func (s *stack) push(address uint16) error {
	if s.depth == StackDepth {
		return ErrStackOverflow
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

// peek returns the address that the next pop will return.
func (s *stack) peek() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	return s.entries[s.depth-1], nil
}

func (s *stack) pop() (uint16, error) {
	address, err := s.peek()
	if err != nil {
		return 0, err
	}
	s.depth--
	return address, nil
}
