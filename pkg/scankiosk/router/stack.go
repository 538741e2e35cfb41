package router

// StackEntry is one screen waiting to be returned to: the screen, the input
// it was shown with, and the resume state it handed back when it was left.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack is the back-navigation history.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records screen before navigating forward from it.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil when the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopTo unwinds the stack to the most recent entry for screen and returns it.
// Everything above it is discarded. When screen is not on the stack the stack
// is left untouched and nil is returned.
func (s *Stack) PopTo(screen Screen) *StackEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen == screen {
			entry := s.entries[i]
			s.entries = s.entries[:i]
			return &entry
		}
	}
	return nil
}

// Peek returns the top entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
