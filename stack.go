package ofxstream

import (
	"encoding/xml"
	"errors"
)

// TagStack is a stack of open element names.
type TagStack interface {
	Push(xml.Name)
	Pop() (xml.Name, error)
	Peek() (xml.Name, bool)
	Contains(xml.Name) bool
	IsEmpty() bool
	Size() int
	Dump() []string
}

// stack is a slice backed TagStack.
type stack struct {
	items []xml.Name
}

// NewStack returns an initialized empty stack.
func NewStack() TagStack {
	return &stack{
		items: make([]xml.Name, 0, 16),
	}
}

// Push adds the given name to top of stack.
func (s *stack) Push(n xml.Name) {
	s.items = append(s.items, n)
}

// Pop removes and returns the topmost name of the stack.
func (s *stack) Pop() (xml.Name, error) {
	l := len(s.items)
	if l == 0 {
		return xml.Name{}, errors.New("error - popping from empty stack")
	}
	n := s.items[l-1]
	s.items = s.items[:l-1]
	return n, nil
}

// Peek returns the topmost name without removing it.
func (s *stack) Peek() (xml.Name, bool) {
	if len(s.items) == 0 {
		return xml.Name{}, false
	}
	return s.items[len(s.items)-1], true
}

// Contains returns true if an element with the given local name is open.
func (s *stack) Contains(n xml.Name) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Local == n.Local {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the stack is empty, else false.
func (s *stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the current size of the stack.
func (s *stack) Size() int {
	return len(s.items)
}

// Dump returns the open names from outermost to innermost, for debugging.
func (s *stack) Dump() []string {
	result := make([]string, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item.Local)
	}
	return result
}
