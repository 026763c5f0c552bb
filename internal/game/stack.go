package game

import "iter"

// Stack is an ordered set of screens. The last screen is the top.
type Stack struct {
	screens []Screen
}

// Push adds s on top.
func (s *Stack) Push(sc Screen) {
	s.screens = append(s.screens, sc)
}

// Pop removes and returns the top screen. Popping an empty stack is a bug and panics.
func (s *Stack) Pop() Screen {
	n := len(s.screens)
	if n == 0 {
		panic("game: pop from empty screen stack")
	}
	top := s.screens[n-1]
	s.screens[n-1] = nil
	s.screens = s.screens[:n-1]
	return top
}

// Top returns the screen that receives input. It panics on an empty stack.
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		panic("game: top of empty screen stack")
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens.
func (s *Stack) Len() int {
	return len(s.screens)
}

// At returns the screen at depth i, 0 being the bottom.
func (s *Stack) At(i int) Screen {
	return s.screens[i]
}

// Clear removes every screen.
func (s *Stack) Clear() {
	clear(s.screens)
	s.screens = s.screens[:0]
}

// All yields screens bottom to top.
func (s *Stack) All() iter.Seq2[int, Screen] {
	return func(yield func(int, Screen) bool) {
		for i, sc := range s.screens {
			if !yield(i, sc) {
				return
			}
		}
	}
}
