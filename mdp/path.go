package mdp

import "slices"

// Path is the visited path shared by every frame of one top-level
// evaluation. A zero Path is empty and ready to use.
type Path[S comparable] struct {
	states []S
}

// NewPath returns a path seeded with the given states.
func NewPath[S comparable](seed ...S) *Path[S] {
	return &Path[S]{states: slices.Clone(seed)}
}

func (p *Path[S]) Push(s S) {
	p.states = append(p.states, s)
}

func (p *Path[S]) Contains(s S) bool {
	return slices.Contains(p.states, s)
}

// RemoveFirst deletes the first occurrence of s and reports whether one was
// found.
func (p *Path[S]) RemoveFirst(s S) bool {
	i := slices.Index(p.states, s)
	if i < 0 {
		return false
	}
	p.states = slices.Delete(p.states, i, i+1)
	return true
}

func (p *Path[S]) Len() int {
	return len(p.states)
}

// States returns a copy of the recorded states, oldest first.
func (p *Path[S]) States() []S {
	return slices.Clone(p.states)
}
