package aoc

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](in ...T) Set[T] {
	s := make(Set[T], len(in))
	for _, v := range in {
		s.Add(v)
	}
	return s
}

func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Intersect returns the values present in both s and o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	if len(o) < len(s) {
		s, o = o, s
	}
	out := make(Set[T])
	for v := range s {
		if o.Has(v) {
			out.Add(v)
		}
	}
	return out
}
