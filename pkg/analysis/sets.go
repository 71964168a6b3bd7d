package analysis

import "sort"

// Set is an unordered collection of entity identifiers.
type Set map[string]struct{}

// NewSet creates a set from the given values.
func NewSet(values ...string) Set {
	set := make(Set, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// Add inserts a value into the set.
func (s Set) Add(value string) {
	s[value] = struct{}{}
}

// Has reports whether the set contains the value.
func (s Set) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of elements.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the elements in ascending order.
func (s Set) Sorted() []string {
	values := make([]string, 0, len(s))
	for value := range s {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

// Union returns a new set with the elements of both a and b.
func Union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for value := range a {
		out[value] = struct{}{}
	}
	for value := range b {
		out[value] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the elements present in both a and b.
func Intersect(a, b Set) Set {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(Set)
	for value := range a {
		if b.Has(value) {
			out[value] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the elements of a that are not in b.
func Diff(a, b Set) Set {
	out := make(Set)
	for value := range a {
		if !b.Has(value) {
			out[value] = struct{}{}
		}
	}
	return out
}
