package cypherbuilder

// varSet is a set of variable names that remembers insertion order.
type varSet struct {
	order []string
	seen  map[string]struct{}
}

func newVarSet() *varSet {
	return &varSet{seen: make(map[string]struct{})}
}

// Add inserts name if it is not already present.
func (s *varSet) Add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *varSet) Len() int {
	return len(s.order)
}

// Values returns a copy of the names in insertion order.
func (s *varSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
