package ui

// nodeStore tracks slot generations and free slots. Slot ids start at 1 so
// the zero NodeID never names a live node.
type nodeStore struct {
	nextID int
	gen    []int
	free   []int
}

func (s *nodeStore) create() NodeID {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gen = append(s.gen, 0)
	}
	return NodeID{id: id, gen: s.gen[id-1]}
}

func (s *nodeStore) destroy(n NodeID) bool {
	if !s.isAlive(n) {
		return false
	}
	s.gen[n.id-1]++
	s.free = append(s.free, n.id)
	return true
}

func (s *nodeStore) isAlive(n NodeID) bool {
	if n.id <= 0 || n.id > len(s.gen) {
		return false
	}
	return s.gen[n.id-1] == n.gen
}
