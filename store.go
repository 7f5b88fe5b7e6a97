package pen

// Store owns the pen record of every actor, keyed by ActorID.
//
// Store is NOT safe for concurrent use. The block runtime runs one block at
// a time, which is the only access pattern pen supports.
type Store struct {
	states map[ActorID]*State
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{states: make(map[ActorID]*State)}
}

// GetOrCreate returns the record for id, installing a copy of
// DefaultState first if the actor has none.
func (s *Store) GetOrCreate(id ActorID) *State {
	if st, ok := s.states[id]; ok {
		return st
	}
	st := DefaultState()
	s.states[id] = &st
	return &st
}

// Get returns the record for id, if any.
func (s *Store) Get(id ActorID) (*State, bool) {
	st, ok := s.states[id]
	return st, ok
}

// Clone copies the source actor's record onto a newly created actor.
// It returns the copy, or nil when the source has no record.
// The copy replaces any record already stored under newID.
func (s *Store) Clone(newID, sourceID ActorID) *State {
	src, ok := s.states[sourceID]
	if !ok {
		return nil
	}
	c := src.Clone()
	s.states[newID] = c
	return c
}

// Remove deletes the record of a destroyed actor.
func (s *Store) Remove(id ActorID) {
	delete(s.states, id)
}

// Len returns the number of actors with a record.
func (s *Store) Len() int {
	return len(s.states)
}
