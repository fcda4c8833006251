package game

// Observer is notified when cards move. The dealer and the player call
// Update on every dealt card and on every new game. CardDealt and GameOver
// are never called by this package; presentation code calls them itself.
type Observer interface {
	Update()
	CardDealt()
	GameOver()
}

type Subject interface {
	Attach(o Observer)
	Detach(o Observer)
}

// subject keeps observers in attach order. Observers are compared with ==,
// so attach pointers.
type subject struct {
	observers []Observer
}

func (s *subject) Attach(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// Detach removes the first registration of o.
func (s *subject) Detach(o Observer) {
	for i, obs := range s.observers {
		if obs == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *subject) notify() {
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)
	for _, o := range snapshot {
		o.Update()
	}
}
