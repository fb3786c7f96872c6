package gui

// Sweeper drops entries that no widget asked for in the last maxAge frames.
type Sweeper interface {
	Sweep(frame, maxAge uint64)
}

type stored[T any] struct {
	value T
	seen  uint64 // frame of the last Get
}

// FrameStore keeps one T per widget ID across frames. Widgets fetch their
// entry every frame they are drawn and edit it in place:
//
//	edit := ctx.textEdits.Get(wd.ID, textEditState{})
//	edit.cursor++
//
// Entries live until swept; see WithStateEviction. A FrameStore belongs to
// one Context and is not safe for concurrent use.
type FrameStore[T any] struct {
	entries map[ID]*stored[T]
	frame   *uint64
}

// NewFrameStore returns a store that stamps entries with *frame. With a
// nil frame every entry looks fresh.
func NewFrameStore[T any](frame *uint64) *FrameStore[T] {
	return &FrameStore[T]{entries: make(map[ID]*stored[T]), frame: frame}
}

// Get returns the entry for id, creating it from initial on first use, and
// marks it as seen this frame.
func (s *FrameStore[T]) Get(id ID, initial T) *T {
	e, ok := s.entries[id]
	if !ok {
		e = &stored[T]{value: initial}
		s.entries[id] = e
	}
	if s.frame != nil {
		e.seen = *s.frame
	}
	return &e.value
}

// Lookup returns the entry for id, or nil. It neither creates the entry
// nor keeps it alive.
func (s *FrameStore[T]) Lookup(id ID) *T {
	if e, ok := s.entries[id]; ok {
		return &e.value
	}
	return nil
}

func (s *FrameStore[T]) Sweep(frame, maxAge uint64) {
	for id, e := range s.entries {
		if e.seen+maxAge < frame {
			delete(s.entries, id)
		}
	}
}

func (s *FrameStore[T]) Len() int { return len(s.entries) }
