package gui

import (
	"fmt"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same string. Zero is never produced
// by HashID and means "no widget".
type ID uint64

// InvalidID is the sentinel used for "nothing hovered/active/focused".
const InvalidID ID = 0

// HashID hashes a caller-supplied identifier string.
// Two different strings hashing to the same ID alias each other's state;
// enable WithIDCollisionCheck to catch that during development.
func HashID(s string) ID {
	h := fnv.New64a()
	h.Write([]byte(s))
	id := ID(h.Sum64())
	if id == InvalidID {
		return 1
	}
	return id
}

// idRegistry remembers the first string seen for every ID.
type idRegistry struct {
	seen map[ID]string
}

func newIDRegistry() *idRegistry {
	return &idRegistry{seen: make(map[ID]string)}
}

func (r *idRegistry) check(id ID, s string) {
	prev, ok := r.seen[id]
	if !ok {
		r.seen[id] = s
		return
	}
	if prev != s {
		guiLogger.Error("widget id collision", "id", uint64(id), "first", prev, "second", s)
		panic(fmt.Sprintf("gui: widget id collision between %q and %q", prev, s))
	}
}

// ID hashes s and, when collision checking is enabled, records it.
func (ctx *Context) ID(s string) ID {
	id := HashID(s)
	if ctx.ids != nil {
		ctx.ids.check(id, s)
	}
	return id
}
