package core

// RoomTable is the room store. It is only ever driven from the hub loop, so
// implementations need no internal locking. The interface exists so a
// bounded or evicting table can replace the in-memory one without touching
// the protocol handler.
type RoomTable interface {
	// GetOrCreate returns the named room, lazily creating it unresolved.
	GetOrCreate(name string) *Room
	// Lookup returns the named room without creating it.
	Lookup(name string) (*Room, bool)
	// Range visits rooms until fn returns false.
	Range(fn func(*Room) bool)
}

// MemoryTable keeps every room for the process lifetime. Growth is
// unbounded; rooms are never evicted, even when empty.
type MemoryTable struct {
	rooms map[string]*Room
}

// NewMemoryTable constructs an empty in-memory room table.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{rooms: make(map[string]*Room)}
}

func (t *MemoryTable) GetOrCreate(name string) *Room {
	if room, ok := t.rooms[name]; ok {
		return room
	}
	room := NewRoom(name)
	t.rooms[name] = room
	return room
}

func (t *MemoryTable) Lookup(name string) (*Room, bool) {
	room, ok := t.rooms[name]
	return room, ok
}

func (t *MemoryTable) Range(fn func(*Room) bool) {
	for _, room := range t.rooms {
		if !fn(room) {
			return
		}
	}
}
