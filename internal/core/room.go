package core

import (
	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/proto"
)

// transcriptLimit bounds how many recent turns a room keeps for the persona.
const transcriptLimit = 8

// stationModes pins well-known station rooms to a fixed mode regardless of
// who joins first. The AI station's room is always EVIL.
var stationModes = map[string]Mode{
	"AIROOM": ModeEvil,
}

// Room groups the connections of one game channel. Rooms are created lazily
// and live for the process lifetime; the hub loop is their only writer.
type Room struct {
	Name string

	mode       Mode
	members    map[*Client]struct{}
	transcript []ai.Turn
}

// NewRoom constructs an unresolved room with no members.
func NewRoom(name string) *Room {
	return &Room{
		Name:    name,
		members: make(map[*Client]struct{}),
	}
}

// Mode returns the room's resolved mode, or ModeUnset.
func (r *Room) Mode() Mode { return r.mode }

// ResolveMode fixes the room's mode on first call: a pinned station name
// wins outright, otherwise the mode is inferred from the triggering actor
// (EVIL for the AI station, HUMAN for everyone else). First writer wins;
// later calls never change the mode. The second return reports whether this
// call performed the resolution.
func (r *Room) ResolveMode(actor Actor) (Mode, bool) {
	if r.mode != ModeUnset {
		return r.mode, false
	}
	if pinned, ok := stationModes[r.Name]; ok {
		r.mode = pinned
		return r.mode, true
	}
	if actor == ActorAI {
		r.mode = ModeEvil
	} else {
		r.mode = ModeHuman
	}
	return r.mode, true
}

// AddMember inserts a client. Returns true if newly added.
func (r *Room) AddMember(c *Client) bool {
	if _, exists := r.members[c]; exists {
		return false
	}
	r.members[c] = struct{}{}
	return true
}

// RemoveMember deletes a client by identity. No-op if absent.
func (r *Room) RemoveMember(c *Client) bool {
	if _, exists := r.members[c]; !exists {
		return false
	}
	delete(r.members, c)
	return true
}

// MemberCount returns the current membership size.
func (r *Room) MemberCount() int { return len(r.members) }

// Broadcast serializes the frame once and delivers it to every member whose
// connection is still live. Closed or stalled members are skipped, not
// removed; removal happens on explicit close.
func (r *Room) Broadcast(frame proto.Outbound) {
	data, err := frame.Encode()
	if err != nil {
		return
	}
	for member := range r.members {
		member.Send(data)
	}
}

// AppendTurn records a conversation turn for persona context, keeping only
// the most recent entries.
func (r *Room) AppendTurn(role, text string) {
	r.transcript = append(r.transcript, ai.Turn{Role: role, Text: text})
	if len(r.transcript) > transcriptLimit {
		r.transcript = r.transcript[len(r.transcript)-transcriptLimit:]
	}
}

// Transcript returns a snapshot of the recent turns, safe to read off-loop.
func (r *Room) Transcript() []ai.Turn {
	out := make([]ai.Turn, len(r.transcript))
	copy(out, r.transcript)
	return out
}
