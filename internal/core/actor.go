package core

import "github.com/vovakirdan/circuitroom-server/internal/proto"

// Actor is the fixed role a connection holds inside its room.
type Actor string

const (
	// ActorAI is the AI-side station participant.
	ActorAI Actor = proto.RoleParticipantAI
	// ActorHuman is the human-side station participant.
	ActorHuman Actor = proto.RoleParticipantHuman
	// ActorOperator is a human operator puppeteering replies.
	ActorOperator Actor = proto.RoleOperator
)

// ParseActor maps a validated wire role onto the domain actor.
func ParseActor(role string) (Actor, bool) {
	switch a := Actor(role); a {
	case ActorAI, ActorHuman, ActorOperator:
		return a, true
	}
	return "", false
}

func (a Actor) String() string { return string(a) }

// Mode is a room-level flag fixed at first resolution. It governs whether
// the automated persona intercepts the AI-side participant's messages.
type Mode string

const (
	ModeUnset Mode = ""
	ModeEvil  Mode = "EVIL"
	ModeHuman Mode = "HUMAN"
)
