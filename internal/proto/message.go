package proto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Frame type discriminants carried in the "type" field of every wire object.
const (
	InboundTypeJoin = "join"
	InboundTypeChat = "chat"
	InboundTypePing = "ping"

	OutboundTypeSystem  = "system"
	OutboundTypeMessage = "message"
)

// Wire-level actor vocabulary. "ai" is outbound-only: it identifies the
// generated persona, which no connection can join as.
const (
	RoleParticipantAI    = "participant_ai"
	RoleParticipantHuman = "participant_human"
	RoleOperator         = "operator"
	RoleAI               = "ai"
)

var (
	ErrMalformedFrame = errors.New("malformed frame")
	ErrUnknownType    = errors.New("unknown frame type")
	ErrMissingRoom    = errors.New("join requires a roomId")
	ErrInvalidActor   = errors.New("invalid actor")
)

// Frame is an inbound wire frame after boundary validation.
type Frame interface {
	frame()
}

// JoinFrame binds a connection to a room under a fixed actor role.
type JoinFrame struct {
	RoomID string
	Actor  string
}

// ChatFrame carries a chat line; the sender is implied by the connection.
type ChatFrame struct {
	Text string
}

// PingFrame is a keep-alive and has no payload.
type PingFrame struct{}

func (JoinFrame) frame() {}
func (ChatFrame) frame() {}
func (PingFrame) frame() {}

// inboundEnvelope is the superset of fields any inbound frame may carry.
type inboundEnvelope struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	Actor  string `json:"actor"`
	Text   string `json:"text"`
}

// DecodeInbound validates a raw wire frame and returns its typed form.
// Anything that does not decode to a known, well-formed frame is an error;
// the transport drops such frames without closing the connection.
func DecodeInbound(data []byte) (Frame, error) {
	var env inboundEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	switch env.Type {
	case InboundTypeJoin:
		if env.RoomID == "" {
			return nil, ErrMissingRoom
		}
		if !validActor(env.Actor) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidActor, env.Actor)
		}
		return JoinFrame{RoomID: env.RoomID, Actor: env.Actor}, nil
	case InboundTypeChat:
		return ChatFrame{Text: env.Text}, nil
	case InboundTypePing:
		return PingFrame{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}

func validActor(actor string) bool {
	switch actor {
	case RoleParticipantAI, RoleParticipantHuman, RoleOperator:
		return true
	}
	return false
}

// Outbound is a frame sent to clients.
type Outbound struct {
	Type string `json:"type"`
	From string `json:"from,omitempty"`
	Text string `json:"text"`
}

// System builds an informational broadcast frame.
func System(text string) Outbound {
	return Outbound{Type: OutboundTypeSystem, Text: text}
}

// ChatMessage builds a chat broadcast frame attributed to a source role.
func ChatMessage(from, text string) Outbound {
	return Outbound{Type: OutboundTypeMessage, From: from, Text: text}
}

// Encode serializes the frame once for fan-out to a whole room.
func (o Outbound) Encode() ([]byte, error) {
	return json.Marshal(o)
}
