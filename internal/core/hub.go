package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/game"
	"github.com/vovakirdan/circuitroom-server/internal/proto"
)

type inbound struct {
	client *Client
	frame  proto.Frame
}

type delivery struct {
	room  string
	frame proto.Outbound
}

type modeQuery struct {
	room  string
	reply chan Mode
}

// Hub drives every connection's session: unjoined until a join frame binds
// room and actor, joined until the transport closes. All room and client
// state is owned by the single Run goroutine; registrations, frames,
// closures, deferred persona lines and mode queries all funnel through
// channels, so no locking is needed anywhere in core.
type Hub struct {
	table    RoomTable
	pipeline *game.Pipeline
	log      *zerolog.Logger

	register    chan *Client
	unregister  chan *Client
	frames      chan inbound
	deliveries  chan delivery
	modeQueries chan modeQuery
}

// NewHub constructs a hub over the given room table and intercept pipeline.
func NewHub(table RoomTable, pipeline *game.Pipeline, logger *zerolog.Logger) *Hub {
	return &Hub{
		table:       table,
		pipeline:    pipeline,
		log:         logger,
		register:    make(chan *Client, 8),
		unregister:  make(chan *Client, 8),
		frames:      make(chan inbound, 64),
		deliveries:  make(chan delivery, 64),
		modeQueries: make(chan modeQuery, 8),
	}
}

// Register announces a freshly accepted connection.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister tears down a connection's session. Idempotent; the "left"
// broadcast fires at most once.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Dispatch hands a decoded inbound frame to the hub loop.
func (h *Hub) Dispatch(c *Client, f proto.Frame) {
	h.frames <- inbound{client: c, frame: f}
}

// Deliver queues an outbound frame for a room from outside the hub loop
// (generated replies, the delayed feint line). Dropped with a warning if the
// hub is saturated; delivery is best-effort by contract.
func (h *Hub) Deliver(room string, frame proto.Outbound) {
	select {
	case h.deliveries <- delivery{room: room, frame: frame}:
	default:
		h.log.Warn().Str("room", room).Msg("delivery queue full, dropping frame")
	}
}

// ModeOf reports a room's resolved mode, creating the room unresolved if it
// does not exist yet. Served by the hub loop to keep the table single-writer.
func (h *Hub) ModeOf(ctx context.Context, room string) (Mode, error) {
	q := modeQuery{room: room, reply: make(chan Mode, 1)}
	select {
	case h.modeQueries <- q:
	case <-ctx.Done():
		return ModeUnset, ctx.Err()
	}
	select {
	case mode := <-q.reply:
		return mode, nil
	case <-ctx.Done():
		return ModeUnset, ctx.Err()
	}
}

// Run processes hub traffic until the context is canceled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.log.Debug().Str("client_id", client.ID).Msg("client registered")
		case client := <-h.unregister:
			h.handleClose(client)
		case in := <-h.frames:
			h.handleFrame(ctx, in)
		case d := <-h.deliveries:
			h.handleDelivery(d)
		case q := <-h.modeQueries:
			q.reply <- h.table.GetOrCreate(q.room).Mode()
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleFrame(ctx context.Context, in inbound) {
	switch f := in.frame.(type) {
	case proto.JoinFrame:
		h.handleJoin(in.client, f)
	case proto.ChatFrame:
		h.handleChat(ctx, in.client, f)
	case proto.PingFrame:
		// Keep-alive, nothing to do.
	}
}

func (h *Hub) handleJoin(client *Client, f proto.JoinFrame) {
	if client.joined {
		h.log.Debug().Str("client_id", client.ID).Msg("repeat join ignored")
		return
	}
	actor, ok := ParseActor(f.Actor)
	if !ok {
		return
	}

	client.room = f.RoomID
	client.actor = actor
	client.joined = true

	room := h.table.GetOrCreate(f.RoomID)
	if mode, resolved := room.ResolveMode(actor); resolved {
		room.Broadcast(proto.System("room set to " + string(mode)))
		h.log.Info().Str("room", room.Name).Str("mode", string(mode)).Msg("room mode resolved")
	}

	room.AddMember(client)
	room.Broadcast(proto.System(actor.String() + " joined"))
	h.log.Info().Str("client_id", client.ID).Str("room", room.Name).Str("actor", actor.String()).Msg("client joined room")
}

func (h *Hub) handleChat(ctx context.Context, client *Client, f proto.ChatFrame) {
	if !client.joined {
		h.log.Debug().Str("client_id", client.ID).Msg("chat before join dropped")
		return
	}

	room := h.table.GetOrCreate(client.room)
	room.Broadcast(proto.ChatMessage(client.actor.String(), f.Text))

	// The intercept pipeline applies only to the AI-side participant in an
	// EVIL room. Everyone else, operators included, is a plain relay.
	if room.Mode() != ModeEvil || client.actor != ActorAI {
		return
	}

	// Snapshot the transcript first: the generator appends the current text
	// itself, so recording the turn before the snapshot would double it.
	history := room.Transcript()
	room.AppendTurn(ai.RoleUser, f.Text)
	h.pipeline.Dispatch(ctx, game.Input{Text: f.Text, History: history}, roomVoice{hub: h, room: room.Name})
}

func (h *Hub) handleClose(client *Client) {
	client.Close()
	if !client.joined || client.left {
		return
	}
	client.left = true

	room, ok := h.table.Lookup(client.room)
	if !ok {
		return
	}
	room.RemoveMember(client)
	room.Broadcast(proto.System(leftLabel(client) + " left"))
	h.log.Info().Str("client_id", client.ID).Str("room", room.Name).Msg("client left room")
}

func (h *Hub) handleDelivery(d delivery) {
	room, ok := h.table.Lookup(d.room)
	if !ok {
		// A late timer or reply for a room nobody ever joined; tolerated.
		h.log.Debug().Str("room", d.room).Msg("delivery to unknown room dropped")
		return
	}
	if d.frame.Type == proto.OutboundTypeMessage && d.frame.From == proto.RoleAI {
		room.AppendTurn(ai.RoleAssistant, d.frame.Text)
	}
	room.Broadcast(d.frame)
}

func leftLabel(c *Client) string {
	if c.actor == "" {
		return "client"
	}
	return c.actor.String()
}

// roomVoice lets pipeline rules speak into a room as the persona. Both
// methods only enqueue, so they are safe from any goroutine.
type roomVoice struct {
	hub  *Hub
	room string
}

func (v roomVoice) Say(text string) {
	v.hub.Deliver(v.room, proto.ChatMessage(proto.RoleAI, text))
}

func (v roomVoice) SayAfter(d time.Duration, text string) {
	time.AfterFunc(d, func() { v.Say(text) })
}
