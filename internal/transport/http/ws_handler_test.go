package http

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/circuitroom-server/internal/proto"
)

func dialWS(t *testing.T, ctx context.Context, baseURL string) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(baseURL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func sendJoin(t *testing.T, ctx context.Context, conn *websocket.Conn, room, actor string) {
	t.Helper()
	if err := wsjson.Write(ctx, conn, map[string]string{"type": "join", "roomId": room, "actor": actor}); err != nil {
		t.Fatalf("send join: %v", err)
	}
}

func sendChat(t *testing.T, ctx context.Context, conn *websocket.Conn, text string) {
	t.Helper()
	if err := wsjson.Write(ctx, conn, map[string]string{"type": "chat", "text": text}); err != nil {
		t.Fatalf("send chat: %v", err)
	}
}

// readFrame waits for the next frame of the wanted type, skipping others.
func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn, wantType string) outFrame {
	t.Helper()

	for {
		var f outFrame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if f.Type == wantType {
			return f
		}
	}
}

func TestWebSocketRelayBetweenStations(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	human := dialWS(t, ctx, ts.URL)
	operator := dialWS(t, ctx, ts.URL)

	sendJoin(t, ctx, human, "HUMANROOM", proto.RoleParticipantHuman)

	joined := readFrame(t, ctx, human, proto.OutboundTypeSystem)
	if joined.Text != "participant_human joined" {
		t.Fatalf("unexpected join announcement: %+v", joined)
	}

	sendJoin(t, ctx, operator, "HUMANROOM", proto.RoleOperator)
	readFrame(t, ctx, operator, proto.OutboundTypeSystem)

	sendChat(t, ctx, human, "hello?")

	msg := readFrame(t, ctx, operator, proto.OutboundTypeMessage)
	if msg.From != proto.RoleParticipantHuman || msg.Text != "hello?" {
		t.Fatalf("unexpected relayed message: %+v", msg)
	}
}

func TestWebSocketEvilRoomPersona(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	player := dialWS(t, ctx, ts.URL)
	sendJoin(t, ctx, player, "AIROOM", proto.RoleParticipantAI)
	readFrame(t, ctx, player, proto.OutboundTypeSystem)

	// A wrong guess gets the fixed rebuff, not a generated line.
	sendChat(t, ctx, player, "Is it E?")

	echo := readFrame(t, ctx, player, proto.OutboundTypeMessage)
	if echo.From != proto.RoleParticipantAI {
		t.Fatalf("expected own echo first, got %+v", echo)
	}

	reply := readFrame(t, ctx, player, proto.OutboundTypeMessage)
	if reply.From != proto.RoleAI || reply.Text != "Incorrect. Try again." {
		t.Fatalf("unexpected persona reply: %+v", reply)
	}
}

func TestWebSocketSurvivesMalformedFrames(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts.URL)

	// Garbage and unknown types are dropped without closing the connection.
	if err := conn.Write(ctx, websocket.MessageText, []byte("{{{not json")); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if err := wsjson.Write(ctx, conn, map[string]string{"type": "dance"}); err != nil {
		t.Fatalf("write unknown type: %v", err)
	}

	sendJoin(t, ctx, conn, "HUMANROOM", proto.RoleParticipantHuman)
	joined := readFrame(t, ctx, conn, proto.OutboundTypeSystem)
	if joined.Text != "participant_human joined" {
		t.Fatalf("connection did not survive bad frames: %+v", joined)
	}
}

func TestWebSocketCloseAnnouncesLeave(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	human := dialWS(t, ctx, ts.URL)
	operator := dialWS(t, ctx, ts.URL)

	sendJoin(t, ctx, human, "HUMANROOM", proto.RoleParticipantHuman)
	sendJoin(t, ctx, operator, "HUMANROOM", proto.RoleOperator)
	readFrame(t, ctx, operator, proto.OutboundTypeSystem)

	human.Close(websocket.StatusNormalClosure, "bye")

	for {
		f := readFrame(t, ctx, operator, proto.OutboundTypeSystem)
		if f.Text == "participant_human left" {
			return
		}
	}
}
