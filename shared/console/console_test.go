package console

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		h.Write(NewLine(KindServer, s))
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	got := h.Lines()
	for i, want := range []string{"c", "d", "e"} {
		if got[i].Text != want {
			t.Errorf("line %d = %q, want %q", i, got[i].Text, want)
		}
	}
	tail := h.Tail(2)
	if len(tail) != 2 || tail[0].Text != "d" || tail[1].Text != "e" {
		t.Errorf("Tail(2) = %+v", tail)
	}
	if len(h.Tail(10)) != 3 {
		t.Errorf("Tail(10) should return every line")
	}
	if got := h.Tail(-1); len(got) != 0 {
		t.Errorf("Tail(-1) = %+v, want empty", got)
	}
}

func TestMultiSkipsNil(t *testing.T) {
	a := NewHistory(4)
	var seen []string
	fn := SinkFunc(func(l Line) { seen = append(seen, l.Text) })

	Multi(a, nil, fn).Write(NewLine(KindChat, "oi"))

	if a.Len() != 1 || len(seen) != 1 || seen[0] != "oi" {
		t.Fatalf("Multi did not fan out: history=%d seen=%v", a.Len(), seen)
	}
}

func TestNewLineColors(t *testing.T) {
	if NewLine(KindError, "x").Color != ErrorColor {
		t.Error("error lines should use ErrorColor")
	}
	if NewLine(KindServer, "x").Color != ServerColor {
		t.Error("server lines should use ServerColor")
	}
}

func TestFrameRoundTrip(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_123)
	in := Line{Kind: KindChat, Text: "olá mundo", Color: mgl32.Vec3{0.25, 0.5, 1}, At: at}

	out, err := DecodeLine(EncodeLine(in))
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}
	if out.Kind != in.Kind || out.Text != in.Text || out.Color != in.Color || !out.At.Equal(at) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestFrameSkipsUnknownFields(t *testing.T) {
	b := EncodeLine(Line{Kind: KindServer, Text: "ok"})
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "extra")

	out, err := DecodeLine(b)
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}
	if out.Text != "ok" {
		t.Errorf("Text = %q, want ok", out.Text)
	}
}

func TestFrameTruncated(t *testing.T) {
	b := EncodeLine(Line{Kind: KindServer, Text: "truncado"})
	if _, err := DecodeLine(b[:5]); err == nil {
		t.Fatal("expected error for truncated frame")
	}
}

func TestJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "console.db")
	j, err := OpenJournal(path)
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	defer j.Close()

	for _, s := range []string{"um", "dois", "três"} {
		j.Write(NewLine(KindServer, s))
	}
	j.Write(Line{Kind: KindChat, Text: "quatro", Color: mgl32.Vec3{1, 0, 0}})

	n, err := j.Count()
	if err != nil || n != 4 {
		t.Fatalf("Count = %d, %v; want 4", n, err)
	}

	recent, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].Text != "três" || recent[1].Text != "quatro" {
		t.Fatalf("Recent(2) = %+v", recent)
	}
	if recent[1].Kind != KindChat || recent[1].Color != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("chat line lost kind or color: %+v", recent[1])
	}
}

func dialBridge(t *testing.T, b *Bridge) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(b.Handler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("Dial: %v", err)
	}
	return conn, func() {
		conn.Close()
		b.Close()
		srv.Close()
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestBridgeInbound(t *testing.T) {
	b := NewBridge()
	conn, done := dialBridge(t, b)
	defer done()

	waitFor(t, func() bool { return b.Clients() == 1 })

	if err := conn.WriteMessage(websocket.TextMessage, []byte("/get")); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	frame := EncodeLine(Line{Kind: KindCommand, Text: "/diffuse"})
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	var got []Inbound
	waitFor(t, func() bool {
		got = append(got, b.Drain()...)
		return len(got) == 2
	})
	if got[0].Text != "/get" || got[1].Text != "/diffuse" {
		t.Fatalf("inbound = %+v", got)
	}
	if got[0].Client != got[1].Client {
		t.Error("both lines should come from the same client")
	}
}

func TestBridgeBroadcast(t *testing.T) {
	b := NewBridge()
	conn, done := dialBridge(t, b)
	defer done()

	waitFor(t, func() bool { return b.Clients() == 1 })
	b.Write(Line{Kind: KindServer, Text: "Texture changed", Color: ServerColor})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if typ != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", typ)
	}
	line, err := DecodeLine(data)
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}
	if line.Text != "Texture changed" || line.Kind != KindServer {
		t.Fatalf("line = %+v", line)
	}
}

func TestBridgeDisconnect(t *testing.T) {
	b := NewBridge()
	conn, done := dialBridge(t, b)
	defer done()

	waitFor(t, func() bool { return b.Clients() == 1 })
	conn.Close()
	waitFor(t, func() bool { return b.Clients() == 0 })
}
