package server

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gofiber/websocket/v2"
)

// fakeConn replays queued client messages and records what the server sends.
type fakeConn struct {
	in   [][]byte
	kind []int
	out  []Message
}

func (f *fakeConn) push(kind int, data string) {
	f.kind = append(f.kind, kind)
	f.in = append(f.in, []byte(data))
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	if len(f.in) == 0 {
		return 0, nil, io.EOF
	}
	kind, data := f.kind[0], f.in[0]
	f.kind, f.in = f.kind[1:], f.in[1:]
	return kind, data, nil
}

func (f *fakeConn) WriteJSON(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return err
	}
	f.out = append(f.out, msg)
	return nil
}

func testHandlers() *handlers {
	return &handlers{analyzer: NewAnalyzer(3, 5*time.Second, nil)}
}

func TestServeSearchStreamsRootMoves(t *testing.T) {
	c := &fakeConn{}
	c.push(websocket.TextMessage, `{"type":"search","payload":{"fen":"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1","depth":2}}`)
	testHandlers().serveSearch(c)

	if len(c.out) < 2 {
		t.Fatalf("got %d messages", len(c.out))
	}
	last := c.out[len(c.out)-1]
	if last.Type != MessageTypeBestMove {
		t.Fatalf("last message type %q", last.Type)
	}
	var res SearchResult
	if err := json.Unmarshal(last.Payload, &res); err != nil {
		t.Fatalf("decode bestMove: %v", err)
	}
	if res.SAN != "Rxd5" {
		t.Fatalf("best move: got %s want Rxd5", res.SAN)
	}

	roots := c.out[:len(c.out)-1]
	for i, msg := range roots {
		if msg.Type != MessageTypeRootMove {
			t.Fatalf("message %d: type %q", i, msg.Type)
		}
		var rm RootMove
		if err := json.Unmarshal(msg.Payload, &rm); err != nil {
			t.Fatalf("decode rootMove: %v", err)
		}
		if rm.ID != res.ID {
			t.Errorf("message %d: id %s, search id %s", i, rm.ID, res.ID)
		}
		if rm.Index != i+1 || rm.Total != len(roots) {
			t.Errorf("message %d: index %d total %d", i, rm.Index, rm.Total)
		}
		if rm.BestMove == "" {
			t.Errorf("message %d: empty bestMove", i)
		}
		if i == len(roots)-1 && rm.BestMove != res.Move {
			t.Errorf("last root move best %q, search best %q", rm.BestMove, res.Move)
		}
	}
}

func TestServeSearchErrors(t *testing.T) {
	c := &fakeConn{}
	c.push(websocket.BinaryMessage, `ignored`)
	c.push(websocket.TextMessage, `{not json`)
	c.push(websocket.TextMessage, `{"type":"resign","payload":{}}`)
	c.push(websocket.TextMessage, `{"type":"search","payload":{"fen":"bad","depth":1}}`)
	c.push(websocket.TextMessage, `{"type":"search","payload":{"depth":9}}`)
	testHandlers().serveSearch(c)

	if len(c.out) != 4 {
		t.Fatalf("got %d messages want 4: %+v", len(c.out), c.out)
	}
	for i, msg := range c.out {
		if msg.Type != MessageTypeError {
			t.Errorf("message %d: type %q", i, msg.Type)
		}
		var e map[string]string
		if err := json.Unmarshal(msg.Payload, &e); err != nil || e["error"] == "" {
			t.Errorf("message %d: payload %s", i, msg.Payload)
		}
	}
}

type failingConn struct{ fakeConn }

func (f *failingConn) WriteJSON(any) error { return errors.New("closed") }

func TestServeSearchWriteFailure(t *testing.T) {
	c := &failingConn{}
	c.push(websocket.TextMessage, `{"type":"search","payload":{"depth":1}}`)
	// Must return once input ends even though every write fails.
	testHandlers().serveSearch(c)
}
