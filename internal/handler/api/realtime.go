package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/websocket"
)

const (
	wsMaxFrameBytes     = 4 << 10
	wsMaxDecodeErrors   = 5
	wsWriteTimeout      = 10 * time.Second
	wsFrameJoinActivity = "joinActivity"
	wsFrameLeave        = "leaveActivity"
	wsFrameSlotUpdated  = "slotUpdated"
	wsFrameError        = "error"
)

type wsClientFrame struct {
	Type     string `json:"type"`
	Activity string `json:"activity"`
}

type wsServerFrame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type wsErrorPayload struct {
	Message string `json:"message"`
}

// RealtimeHandler serves /ws. Clients join one channel per activity and
// receive a slotUpdated frame whenever a slot of that activity changes.
type RealtimeHandler struct {
	bus    shared.NotificationBus
	server websocket.Server
}

func NewRealtimeHandler(bus shared.NotificationBus, cfg config.Config) *RealtimeHandler {
	h := &RealtimeHandler{bus: bus}
	h.server = websocket.Server{
		Handshake: originChecker(cfg.CORS.AllowOrigins),
		Handler:   h.handleConn,
	}
	return h
}

// @Summary Slot updates websocket
// @Description Send {"type":"joinActivity","activity":"Pottery Making"} to receive {"type":"slotUpdated","payload":{...}} frames.
// @Tags realtime
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *RealtimeHandler) Serve(c *gin.Context) {
	h.server.ServeHTTP(c.Writer, c.Request)
}

// originChecker lets non-browser clients without an Origin through.
func originChecker(allowed []string) func(*websocket.Config, *http.Request) error {
	return func(cfg *websocket.Config, r *http.Request) error {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
			return nil
		}
		return errors.New("websocket origin not allowed")
	}
}

type wsSession struct {
	mu   sync.Mutex
	conn *websocket.Conn
	enc  *json.Encoder
	// subs is only touched by the read loop.
	subs map[string]shared.Subscription
	wg   sync.WaitGroup
}

func (s *wsSession) write(frame wsServerFrame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return s.enc.Encode(frame)
}

func (s *wsSession) writeError(msg string) {
	_ = s.write(wsServerFrame{Type: wsFrameError, Payload: wsErrorPayload{Message: msg}})
}

func (h *RealtimeHandler) handleConn(conn *websocket.Conn) {
	conn.MaxPayloadBytes = wsMaxFrameBytes
	session := &wsSession{
		conn: conn,
		enc:  json.NewEncoder(conn),
		subs: make(map[string]shared.Subscription),
	}
	defer func() {
		_ = conn.Close()
		for _, sub := range session.subs {
			sub.Close()
		}
		session.wg.Wait()
	}()

	logger := slog.With("remote", conn.Request().RemoteAddr)
	logger.Debug("websocket client connected")
	defer logger.Debug("websocket client disconnected")

	decoder := json.NewDecoder(conn)
	decodeErrors := 0
	for {
		var frame wsClientFrame
		if err := decoder.Decode(&frame); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
				return
			}
			decodeErrors++
			session.writeError("invalid frame")
			if decodeErrors >= wsMaxDecodeErrors {
				return
			}
			// The decoder cannot resync after a syntax error.
			decoder = json.NewDecoder(conn)
			continue
		}
		decodeErrors = 0

		switch frame.Type {
		case wsFrameJoinActivity:
			h.join(session, frame.Activity)
		case wsFrameLeave:
			key := activity.ChannelKey(frame.Activity)
			if sub, ok := session.subs[key]; ok {
				sub.Close()
				delete(session.subs, key)
			}
		default:
			session.writeError("unsupported frame type")
		}
	}
}

func (h *RealtimeHandler) join(session *wsSession, name string) {
	key := activity.ChannelKey(name)
	if key == "" {
		session.writeError("activity is required")
		return
	}
	if _, ok := session.subs[key]; ok {
		return
	}

	sub := h.bus.Subscribe(name)
	session.subs[key] = sub
	session.wg.Add(1)
	go func() {
		defer session.wg.Done()
		forward(session, sub.Events())
	}()
}

func forward(session *wsSession, events <-chan slot.UpdatedEvent) {
	// Write errors are dropped; the read loop sees the dead connection and
	// closes the subscription, which ends this range.
	for ev := range events {
		_ = session.write(wsServerFrame{Type: wsFrameSlotUpdated, Payload: ev})
	}
}
