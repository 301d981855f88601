package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Girgetto/iracing-pitwall-tui/log"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/source"
)

// Source connects to a telemetry relay via websocket and keeps the latest
// decoded snapshot of each feed. Snapshots are replaced wholesale per frame;
// a handed out snapshot is never written again.
type Source struct {
	url string
	l   *log.Logger

	mu          sync.RWMutex
	telemetry   *model.TelemetrySnapshot
	sessionInfo *model.SessionInfo
}

type Option func(s *Source)

func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		s.l = l
	}
}

func New(url string, opts ...Option) *Source {
	ret := &Source{url: url, l: log.Default().Named("relay")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Run reads frames until the context is done or the connection fails.
func (s *Source) Run(ctx context.Context) error {
	dialer := &websocket.Dialer{
		HandshakeTimeout:  10 * time.Second,
		EnableCompression: true,
	}
	conn, _, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", s.url, err)
	}
	defer conn.Close()
	s.l.Info("connected", log.String("url", s.url))

	readErr := make(chan error, 1)
	go func() {
		for {
			var frame source.Frame
			if err := conn.ReadJSON(&frame); err != nil {
				readErr <- err
				return
			}
			s.handleFrame(&frame)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-readErr:
		return fmt.Errorf("reading from %s: %w", s.url, err)
	}
}

func (s *Source) handleFrame(frame *source.Frame) {
	switch frame.Type {
	case source.FrameTelemetry:
		var snap model.TelemetrySnapshot
		if err := json.Unmarshal(frame.Payload, &snap); err != nil {
			s.l.Warn("dropping malformed telemetry frame", log.ErrorField(err))
			return
		}
		s.mu.Lock()
		s.telemetry = &snap
		s.mu.Unlock()
	case source.FrameSessionInfo:
		var info model.SessionInfo
		if err := json.Unmarshal(frame.Payload, &info); err != nil {
			s.l.Warn("dropping malformed sessioninfo frame", log.ErrorField(err))
			return
		}
		s.mu.Lock()
		s.sessionInfo = &info
		s.mu.Unlock()
	default:
		s.l.Debug("unknown frame type", log.String("type", frame.Type))
	}
}

func (s *Source) Telemetry() (*model.TelemetrySnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.telemetry, s.telemetry != nil
}

func (s *Source) SessionInfo() (*model.SessionInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionInfo, s.sessionInfo != nil
}
