package replay

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Girgetto/iracing-pitwall-tui/log"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/source"
)

// Source plays back a recorded feed (one frame per line) as if it were live.
type Source struct {
	frames []source.Frame
	speed  int
	l      *log.Logger

	mu          sync.RWMutex
	telemetry   *model.TelemetrySnapshot
	sessionInfo *model.SessionInfo
}

type Option func(s *Source)

// WithSpeed sets the playback speed. 0 means: go as fast as possible.
func WithSpeed(speed int) Option {
	return func(s *Source) {
		s.speed = speed
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		s.l = l
	}
}

func New(r io.Reader, opts ...Option) (*Source, error) {
	ret := &Source{speed: 1, l: log.Default().Named("replay")}
	for _, opt := range opts {
		opt(ret)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var frame source.Frame
		if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
			return nil, fmt.Errorf("parsing recording line %d: %w", line, err)
		}
		ret.frames = append(ret.frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading recording: %w", err)
	}
	return ret, nil
}

// Run applies the recorded frames, pacing by the recorded frame times divided
// by the playback speed.
func (s *Source) Run(ctx context.Context) error {
	lastTs := 0.0
	for i := range s.frames {
		frame := &s.frames[i]
		if wait := s.frameDelay(frame.Ts, lastTs); wait > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(wait):
			}
		} else if ctx.Err() != nil {
			return nil
		}
		lastTs = frame.Ts
		s.applyFrame(frame)
	}
	s.l.Info("recording finished", log.Int("frames", len(s.frames)))
	<-ctx.Done()
	return nil
}

func (s *Source) frameDelay(ts, lastTs float64) time.Duration {
	if s.speed == 0 || ts <= lastTs {
		return 0
	}
	return time.Duration((ts - lastTs) / float64(s.speed) * float64(time.Second))
}

func (s *Source) applyFrame(frame *source.Frame) {
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
