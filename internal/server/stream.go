package server

import (
	"context"
	"net/http"
	"time"

	"coursegen/internal/pipeline"
	"coursegen/internal/platform/logger"
	"coursegen/internal/render"
	"coursegen/internal/types"

	"github.com/gorilla/websocket"
)

const (
	streamWSWriteWait = 10 * time.Second
	streamWSPongWait  = 60 * time.Second
	streamWSPingEvery = (streamWSPongWait * 9) / 10
	streamEventBuffer = 64
)

// Frame types sent on the courseware stream besides pipeline event types.
const (
	FrameOutline  = "outline"
	FrameArtifact = "artifact"
	FrameError    = "error"
)

var streamWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// StreamRequest is the single message a client sends after connecting. When
// Outline is absent the stream generates one first.
type StreamRequest struct {
	Request types.GenerationBrief `json:"request"`
	Outline *types.CourseOutline  `json:"outline,omitempty"`
}

// StreamFrame is one outbound message.
type StreamFrame struct {
	Type     string                    `json:"type"`
	Section  int                       `json:"section,omitempty"`
	Total    int                       `json:"total,omitempty"`
	Message  string                    `json:"message,omitempty"`
	Code     string                    `json:"code,omitempty"`
	Outline  *types.CourseOutline      `json:"outline,omitempty"`
	Artifact *types.CoursewareArtifact `json:"artifact,omitempty"`
	FileName string                    `json:"fileName,omitempty"`
}

// StreamHandler runs the pipeline for one brief per connection and forwards
// progress events as they happen.
type StreamHandler struct {
	gen Generator
	log *logger.Logger
}

func NewStreamHandler(gen Generator, log *logger.Logger) *StreamHandler {
	return &StreamHandler{gen: gen, log: logger.OrNop(log)}
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := streamWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(streamWSPongWait)); err != nil {
		h.log.Warn("stream set read deadline failed", "error", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamWSPongWait))
	})

	var in StreamRequest
	if err := conn.ReadJSON(&in); err != nil {
		return
	}

	writeCh := make(chan StreamFrame, streamEventBuffer)
	writerDone := make(chan struct{})
	go writeStream(conn, writeCh, writerDone)
	push := func(f StreamFrame) {
		select {
		case writeCh <- f:
		case <-writerDone:
		}
	}

	// Keep reading so pongs and client close are noticed.
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	h.run(ctx, in, push)

	close(writeCh)
	<-writerDone
	_ = conn.Close()
	<-readerDone
}

func (h *StreamHandler) run(ctx context.Context, in StreamRequest, push func(StreamFrame)) {
	brief := in.Request
	if err := brief.Validate(); err != nil {
		push(StreamFrame{Type: FrameError, Code: "invalid_argument", Message: err.Error()})
		return
	}

	events := make(chan pipeline.Event, streamEventBuffer)
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for ev := range events {
			push(StreamFrame{Type: string(ev.Type), Section: ev.Section, Total: ev.Total, Message: ev.Message})
		}
	}()
	ctx = pipeline.WithEmitter(ctx, &pipeline.ChannelEmitter{Ch: events})

	artifact, err := h.generate(ctx, in, brief, push)
	close(events)
	<-forwarded
	if err != nil {
		h.log.Error("stream generation failed", "error", err)
		push(StreamFrame{Type: FrameError, Code: "unavailable", Message: errGenerationFailed.Error()})
		return
	}
	push(StreamFrame{Type: FrameArtifact, Artifact: &artifact, FileName: render.FileName(artifact.Courseware.Title)})
}

func (h *StreamHandler) generate(ctx context.Context, in StreamRequest, brief types.GenerationBrief, push func(StreamFrame)) (types.CoursewareArtifact, error) {
	var outline types.CourseOutline
	if in.Outline != nil && len(in.Outline.Sections) > 0 {
		outline = *in.Outline
	} else {
		o, err := h.gen.GenerateOutline(ctx, brief)
		if err != nil {
			return types.CoursewareArtifact{}, err
		}
		outline = o
		push(StreamFrame{Type: FrameOutline, Outline: &outline, Total: len(outline.Sections)})
	}
	return h.gen.GenerateCourseware(ctx, outline, brief)
}

func writeStream(conn *websocket.Conn, writeCh <-chan StreamFrame, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(streamWSPingEvery)
	defer ticker.Stop()

	for {
		select {
		case out, ok := <-writeCh:
			if err := conn.SetWriteDeadline(time.Now().Add(streamWSWriteWait)); err != nil {
				return
			}
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
				return
			}
			if err := conn.WriteJSON(out); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(streamWSWriteWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
