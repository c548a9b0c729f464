package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	llmclient "coursegen/internal/llm/client"
	"coursegen/internal/tester"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newFake() llmclient.FakeProvider {
	return llmclient.FakeProvider{
		FakeText:  &llmclient.FakeText{Replies: []string{`{"title":"x"}`}},
		FakeImage: &llmclient.FakeImage{Payload: llmclient.Image{Data: []byte{1, 2}, MIMEType: "image/png"}},
	}
}

// order records the sequence in which middlewares see a request.
type order struct {
	mu   sync.Mutex
	seen []string
}

func (o *order) mw(name string) Middleware {
	return func(next llmclient.Provider) llmclient.Provider {
		return &tagging{next: next, name: name, o: o}
	}
}

type tagging struct {
	next llmclient.Provider
	name string
	o    *order
}

func (t *tagging) Name() string { return t.next.Name() }
func (t *tagging) Close() error { return t.next.Close() }
func (t *tagging) GenerateText(ctx context.Context, p string) (string, error) {
	t.o.mu.Lock()
	t.o.seen = append(t.o.seen, t.name)
	t.o.mu.Unlock()
	return t.next.GenerateText(ctx, p)
}
func (t *tagging) GenerateImage(ctx context.Context, p string) (llmclient.Image, error) {
	return t.next.GenerateImage(ctx, p)
}

func TestWrapAppliesLeftToRight(t *testing.T) {
	o := &order{}
	cli := Wrap(newFake(), o.mw("a"), nil, o.mw("b"))
	_, err := cli.GenerateText(context.Background(), "p")
	tester.NoErr(t, err)
	tester.Eq(t, o.seen, []string{"a", "b"})
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	inner := newFake()
	cli := RateLimit(0, 0)(inner)
	tester.Eq[llmclient.Provider](t, cli, inner)
}

func TestRateLimitHonorsContext(t *testing.T) {
	inner := newFake()
	cli := RateLimit(0.001, 1)(inner)

	_, err := cli.GenerateText(context.Background(), "first")
	tester.NoErr(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cli.GenerateImage(ctx, "second")
	tester.True(t, err != nil, "expected limiter to refuse with canceled context")
	tester.Len(t, inner.FakeImage.Prompts(), 0)
}

type blocking struct{ llmclient.FakeProvider }

func (b blocking) GenerateText(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestWithTimeoutBoundsCalls(t *testing.T) {
	cli := WithTimeout(10 * time.Millisecond)(blocking{newFake()})
	_, err := cli.GenerateText(context.Background(), "p")
	tester.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

type recordingHook struct {
	before []string
	after  []string
	errs   []error
}

func (r *recordingHook) Before(_ context.Context, phase, _ string) {
	r.before = append(r.before, phase)
}
func (r *recordingHook) After(_ context.Context, phase, out string, err error) {
	r.after = append(r.after, phase+"="+out)
	r.errs = append(r.errs, err)
}

func TestWithHooksUsesContextHook(t *testing.T) {
	inner := newFake()
	inner.FakeImage.Err = llmclient.ErrEmptyResponse
	cli := Wrap(inner, WithHooks())

	// No hook in context: plain pass-through.
	_, err := cli.GenerateText(context.Background(), "p")
	tester.NoErr(t, err)

	h := &recordingHook{}
	ctx := WithPromptHook(WithPhase(context.Background(), "outline"), h)
	_, err = cli.GenerateText(ctx, "p")
	tester.NoErr(t, err)
	_, err = cli.GenerateImage(WithPhase(ctx, "image:section-1"), "p")
	tester.True(t, errors.Is(err, llmclient.ErrEmptyResponse))

	tester.Eq(t, h.before, []string{"outline", "image:section-1"})
	tester.Eq(t, h.after, []string{`outline={"title":"x"}`, "image:section-1="})
	tester.NoErr(t, h.errs[0])
}

func TestPhaseFromDefaults(t *testing.T) {
	tester.Eq(t, PhaseFrom(context.Background()), "unknown")
	tester.Eq(t, PhaseFrom(WithPhase(context.Background(), "outline")), "outline")
}

func TestWithTracingRecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	inner := newFake()
	inner.FakeText.Errs = []error{errors.New("boom")}
	cli := WithTracing(tp.Tracer("test"))(inner)

	_, err := cli.GenerateText(WithPhase(context.Background(), "outline"), "p")
	require.Error(t, err)
	_, err = cli.GenerateImage(context.Background(), "p")
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "llm.generate_text", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Equal(t, "llm.generate_image", spans[1].Name())
	require.Equal(t, codes.Unset, spans[1].Status().Code)
}
