package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	llmclient "coursegen/internal/llm/client"
	"coursegen/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSections() types.CourseOutline {
	return FallbackOutline(types.GenerationBrief{Topic: "Rain"}, seqIDs())
}

func TestOrchestrateImages_PacesAllButFirstCall(t *testing.T) {
	rec := &sleepRecorder{}
	img := &llmclient.FakeImage{Payload: pngImage()}
	svc := New(Options{Image: img, Sleep: rec.sleep})

	out := svc.orchestrateImages(context.Background(), threeSections(), types.GenerationBrief{Topic: "Rain"})

	require.Len(t, out, 3)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, rec.delays)
	assert.Len(t, img.Prompts(), 3)
	for _, im := range out {
		assert.True(t, strings.HasPrefix(im.URL, "data:image/png;base64,"), im.URL)
	}
}

func TestOrchestrateImages_CustomPacing(t *testing.T) {
	rec := &sleepRecorder{}
	svc := New(Options{Image: &llmclient.FakeImage{Payload: pngImage()}, Sleep: rec.sleep, ImagePacing: 250 * time.Millisecond})
	svc.orchestrateImages(context.Background(), threeSections(), types.GenerationBrief{})
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond}, rec.delays)

	rec = &sleepRecorder{}
	svc = New(Options{Image: &llmclient.FakeImage{Payload: pngImage()}, Sleep: rec.sleep, ImagePacing: -1})
	svc.orchestrateImages(context.Background(), threeSections(), types.GenerationBrief{})
	assert.Empty(t, rec.delays)
}

func TestOrchestrateImages_NoProvider(t *testing.T) {
	rec := &sleepRecorder{}
	svc := New(Options{Sleep: rec.sleep})
	out := svc.orchestrateImages(context.Background(), threeSections(), types.GenerationBrief{})
	require.Len(t, out, 3)
	assert.Empty(t, rec.delays)
	for i, im := range out {
		assert.Equal(t, PlaceholderURL(i+1), im.URL)
	}
	assert.True(t, strings.HasSuffix(out[2].URL, "Slide+3"))
}

func TestOrchestrateImages_FailuresBecomePlaceholders(t *testing.T) {
	img := &llmclient.FakeImage{Payload: pngImage(), FailOn: map[int]bool{1: true}}
	log := &eventLog{}
	svc := New(Options{Image: img, Sleep: (&sleepRecorder{}).sleep})
	out := svc.orchestrateImages(WithEmitter(context.Background(), log), threeSections(), types.GenerationBrief{})

	require.Len(t, out, 3)
	assert.True(t, strings.HasPrefix(out[0].URL, "data:"))
	assert.Equal(t, "https://placehold.co/1280x720/png?text=Slide+2", out[1].URL)
	assert.True(t, strings.HasPrefix(out[2].URL, "data:"))
	assert.Equal(t, []EventType{
		EventImageStart, EventImageDone,
		EventImageStart, EventImagePlaceholder,
		EventImageStart, EventImageDone,
	}, log.types())
}

func TestOrchestrateImages_ProviderErrorNeverEscapes(t *testing.T) {
	img := &llmclient.FakeImage{Err: errors.New("quota")}
	svc := New(Options{Image: img, Sleep: (&sleepRecorder{}).sleep})
	out := svc.orchestrateImages(context.Background(), threeSections(), types.GenerationBrief{})
	for i, im := range out {
		assert.Equal(t, PlaceholderURL(i+1), im.URL)
	}
}

func TestOrchestrateImages_InterruptedPacing(t *testing.T) {
	rec := &sleepRecorder{err: context.Canceled}
	img := &llmclient.FakeImage{Payload: pngImage()}
	svc := New(Options{Image: img, Sleep: rec.sleep})
	out := svc.orchestrateImages(context.Background(), threeSections(), types.GenerationBrief{})

	require.Len(t, out, 3)
	assert.Len(t, img.Prompts(), 1, "only the unpaced first call reaches the provider")
	assert.True(t, strings.HasPrefix(out[0].URL, "data:"))
	assert.Equal(t, PlaceholderURL(2), out[1].URL)
	assert.Equal(t, PlaceholderURL(3), out[2].URL)
}

func TestImagePrompt(t *testing.T) {
	sec := types.OutlineSection{Title: "Clouds", Summary: "secret summary", AssetsHint: "fluffy clouds, no text"}
	assert.Equal(t, "fluffy clouds, no text | watercolor", ImagePrompt(sec, types.GenerationBrief{ImageStyle: " watercolor ", Audience: "kids"}))
	assert.Equal(t, "fluffy clouds, no text | "+DefaultImageStyle, ImagePrompt(sec, types.GenerationBrief{}))

	noHint := ImagePrompt(types.OutlineSection{Title: "Clouds"}, types.GenerationBrief{})
	assert.Contains(t, noHint, `"Clouds"`)
	assert.NotContains(t, ImagePrompt(sec, types.GenerationBrief{Audience: "kids"}), "secret summary")
}
