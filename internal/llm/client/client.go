package llmclient

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	// ErrUnavailable means no credential or client is configured.
	ErrUnavailable = errors.New("llm: provider unavailable")
	// ErrEmptyResponse means the provider answered without usable content.
	ErrEmptyResponse = errors.New("llm: empty response from provider")
)

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err (or anything it wraps) is a PermanentError.
func IsPermanent(err error) bool {
	var pErr *PermanentError
	return errors.As(err, &pErr)
}

// TextGenerator produces free-form text for a prompt.
type TextGenerator interface {
	Name() string
	Close() error
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces a single image for a prompt.
type ImageGenerator interface {
	Name() string
	Close() error
	GenerateImage(ctx context.Context, prompt string) (Image, error)
}

// Provider is a backend offering both capabilities. Middlewares wrap Providers.
type Provider interface {
	TextGenerator
	ImageGenerator
}

// Image is a raw image payload as returned by a provider.
type Image struct {
	Data     []byte
	MIMEType string
}

// DataURI encodes the payload as a data: URI suitable for an <img src>.
func (i Image) DataURI() string {
	mime := strings.TrimSpace(i.MIMEType)
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}
