package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"coursegen/internal/pipeline"
	"coursegen/internal/platform/logger"
	"coursegen/internal/render"
	"coursegen/internal/types"

	"connectrpc.com/connect"
)

const (
	CoursewareServiceName = "coursegen.v1.CoursewareService"

	GenerateOutlineProcedure    = "/" + CoursewareServiceName + "/GenerateOutline"
	GenerateCoursewareProcedure = "/" + CoursewareServiceName + "/GenerateCourseware"
	GetCapabilitiesProcedure    = "/" + CoursewareServiceName + "/GetCapabilities"
)

// errGenerationFailed is the only failure text callers ever see.
var errGenerationFailed = errors.New("generation failed, please retry later")

// Generator is the pipeline surface the transports need.
type Generator interface {
	GenerateOutline(ctx context.Context, brief types.GenerationBrief) (types.CourseOutline, error)
	GenerateCourseware(ctx context.Context, outline types.CourseOutline, brief types.GenerationBrief) (types.CoursewareArtifact, error)
	Capabilities() pipeline.Capabilities
}

type GenerateOutlineRequest struct {
	Request types.GenerationBrief `json:"request"`
}

type GenerateOutlineResponse struct {
	Outline types.CourseOutline `json:"outline"`
}

type GenerateCoursewareRequest struct {
	Outline types.CourseOutline   `json:"outline"`
	Request types.GenerationBrief `json:"request"`
}

type GenerateCoursewareResponse struct {
	Courseware types.Courseware `json:"courseware"`
	HTML       string           `json:"html"`
	FileName   string           `json:"fileName"`
}

type GetCapabilitiesRequest struct{}

type GetCapabilitiesResponse struct {
	Status          string `json:"status"`
	TextGeneration  bool   `json:"textGeneration"`
	ImageGeneration bool   `json:"imageGeneration"`
}

func capabilitiesResponse(c pipeline.Capabilities) GetCapabilitiesResponse {
	return GetCapabilitiesResponse{Status: "ok", TextGeneration: c.TextGeneration, ImageGeneration: c.ImageGeneration}
}

// CoursewareHandler serves CoursewareService over connect.
type CoursewareHandler struct {
	gen Generator
	log *logger.Logger
}

func NewCoursewareHandler(gen Generator, log *logger.Logger) *CoursewareHandler {
	return &CoursewareHandler{gen: gen, log: logger.OrNop(log)}
}

// Handler returns the mount path and handler for the service, in the shape of
// generated connect service constructors.
func (h *CoursewareHandler) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(GenerateOutlineProcedure, connect.NewUnaryHandler(GenerateOutlineProcedure, h.GenerateOutline, opts...))
	mux.Handle(GenerateCoursewareProcedure, connect.NewUnaryHandler(GenerateCoursewareProcedure, h.GenerateCourseware, opts...))
	mux.Handle(GetCapabilitiesProcedure, connect.NewUnaryHandler(GetCapabilitiesProcedure, h.GetCapabilities, opts...))
	return "/" + CoursewareServiceName + "/", mux
}

func (h *CoursewareHandler) GenerateOutline(ctx context.Context, req *connect.Request[GenerateOutlineRequest]) (*connect.Response[GenerateOutlineResponse], error) {
	brief := req.Msg.Request
	if err := brief.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	outline, err := h.gen.GenerateOutline(ctx, brief)
	if err != nil {
		return nil, h.generationError("generate outline", err)
	}
	return connect.NewResponse(&GenerateOutlineResponse{Outline: outline}), nil
}

func (h *CoursewareHandler) GenerateCourseware(ctx context.Context, req *connect.Request[GenerateCoursewareRequest]) (*connect.Response[GenerateCoursewareResponse], error) {
	if err := validateCoursewareRequest(req.Msg.Outline, req.Msg.Request); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	artifact, err := h.gen.GenerateCourseware(ctx, req.Msg.Outline, req.Msg.Request)
	if err != nil {
		return nil, h.generationError("generate courseware", err)
	}
	return connect.NewResponse(&GenerateCoursewareResponse{
		Courseware: artifact.Courseware,
		HTML:       artifact.HTML,
		FileName:   render.FileName(artifact.Courseware.Title),
	}), nil
}

func (h *CoursewareHandler) GetCapabilities(_ context.Context, _ *connect.Request[GetCapabilitiesRequest]) (*connect.Response[GetCapabilitiesResponse], error) {
	res := capabilitiesResponse(h.gen.Capabilities())
	return connect.NewResponse(&res), nil
}

func (h *CoursewareHandler) generationError(op string, err error) error {
	h.log.Error(op+" failed", "error", err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return connect.NewError(connect.CodeUnavailable, errGenerationFailed)
	}
	return connect.NewError(connect.CodeInternal, errGenerationFailed)
}

func validateCoursewareRequest(outline types.CourseOutline, brief types.GenerationBrief) error {
	if err := brief.Validate(); err != nil {
		return err
	}
	if len(outline.Sections) == 0 {
		return errors.New("outline: at least one section is required")
	}
	for i, sec := range outline.Sections {
		if strings.TrimSpace(sec.ID) == "" {
			return fmt.Errorf("outline: section %d has no id", i+1)
		}
	}
	return nil
}
