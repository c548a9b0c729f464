package server

import (
	"context"
	"strings"

	"coursegen/internal/types"

	"connectrpc.com/connect"
)

// CoursewareClient calls a remote CoursewareService.
type CoursewareClient struct {
	outline      *connect.Client[GenerateOutlineRequest, GenerateOutlineResponse]
	courseware   *connect.Client[GenerateCoursewareRequest, GenerateCoursewareResponse]
	capabilities *connect.Client[GetCapabilitiesRequest, GetCapabilitiesResponse]
}

func NewCoursewareClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CoursewareClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &CoursewareClient{
		outline:      connect.NewClient[GenerateOutlineRequest, GenerateOutlineResponse](httpClient, baseURL+GenerateOutlineProcedure, opts...),
		courseware:   connect.NewClient[GenerateCoursewareRequest, GenerateCoursewareResponse](httpClient, baseURL+GenerateCoursewareProcedure, opts...),
		capabilities: connect.NewClient[GetCapabilitiesRequest, GetCapabilitiesResponse](httpClient, baseURL+GetCapabilitiesProcedure, opts...),
	}
}

func (c *CoursewareClient) GenerateOutline(ctx context.Context, brief types.GenerationBrief) (types.CourseOutline, error) {
	res, err := c.outline.CallUnary(ctx, connect.NewRequest(&GenerateOutlineRequest{Request: brief}))
	if err != nil {
		return types.CourseOutline{}, err
	}
	return res.Msg.Outline, nil
}

func (c *CoursewareClient) GenerateCourseware(ctx context.Context, outline types.CourseOutline, brief types.GenerationBrief) (*GenerateCoursewareResponse, error) {
	res, err := c.courseware.CallUnary(ctx, connect.NewRequest(&GenerateCoursewareRequest{Outline: outline, Request: brief}))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c *CoursewareClient) Capabilities(ctx context.Context) (*GetCapabilitiesResponse, error) {
	res, err := c.capabilities.CallUnary(ctx, connect.NewRequest(&GetCapabilitiesRequest{}))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}
