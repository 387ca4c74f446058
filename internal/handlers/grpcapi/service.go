package grpcapi

import (
	"context"

	"google.golang.org/grpc"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

const (
	ServiceName   = "weatherlab.v1.WeatherLab"
	SuggestMethod = "/" + ServiceName + "/Suggest"
	LookupMethod  = "/" + ServiceName + "/Lookup"
)

type SuggestRequest struct {
	Fragment string `json:"fragment"`
}

type SuggestResponse struct {
	Suggestions []models.WeatherRecord `json:"suggestions"`
}

type LookupRequest struct {
	City string `json:"city"`
}

type LookupResponse struct {
	Result models.ResultView `json:"result"`
}

// WeatherLabServer is the server API of the weatherlab.v1.WeatherLab service.
type WeatherLabServer interface {
	Suggest(ctx context.Context, req *SuggestRequest) (*SuggestResponse, error)
	Lookup(ctx context.Context, req *LookupRequest) (*LookupResponse, error)
}

// RegisterWeatherLabServer registers srv on s.
func RegisterWeatherLabServer(s grpc.ServiceRegistrar, srv WeatherLabServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WeatherLabServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Suggest", Handler: suggestHandler},
		{MethodName: "Lookup", Handler: lookupHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "weatherlab/v1/weatherlab.proto",
}

func suggestHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SuggestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WeatherLabServer).Suggest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SuggestMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WeatherLabServer).Suggest(ctx, req.(*SuggestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func lookupHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WeatherLabServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LookupMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WeatherLabServer).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}
