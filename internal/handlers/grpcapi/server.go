package grpcapi

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onja-org/w2-scss-lab/internal/models"
	serviceWeather "github.com/onja-org/w2-scss-lab/internal/services/weather"
)

type weatherService interface {
	Suggest(ctx context.Context, fragment string) []models.WeatherRecord
	GetByCity(ctx context.Context, city string) (models.WeatherRecord, error)
}

type WeatherGRPCServer struct {
	service weatherService
}

func NewWeatherGRPCServer(service weatherService) *WeatherGRPCServer {
	return &WeatherGRPCServer{service: service}
}

func (s *WeatherGRPCServer) Suggest(ctx context.Context, req *SuggestRequest) (*SuggestResponse, error) {
	return &SuggestResponse{Suggestions: s.service.Suggest(ctx, req.Fragment)}, nil
}

func (s *WeatherGRPCServer) Lookup(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	record, err := s.service.GetByCity(ctx, req.City)
	if err != nil {
		if errors.Is(err, serviceWeather.ErrCityNotFound) {
			return nil, status.Error(codes.NotFound, serviceWeather.NotFoundMessage)
		}
		return nil, status.Errorf(codes.Internal, "weather lookup error: %v", err)
	}

	return &LookupResponse{Result: serviceWeather.Render(record)}, nil
}
