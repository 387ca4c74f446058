package grpcapi

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls the WeatherLab service with the JSON codec.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) Suggest(ctx context.Context, fragment string, opts ...grpc.CallOption) (*SuggestResponse, error) {
	out := new(SuggestResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.conn.Invoke(ctx, SuggestMethod, &SuggestRequest{Fragment: fragment}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Lookup(ctx context.Context, city string, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.conn.Invoke(ctx, LookupMethod, &LookupRequest{City: city}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
