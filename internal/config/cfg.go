package config

import (
	"fmt"
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Server struct {
	Host        string `envconfig:"WEATHERLAB_HTTP_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"WEATHERLAB_HTTP_PORT" default:"8080"`
	GrpcPort    string `envconfig:"WEATHERLAB_GRPC_PORT" default:"50051"`
	ReadTimeout int    `envconfig:"WEATHERLAB_SERVER_TIMEOUT" default:"10"`
}

type Session struct {
	Backend    string `envconfig:"SESSION_BACKEND" default:"memory"`
	TTLMinutes int    `envconfig:"SESSION_TTL_MINUTES" default:"30"`
	SweepSpec  string `envconfig:"SESSION_SWEEP_SPEC" default:"@every 1m"`
}

type Redis struct {
	Host   string `envconfig:"REDIS_HOST" default:"localhost"`
	Port   string `envconfig:"REDIS_PORT" default:"6379"`
	DbType int    `envconfig:"REDIS_DB_TYPE" default:"0"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Config struct {
	Server  Server
	Session Session
	Redis   Redis
	Breaker Breaker

	LogLevel       string `envconfig:"LOG_LEVEL" default:"debug"`
	LogsPath       string `envconfig:"LOGS_PATH" default:"./log/weatherlab.log"`
	AccessLogsPath string `envconfig:"ACCESS_LOGS_PATH" default:"./log/access.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session ttl must be positive, got %d minutes", c.Session.TTLMinutes)
	}
	return nil
}

func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func (c *Config) GrpcAddress() string {
	return net.JoinHostPort(c.Server.Host, c.Server.GrpcPort)
}

func (r Redis) Address() string {
	return net.JoinHostPort(r.Host, r.Port)
}

func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

func (s Server) Timeout() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}
