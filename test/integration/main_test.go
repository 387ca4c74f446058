//go:build integration

package integration

import (
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/onja-org/w2-scss-lab/internal/app"
	"github.com/onja-org/w2-scss-lab/internal/config"
	"github.com/onja-org/w2-scss-lab/internal/services/metrics"
)

var (
	testServerURL string
	redisServer   *miniredis.Miniredis
)

func TestMain(m *testing.M) {
	fmt.Println("Starting integration tests...")
	gin.SetMode(gin.TestMode)

	var err error
	redisServer, err = miniredis.Run()
	if err != nil {
		log.Panicf("failed to start redis: %v", err)
	}

	logsDir, err := os.MkdirTemp("", "weatherlab-integration")
	if err != nil {
		log.Panicf("failed to create logs dir: %v", err)
	}

	cfg := config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0", GrpcPort: "0", ReadTimeout: 5},
		Session: config.Session{
			Backend:    config.BackendRedis,
			TTLMinutes: 30,
			SweepSpec:  "@every 1m",
		},
		Redis:          config.Redis{Host: redisServer.Host(), Port: redisServer.Port()},
		Breaker:        config.Breaker{TimeInterval: 30, TimeTimeOut: 10, RepeatNumber: 5},
		AccessLogsPath: filepath.Join(logsDir, "access.log"),
	}

	application := app.New(cfg, zerolog.New(io.Discard), metrics.NewMetrics("weatherlab_integration"))
	srvContainer, err := application.Init()
	if err != nil {
		log.Panicf("failed to init application: %v", err)
	}

	testServer := httptest.NewServer(srvContainer.Router)
	testServerURL = testServer.URL

	code := m.Run()

	testServer.Close()
	if err := application.Shutdown(srvContainer); err != nil {
		log.Printf("failed to shutdown application: %v", err)
	}
	redisServer.Close()
	_ = os.RemoveAll(logsDir)

	os.Exit(code)
}
