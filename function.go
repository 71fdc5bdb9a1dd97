// Package quickchat registers the chat API as a Cloud Function.
package quickchat

import (
	"context"
	"net/http"
	"sync"

	"quickchat/config"
	"quickchat/internal/bootstrap"
	"quickchat/pkg/logger"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

var (
	initMu sync.Mutex
	router http.Handler

	// buildRouter is replaced in tests.
	buildRouter = func(ctx context.Context) (http.Handler, error) {
		cfg := config.LoadConfig()
		l := logger.New(cfg.LogMode, logger.WithLevel(cfg.LogLevel), logger.WithService("quickchat"))
		logger.SetGlobalLogger(l)

		srv, _, err := bootstrap.NewServer(ctx, cfg, l)
		if err != nil {
			l.Errorf("Failed to initialize: %v", err)
			return nil, err
		}
		return srv.Engine(), nil
	}
)

func init() {
	functions.HTTP("Chat", Chat)
}

// Chat serves every route of the API. Backends are built on the first request
// so that deploy-time analysis does not need credentials. A failed build is
// retried by the next request.
func Chat(w http.ResponseWriter, r *http.Request) {
	h, err := handler()
	if err != nil {
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}
	h.ServeHTTP(w, r)
}

func handler() (http.Handler, error) {
	initMu.Lock()
	defer initMu.Unlock()
	if router != nil {
		return router, nil
	}
	h, err := buildRouter(context.Background())
	if err != nil {
		return nil, err
	}
	router = h
	return router, nil
}
