package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/communitydirectory/directory-server/internal/api"
	"github.com/communitydirectory/directory-server/internal/config"
	"github.com/communitydirectory/directory-server/internal/logger"
	"github.com/communitydirectory/directory-server/internal/ratelimit"
	"github.com/communitydirectory/directory-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	cacheHandle := do.MustInvoke[*CacheHandle](i)

	services := &api.Services{
		Directory:    do.MustInvoke[*service.DirectoryService](i),
		Stats:        do.MustInvoke[*service.StatsService](i),
		Search:       do.MustInvoke[*service.SearchService](i),
		Contribution: do.MustInvoke[*service.ContributionService](i),
	}

	handler := api.NewServer(services, api.Options{
		CORSOrigins:         cfg.Server.CORSOrigins,
		ContributionLimiter: ratelimit.New(cfg.Contribute.RatePerSecond, cfg.Contribute.Burst),
		Cache:               cacheHandle.Cache,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
