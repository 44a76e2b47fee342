package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"starwars_api/internal/database"
	"starwars_api/internal/repositories"
	"starwars_api/internal/server"
	"starwars_api/internal/services"
)

func newServeCommand(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != 0 {
				a.cfg.Port = port
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	gin.SetMode(a.cfg.GinMode)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db, a.log)

	if a.cfg.AutoMigrate {
		if err := database.RunMigrations(db, a.log); err != nil {
			return err
		}
	}

	var tokens services.TokenStore
	if a.cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     a.cfg.RedisAddr,
			Password: a.cfg.RedisPassword,
			DB:       a.cfg.RedisDB,
		})
		defer rdb.Close()

		redisRepo := repositories.NewRedisRepository(rdb)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisRepo.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", a.cfg.RedisAddr, err)
		}
		a.log.Info().Str("addr", a.cfg.RedisAddr).Msg("Connected to Redis, token revocation enabled")
		tokens = redisRepo
	}

	router := server.NewRouter(server.Deps{
		Config: a.cfg,
		DB:     db,
		Logger: a.log,
		Tokens: tokens,
	})
	srv := server.NewServer(a.cfg, router)

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("Shutting down server gracefully ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("Server shutdown")
	}
	a.log.Info().Msg("Server exiting")
	return nil
}
