// Command server runs the ContractEase API: contract lifecycle, signatures,
// and account endpoints over a PostgreSQL or in-memory store.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	accounthandler "contractease/internal/account/handler"
	accountservice "contractease/internal/account/service"
	clientstore "contractease/internal/account/store/client"
	userstore "contractease/internal/account/store/user"
	"contractease/internal/account/token"
	contracthandler "contractease/internal/contract/handler"
	contractmetrics "contractease/internal/contract/metrics"
	contractservice "contractease/internal/contract/service"
	contractstore "contractease/internal/contract/store/contract"
	"contractease/internal/platform/config"
	"contractease/internal/platform/database"
	"contractease/internal/platform/health"
	"contractease/internal/platform/httpserver"
	"contractease/internal/platform/logger"
	"contractease/internal/platform/tracer"
	signaturehandler "contractease/internal/signature/handler"
	signaturemetrics "contractease/internal/signature/metrics"
	signatureservice "contractease/internal/signature/service"
	signaturestore "contractease/internal/signature/store/signature"
	httptransport "contractease/internal/transport/http"
	request "contractease/pkg/platform/middleware/request"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	pool, err := database.New(database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close() //nolint:errcheck // shutdown path

	if pool != nil && cfg.Database.MigrateOnStart {
		if err := pool.Migrate(); err != nil {
			return err
		}
	}

	// Each store interface binds to PostgreSQL when a database is configured,
	// otherwise to the in-memory implementations (development mode).
	var (
		contracts  contractservice.ContractStore
		finalizer  signatureservice.ContractFinalizer
		signatures signatureservice.SignatureStore
		users      accountservice.UserStore
		clients    accountservice.ClientStore
	)
	if pool != nil {
		log.Info("using postgresql stores")
		cs := contractstore.NewPostgres(pool.DB())
		contracts, finalizer = cs, cs
		signatures = signaturestore.NewPostgres(pool.DB())
		users = userstore.NewPostgres(pool.DB())
		clients = clientstore.NewPostgres(pool.DB())
	} else {
		log.Info("no database configured, using in-memory stores")
		cs := contractstore.NewInMemory()
		contracts, finalizer = cs, cs
		signatures = signaturestore.NewInMemory()
		users = userstore.NewInMemory()
		clients = clientstore.NewInMemory()
	}

	issuer, err := token.NewIssuer([]byte(cfg.Auth.JWTSigningKey), cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	trc := tracer.NewOTel()
	accountSvc := accountservice.New(users, clients, issuer, log)
	contractSvc := contractservice.New(contracts, accountSvc, accountSvc,
		contractservice.WithLogger(log),
		contractservice.WithMetrics(contractmetrics.New()),
		contractservice.WithTracer(trc),
	)
	signatureSvc := signatureservice.New(signatures, finalizer,
		signatureservice.WithLogger(log),
		signatureservice.WithMetrics(signaturemetrics.New()),
		signatureservice.WithTracer(trc),
	)

	healthHandler := health.New()
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}

	router := httptransport.NewRouter(log, cfg.RequestTimeout, request.NewMetrics(),
		healthHandler,
		accounthandler.New(accountSvc, log),
		contracthandler.New(contractSvc, log),
		signaturehandler.New(signatureSvc, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
