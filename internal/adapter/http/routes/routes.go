package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "afclean/docs" // swagger docs
	"afclean/internal/adapter/http/handlers"
	"afclean/internal/adapter/persistence"
	"afclean/internal/infrastructure/config"
	"afclean/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run opens the configured store and serves the API until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := persistence.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("[app] store close failed")
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           NewRouter(cfg, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.Server.Port, "driver": cfg.Storage.Driver}).Info("[app] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("[app] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires use cases and handlers over the given store.
func NewRouter(cfg *config.Config, store *persistence.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addHealthRoute(router)

	patcher := usecase.NewJobPatcher(store.Jobs)
	ledgerUseCase := usecase.NewLedgerUseCase(store.Ledger, cfg.Ledger.DescriptionPrefix)
	jobUseCase := usecase.NewJobUseCase(store.Jobs, patcher, ledgerUseCase)
	evidenceUseCase := usecase.NewEvidenceUseCase(store.Jobs, patcher)
	settingsUseCase := usecase.NewSettingsUseCase(store.Settings)

	jobHandler := handlers.NewJobHandler(jobUseCase, evidenceUseCase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler)
	addLedgerRoutes(v1, ledgerHandler)
	addSettingsRoutes(v1, settingsHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithField("path", c.Request.URL.Path).Errorf("[app] recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
