package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"

	"certreg/internal/config"
	"certreg/internal/confirm"
	"certreg/internal/core"
	"certreg/internal/db"
	"certreg/internal/http/handler"
	"certreg/internal/http/handler/middleware"
	"certreg/internal/http/payload"
	"certreg/internal/http/server"
	"certreg/internal/proof"
	"certreg/internal/registry"
	"certreg/internal/repository"
	"certreg/internal/session"
	"certreg/pkg/jwt"
	"certreg/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("certreg", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	deployment, err := config.LoadDeployment(cfg.DeploymentFile)
	if err != nil {
		logger.Errorw("failed to load deployment artifact", "error", err)
		return err
	}

	logger.Infow("deployment artifact loaded",
		"contract", deployment.ContractAddress,
		"network", deployment.Network,
		"chain_id", deployment.ChainID)

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// repository
	repo := repository.NewCertificateRepository(dbConn)
	if err := repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}

	signer, err := registry.NewSigner(cfg.IssuerPrivateKey)
	if err != nil {
		logger.Errorw("failed to load issuer key", "error", err)
		return err
	}

	// the service's own key acts as the connected wallet account
	sess := session.NewContext()
	sess.AccountsChanged([]common.Address{signer.Address()})
	unsubscribe := sess.Subscribe(func(account common.Address, state session.State) {
		logger.Infow("session account changed", "account", account.Hex(), "state", state.String())
	})
	defer unsubscribe()

	reg, err := registry.New(context.Background(), logger, client, signer, sess, deployment.Contract(), deployment.ABI)
	if err != nil {
		logger.Errorw("failed to create registry client", "error", err)
		return err
	}

	tracker := confirm.NewTracker(logger, client, cfg.ConfirmationDepth, confirm.DefaultInterval, cfg.ConfirmationTimeout)
	presenter := proof.NewPresenter()

	// certifier
	certifier := core.NewCertifier(
		logger,
		repo,
		jwtService,
		reg,
		tracker,
		presenter,
		reg.ChainID().Int64())

	// handler
	certHlr := handler.NewCertHandler(
		logger,
		payload.DecodeValidator{},
		certifier)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, certHlr.HandleAuthenticate)
	mux.HandleFunc(handler.IssueCertificate, certHlr.HandleIssueCertificate)
	mux.HandleFunc(handler.VerifyCertificate, certHlr.HandleVerifyCertificate)
	mux.HandleFunc(handler.CertificateProof, certHlr.HandleCertificateProof)
	mux.HandleFunc(handler.GetStats, certHlr.HandleGetStats)
	mux.HandleFunc(handler.GetIssuances, certHlr.HandleGetIssuances)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
