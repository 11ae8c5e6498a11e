package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/feevault-network/feevault-daemon/internal/config"
	"github.com/feevault-network/feevault-daemon/internal/core/application"
	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/settlement/settlementsim"
	dbbadger "github.com/feevault-network/feevault-daemon/internal/infrastructure/storage/db/badger"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/storage/db/inmemory"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/vault/httpvault"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/vault/vaultsim"
	httpinterface "github.com/feevault-network/feevault-daemon/internal/interfaces/http"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	var (
		ledgerRepo     domain.LedgerRepository
		escrowRepo     domain.EscrowRepository
		withdrawalRepo domain.WithdrawalRepository
	)
	switch config.GetString(config.DBTypeKey) {
	case config.DBBadger:
		dbManager, err := dbbadger.NewDbManager(config.GetDbDir(), nil)
		if err != nil {
			log.WithError(err).Fatal("error while opening db")
		}
		defer dbManager.Close()
		ledgerRepo = dbbadger.NewLedgerRepositoryImpl(dbManager)
		escrowRepo = dbbadger.NewEscrowRepositoryImpl(dbManager)
		withdrawalRepo = dbbadger.NewWithdrawalRepositoryImpl(dbManager)
	case config.DBInMemory:
		ledgerRepo = inmemory.NewLedgerRepositoryImpl()
		escrowRepo = inmemory.NewEscrowRepositoryImpl()
		withdrawalRepo = inmemory.NewWithdrawalRepositoryImpl()
	}

	var vault application.VaultService
	switch config.GetString(config.VaultTypeKey) {
	case config.VaultHTTP:
		vault = httpvault.NewService(
			config.GetString(config.VaultAddrKey),
			config.GetString(config.VaultAccountKey),
		)
	case config.VaultSim:
		vault = vaultsim.NewService()
		log.Warn("using the simulated vault, collected fees earn no yield")
	}

	rewardSvc := application.NewRewardService(
		ledgerRepo, escrowRepo, withdrawalRepo, vault, settlementsim.NewService(),
	)
	owner := config.GetString(config.OwnerKey)
	operatorSvc, err := application.NewOperatorService(
		ledgerRepo, escrowRepo, withdrawalRepo, rewardSvc, owner,
	)
	if err != nil {
		log.WithError(err).Fatal("error while creating operator service")
	}

	if err := bindAssets(operatorSvc, owner); err != nil {
		log.WithError(err).Fatal("error while binding configured assets")
	}

	addr := fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey))
	server := &http.Server{
		Addr:    addr,
		Handler: httpinterface.NewService(rewardSvc, operatorSvc).Router(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	group, ctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		log.Info("interface is listening on " + addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		select {
		case <-sigChan:
		case <-ctx.Done():
		}
		log.Debug("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.WithError(err).Fatal("daemon stopped with error")
	}
	log.Debug("exiting")
}

func bindAssets(operatorSvc application.OperatorService, owner string) error {
	pairs, err := config.GetAssets()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, pair := range pairs {
		asset, shareToken := pair[0], pair[1]
		err := operatorSvc.SupportAsset(ctx, owner, asset, shareToken)
		if err == application.ErrAssetAlreadySupported {
			continue
		}
		if err != nil {
			return err
		}
		log.WithField("asset", asset).Info("asset bound")
	}
	return nil
}
