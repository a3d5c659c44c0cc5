package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func openBackend(envConfig *config.Config) (storage.Store, error) {
	switch envConfig.StorageBackend {
	case config.BackendPostgres:
		return storage.OpenPostgres(envConfig)
	case config.BackendMemory:
		return storage.NewMemory(), nil
	default:
		return storage.OpenBadger(envConfig.BadgerPath)
	}
}

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	// Missing .env is fine, environment variables still apply
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	backend, err := openBackend(envConfig)
	if err != nil {
		logrus.WithError(err).WithField("backend", envConfig.StorageBackend).Fatal("storage.openBackend")
		return
	}
	defer backend.Close()

	delegator := operator.NewOperatorDelegator(backend)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(backend)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
