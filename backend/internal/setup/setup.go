package setup

import (
	"github.com/itchan-dev/threadboard/backend/internal/handler"
	"github.com/itchan-dev/threadboard/backend/internal/service"
	"github.com/itchan-dev/threadboard/backend/internal/storage/memory"
	"github.com/itchan-dev/threadboard/backend/internal/utils"
	"github.com/itchan-dev/threadboard/shared/config"
	"github.com/itchan-dev/threadboard/shared/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *memory.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
// Board gauges are registered on reg.
func SetupDependencies(cfg *config.Config, reg prometheus.Registerer) (*Dependencies, error) {
	storage := memory.New()
	if err := metrics.RegisterBoardGauges(reg, storage); err != nil {
		return nil, err
	}

	validator := utils.NewPostValidator(cfg.Public.MaxTextLen)
	passwords := service.NewPasswords(cfg.Public.BcryptCost)

	thread := service.NewThread(storage, validator, passwords, cfg.Public)
	reply := service.NewReply(storage, validator, passwords)

	h := handler.New(thread, reply)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
