package background

import (
	"context"
	"log"
	"time"

	samplinguc "github.com/promorang/sampling-service/internal/usecase/sampling"
)

type BackgroundTasks struct {
	SamplingUsecase samplinguc.SamplingUsecase
}

func NewBackgroundTasks(samplingUC samplinguc.SamplingUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		SamplingUsecase: samplingUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startActivationExpirySweep(ctx)
}

// Expired activations are normally discovered lazily on the next user
// interaction; the sweep catches activations that get no further traffic.
func (bt *BackgroundTasks) startActivationExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.SamplingUsecase.ExpireDueActivations(ctx); err != nil {
				log.Printf("Activation expiry sweep error: %v\n", err)
			}
		}
	}
}
