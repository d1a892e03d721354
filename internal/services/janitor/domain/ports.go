package domain

import (
	"context"

	anomdom "toolwatch/internal/services/anomalies/domain"
	epdom "toolwatch/internal/services/episodes/domain"
	evdom "toolwatch/internal/services/events/domain"
)

// RunnerPort is the external port for the reconciliation job
type RunnerPort interface {
	// Run reconciles every user's event stream into episodes and anomalies
	Run(ctx context.Context) (RunReport, error)
}

// Ports are dependencies injected into the janitor module
type Ports struct {
	Events    evdom.ReaderPort   // required
	Episodes  epdom.WriterPort   // required
	Anomalies anomdom.WriterPort // required
}
