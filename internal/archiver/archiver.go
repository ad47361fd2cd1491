// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package archiver runs the nightly sweep that moves past-deadline casting
calls into the archive, replacing the manual cleanup the editors used to
do by hand.
*/
package archiver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mickey-farmer/startingOutOK/internal/casting"
)

// sweepTimeout bounds one archive pass.
const sweepTimeout = 2 * time.Minute

// Archiver schedules the past-deadline sweep via cron.
type Archiver struct {
	cron    *cron.Cron
	casting *casting.Service
	spec    string
	logger  *slog.Logger
}

// New creates an Archiver firing on the given cron spec ("@daily" in the
// default configuration).
func New(castingService *casting.Service, spec string, logger *slog.Logger) *Archiver {
	return &Archiver{
		cron:    cron.New(),
		casting: castingService,
		spec:    spec,
		logger:  logger,
	}
}

// Start registers the sweep and starts the scheduler. One sweep runs
// immediately so a redeploy never leaves expired calls on the front page
// until the next tick.
func (archiver *Archiver) Start() error {
	_, err := archiver.cron.AddFunc(archiver.spec, archiver.sweep)
	if err != nil {
		return fmt.Errorf("archiver_schedule_failed: %w", err)
	}

	archiver.cron.Start()
	archiver.logger.Info("archiver started", slog.String("spec", archiver.spec))

	go archiver.sweep()
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep to finish.
func (archiver *Archiver) Stop() {
	stopCtx := archiver.cron.Stop()
	<-stopCtx.Done()
	archiver.logger.Info("archiver stopped")
}

func (archiver *Archiver) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	count, err := archiver.casting.ArchiveExpired(ctx)
	if err != nil {
		archiver.logger.Error("archive sweep failed", slog.String("error", err.Error()))
		return
	}
	archiver.logger.Info("archive sweep complete", slog.Int("archived", count))
}
