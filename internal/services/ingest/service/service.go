// Package service implements the CSV loader
package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"toolwatch/internal/core/normalize"
	"toolwatch/internal/platform/logger"
	evdom "toolwatch/internal/services/events/domain"
	"toolwatch/internal/services/ingest/domain"
)

// Config for the ingest service
type Config struct {
	BatchSize int // rows per insert; defaults to 100 if <=0
}

// Service implements domain.RunnerPort
type Service struct {
	Events evdom.WriterPort
	Norm   *normalize.Normalizer
	Log    logger.Logger
	Cfg    Config
}

// New constructs a new ingest service
func New(events evdom.WriterPort, log logger.Logger, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Service{Events: events, Norm: normalize.New(), Log: log, Cfg: cfg}
}

// RunFile implements domain.RunnerPort. The CSV must carry a header naming
// timestamp, event, open_type, and user_id columns; extra columns are ignored.
// Rows with an unusable timestamp, kind, or user id are dropped and counted,
// while an unrecognized open_type degrades to NULL so the reconciler can still
// flag the open
func (s *Service) RunFile(ctx context.Context, path string) (domain.Report, error) {
	report := domain.Report{BatchID: uuid.NewString()}

	f, err := os.Open(path)
	if err != nil {
		return report, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return report, fmt.Errorf("ingest: read header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[s.Norm.Token(name)] = i
	}
	for _, need := range []string{"timestamp", "event", "user_id"} {
		if _, ok := cols[need]; !ok {
			return report, fmt.Errorf("ingest: missing column %q", need)
		}
	}

	batch := make([]evdom.EventWrite, 0, s.Cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.Events.WriteBatch(ctx, batch)
		if err != nil {
			return err
		}
		report.RowsInserted += int64(n)
		report.RowsSkipped += int64(len(batch) - n)
		batch = batch[:0]
		return nil
	}

	cell := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return s.Norm.Token(rec[i])
	}

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, fmt.Errorf("ingest: read row: %w", err)
		}
		report.RowsRead++

		empty := true
		for _, v := range rec {
			if v != "" {
				empty = false
				break
			}
		}
		if empty {
			report.DroppedEmpty++
			continue
		}

		ts, err := strconv.ParseInt(cell(rec, "timestamp"), 10, 64)
		if err != nil {
			report.DroppedTime++
			continue
		}

		kind := cell(rec, "event")
		if kind != evdom.KindOpened && kind != evdom.KindClosed {
			report.DroppedKind++
			continue
		}

		uid, err := strconv.ParseInt(cell(rec, "user_id"), 10, 64)
		if err != nil || uid <= 0 {
			report.DroppedUser++
			continue
		}

		var openType *string
		if t := cell(rec, "open_type"); t == evdom.OpenAuto || t == evdom.OpenManual {
			openType = &t
		}

		batch = append(batch, evdom.EventWrite{
			UserID:     uid,
			OccurredAt: ts,
			Kind:       kind,
			OpenType:   openType,
		})
		if len(batch) >= s.Cfg.BatchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}
	}
	if err := flush(); err != nil {
		return report, err
	}

	s.Log.Info().
		Str("batch_id", report.BatchID).
		Int64("rows", report.RowsRead).
		Int64("inserted", report.RowsInserted).
		Int64("deduped", report.RowsSkipped).
		Int64("dropped_kind", report.DroppedKind).
		Msg("csv load finished")

	return report, nil
}
