// Package service implements the reconciliation run
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"toolwatch/internal/core/reconcile"
	"toolwatch/internal/modkit/repokit"
	perr "toolwatch/internal/platform/errors"
	"toolwatch/internal/platform/logger"
	anomdom "toolwatch/internal/services/anomalies/domain"
	epdom "toolwatch/internal/services/episodes/domain"
	evdom "toolwatch/internal/services/events/domain"
	"toolwatch/internal/services/janitor/domain"
	"toolwatch/internal/services/janitor/repo"
)

// Config for the janitor service
type Config struct {
	MaxDuration   time.Duration // episode ceiling; <=0 = reconcile default
	Workers       int
	UserPageSize  int
	EventPageSize int
	BatchSize     int
	Retries       int // extra attempts on retryable store errors
	Reset         bool
	DryRun        bool
}

// Service implements domain.RunnerPort
type Service struct {
	Events    evdom.ReaderPort
	Episodes  epdom.WriterPort
	Anomalies anomdom.WriterPort

	// audit trail; DB may be nil in tests, which skips the run row
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]

	Log     logger.Logger
	Machine *reconcile.Machine
	Cfg     Config
}

// New constructs a new janitor service
func New(p domain.Ports, db repokit.TxRunner, b repokit.Binder[repo.Storage], log logger.Logger, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.UserPageSize <= 0 {
		cfg.UserPageSize = 500
	}
	if cfg.EventPageSize <= 0 {
		cfg.EventPageSize = 5000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &Service{
		Events:    p.Events,
		Episodes:  p.Episodes,
		Anomalies: p.Anomalies,
		DB:        db,
		Binder:    b,
		Log:       log,
		Machine:   reconcile.New(reconcile.Classifier{MaxDuration: cfg.MaxDuration}),
		Cfg:       cfg,
	}
}

// userResult carries one user's write counts back to the run loop
type userResult struct {
	episodes  int
	anomalies int
	err       error
}

// Run implements domain.RunnerPort. Users fan out over a bounded worker set;
// a store failure fails only that user's batch, while a structurally invalid
// event aborts the whole run
func (s *Service) Run(ctx context.Context) (domain.RunReport, error) {
	maxDur := s.Cfg.MaxDuration
	if maxDur <= 0 {
		maxDur = reconcile.DefaultMaxDuration
	}

	report := domain.RunReport{
		RunID:              uuid.NewString(),
		StartedAt:          time.Now().UTC(),
		MaxDurationMinutes: int(maxDur / time.Minute),
		Reset:              s.Cfg.Reset,
	}

	audit := s.DB != nil && s.Binder != nil && !s.Cfg.DryRun
	if audit {
		if err := s.Binder.Bind(s.DB).InsertRun(ctx, report.RunID, report.MaxDurationMinutes, report.Reset); err != nil {
			return report, err
		}
	}

	if s.Cfg.Reset && !s.Cfg.DryRun {
		if err := s.Episodes.Truncate(ctx); err != nil {
			return report, err
		}
		if err := s.Anomalies.Truncate(ctx); err != nil {
			return report, err
		}
		s.Log.Info().Str("run_id", report.RunID).Msg("reset: episodes and anomalies truncated")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		fatalErr error
	)
	fatal := func(err error) {
		mu.Lock()
		if fatalErr == nil {
			fatalErr = err
			cancel()
		}
		mu.Unlock()
	}

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

	afterUser := int64(0)
pages:
	for {
		users, err := s.Events.ListUsers(ctx, afterUser, s.Cfg.UserPageSize)
		if err != nil {
			fatal(err)
			break
		}
		if len(users) == 0 {
			break
		}

		results := make([]userResult, len(users))
		for i, uid := range users {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, uid int64) {
				defer func() { <-sem; wg.Done() }()
				ep, an, err := s.processUser(ctx, uid)
				results[i] = userResult{episodes: ep, anomalies: an, err: err}
			}(i, uid)
		}
		wg.Wait()

		for i, r := range results {
			report.UsersTotal++
			report.EpisodesWritten += int64(r.episodes)
			report.AnomaliesWritten += int64(r.anomalies)
			if r.err == nil {
				continue
			}
			var inv *reconcile.ErrInvalidEvent
			if errors.As(r.err, &inv) {
				fatal(r.err)
				break pages
			}
			if ctx.Err() != nil {
				fatal(ctx.Err())
				break pages
			}
			report.UsersFailed++
			s.Log.Error().Err(r.err).Int64("user_id", users[i]).Msg("user reconciliation failed")
		}

		afterUser = users[len(users)-1]
	}

	report.FinishedAt = time.Now().UTC()

	mu.Lock()
	err := fatalErr
	mu.Unlock()

	if audit && err == nil {
		if ferr := s.Binder.Bind(s.DB).FinishRun(ctx, report); ferr != nil {
			s.Log.Error().Err(ferr).Str("run_id", report.RunID).Msg("finish run row failed")
		}
	}

	s.Log.Info().
		Str("run_id", report.RunID).
		Int64("users", report.UsersTotal).
		Int64("users_failed", report.UsersFailed).
		Int64("episodes", report.EpisodesWritten).
		Int64("anomalies", report.AnomaliesWritten).
		Msg("reconciliation run finished")

	return report, err
}

// processUser loads one user's full ordered stream, reduces it, and persists
// the outcome in batches. Returns the number of episodes and anomalies written
func (s *Service) processUser(ctx context.Context, userID int64) (int, int, error) {
	var evs []reconcile.Event
	after := evdom.AfterKey{}
	for {
		rows, next, err := s.Events.ListByUser(ctx, evdom.ListInput{
			UserID: userID, After: after, Limit: s.Cfg.EventPageSize,
		})
		if err != nil {
			return 0, 0, err
		}
		if len(rows) == 0 {
			break
		}
		for _, r := range rows {
			evs = append(evs, toMachineEvent(r))
		}
		after = next
	}

	out, err := s.Machine.Run(evs)
	if err != nil {
		return 0, 0, err
	}
	if s.Cfg.DryRun {
		return 0, 0, nil
	}

	var epWritten int
	for start := 0; start < len(out.Episodes); start += s.Cfg.BatchSize {
		end := min(start+s.Cfg.BatchSize, len(out.Episodes))
		batch := make([]epdom.EpisodeWrite, 0, end-start)
		for _, ep := range out.Episodes[start:end] {
			batch = append(batch, epdom.EpisodeWrite{
				UserID:       userID,
				OpenType:     string(ep.OpenType),
				StartedAt:    ep.StartAt,
				EndedAt:      ep.EndAt,
				OpenEventID:  ep.OpenEventID,
				CloseEventID: ep.CloseEventID,
			})
		}
		n := 0
		err := s.withRetry(ctx, func() error {
			var werr error
			n, werr = s.Episodes.WriteBatch(ctx, batch)
			return werr
		})
		if err != nil {
			return epWritten, 0, err
		}
		epWritten += n
	}

	var anWritten int
	for start := 0; start < len(out.Anomalies); start += s.Cfg.BatchSize {
		end := min(start+s.Cfg.BatchSize, len(out.Anomalies))
		batch := make([]anomdom.AnomalyWrite, 0, end-start)
		for _, a := range out.Anomalies[start:end] {
			batch = append(batch, anomdom.AnomalyWrite{
				UserID:              userID,
				OpenType:            openTypePtr(a.OpenType),
				OccurredAt:          a.At,
				EventID:             a.EventID,
				CounterpartyEventID: a.CounterpartyEventID,
				Detail:              string(a.Detail),
			})
		}
		n := 0
		err := s.withRetry(ctx, func() error {
			var werr error
			n, werr = s.Anomalies.WriteBatch(ctx, batch)
			return werr
		})
		if err != nil {
			return epWritten, anWritten, err
		}
		anWritten += n
	}

	return epWritten, anWritten, nil
}

// withRetry reruns fn on retryable store errors with a short growing pause
func (s *Service) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(); err == nil || !perr.Retryable(err) || attempt >= s.Cfg.Retries {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		}
	}
}

func toMachineEvent(e evdom.Event) reconcile.Event {
	typ := reconcile.OpenNone
	if e.OpenType != nil {
		typ = reconcile.OpenType(*e.OpenType)
	}
	return reconcile.Event{
		ID:       e.ID,
		UserID:   e.UserID,
		At:       e.OccurredAt,
		Kind:     reconcile.Kind(e.Kind),
		OpenType: typ,
	}
}

func openTypePtr(t reconcile.OpenType) *string {
	if t == reconcile.OpenNone {
		return nil
	}
	s := string(t)
	return &s
}
