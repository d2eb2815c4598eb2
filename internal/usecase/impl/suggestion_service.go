package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"chirpmap/config"
	deliverycontext "chirpmap/internal/delivery/context"
	"chirpmap/internal/domain/entity"
	"chirpmap/internal/domain/service"
	"chirpmap/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type suggestionService struct {
	provider service.GeoProvider
	logger   *slog.Logger

	debounce      time.Duration
	lookupTimeout time.Duration
	concurrency   int

	mu          sync.Mutex
	seq         uint64 // highest sequence number issued
	query       string
	suggestions []entity.LocationCandidate
	loading     bool
	failed      bool
	supersede   context.CancelFunc
	closed      bool

	inflight sync.WaitGroup
}

// NewSuggestionService creates a suggestion controller for a single slot
func NewSuggestionService(provider service.GeoProvider, cfg *config.Config, logger *slog.Logger) usecase.SuggestionUsecase {
	srv := &suggestionService{
		provider:      provider,
		logger:        logger,
		lookupTimeout: 15 * time.Second,
		concurrency:   4,
	}

	if cfg != nil && cfg.Suggestion != nil {
		srv.debounce = cfg.Suggestion.Debounce
		if cfg.Suggestion.LookupTimeout > 0 {
			srv.lookupTimeout = cfg.Suggestion.LookupTimeout
		}
		if cfg.Suggestion.EnrichConcurrency > 0 {
			srv.concurrency = cfg.Suggestion.EnrichConcurrency
		}
	}

	return srv
}

// NewSuggestionControllerFactory builds per-slot controllers sharing one provider
func NewSuggestionControllerFactory(provider service.GeoProvider, cfg *config.Config, logger *slog.Logger) usecase.SuggestionControllerFactory {
	return func() usecase.SuggestionUsecase {
		return NewSuggestionService(provider, cfg, logger)
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitQuery issues a new sequence number and supersedes whatever was pending.
func (srv *suggestionService) SubmitQuery(ctx context.Context, text string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed {
		return
	}

	srv.seq++
	seq := srv.seq
	srv.query = text

	if srv.supersede != nil {
		srv.supersede()
		srv.supersede = nil
	}

	if strings.TrimSpace(text) == "" {
		srv.suggestions = nil
		srv.loading = false
		srv.failed = false

		return
	}

	srv.loading = true

	// The token only marks the lookup as superseded. Provider calls run on their own
	// context so an in-flight request is allowed to finish.
	base := context.WithoutCancel(ctx)
	token, cancelToken := context.WithCancel(base)
	callCtx, cancelCall := context.WithTimeout(base, srv.lookupTimeout)
	srv.supersede = cancelToken

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()
		defer cancelCall()
		defer cancelToken()

		srv.lookup(callCtx, token, seq, text)
	}()
}

func (srv *suggestionService) lookup(ctx, token context.Context, seq uint64, text string) {
	logger := srv.log(ctx).With(slog.Uint64("seq", seq), slog.String("provider", srv.provider.Name()))

	if srv.debounce > 0 {
		timer := time.NewTimer(srv.debounce)
		select {
		case <-token.Done():
			timer.Stop()
			logger.Debug("Suggestion lookup superseded during debounce")

			return
		case <-timer.C:
		}
	}

	if token.Err() != nil {
		return
	}

	raws, err := srv.provider.Suggest(ctx, text)
	if err != nil {
		logger.Warn("Suggestion lookup failed", slog.Any("error", err))
		srv.apply(logger, seq, nil, true)

		return
	}

	if token.Err() != nil {
		logger.Debug("Dropping stale suggestions", slog.Int("count", len(raws)))

		return
	}

	candidates := srv.enrich(ctx, token, logger, raws)
	srv.apply(logger, seq, candidates, false)
}

// enrich fetches coordinates for bare candidates. A failed retrieval keeps the candidate bare.
func (srv *suggestionService) enrich(ctx, token context.Context, logger *slog.Logger, raws []service.RawSuggestion) []entity.LocationCandidate {
	candidates := make([]entity.LocationCandidate, 0, len(raws))
	refs := make([]string, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))

	for _, raw := range raws {
		candidate := candidateFromSuggestion(raw)
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		seen[candidate.ID] = struct{}{}

		candidates = append(candidates, candidate)
		refs = append(refs, raw.Ref)
	}

	g := new(errgroup.Group)
	g.SetLimit(srv.concurrency)

	for i := range candidates {
		if candidates[i].Position.IsEnriched() || refs[i] == "" {
			continue
		}

		g.Go(func() error {
			if token.Err() != nil {
				return nil
			}

			coords, err := srv.provider.RetrieveDetail(ctx, refs[i])
			if err != nil {
				logger.Warn("Candidate enrichment failed", slog.String("candidate_id", candidates[i].ID), slog.Any("error", err))

				return nil
			}
			if coords != nil && coords.IsValid() {
				candidates[i] = candidates[i].WithPosition(entity.Enriched(*coords))
			}

			return nil
		})
	}

	_ = g.Wait()

	return candidates
}

// apply publishes a lookup result only when it belongs to the latest issued query.
func (srv *suggestionService) apply(logger *slog.Logger, seq uint64, candidates []entity.LocationCandidate, failed bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if seq != srv.seq || srv.closed {
		logger.Debug("Dropping stale suggestion response", slog.Uint64("latest_seq", srv.seq))

		return
	}

	srv.suggestions = candidates
	srv.loading = false
	srv.failed = failed

	logger.Debug("Suggestions updated", slog.Int("count", len(candidates)), slog.Bool("failed", failed))
}

func (srv *suggestionService) CurrentSuggestions() []entity.LocationCandidate {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return append([]entity.LocationCandidate(nil), srv.suggestions...)
}

func (srv *suggestionService) IsLoading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loading
}

func (srv *suggestionService) Failed() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.failed
}

func (srv *suggestionService) Snapshot() usecase.SuggestionSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return usecase.SuggestionSnapshot{
		Query:       srv.query,
		Seq:         srv.seq,
		Suggestions: append([]entity.LocationCandidate{}, srv.suggestions...),
		Loading:     srv.loading,
		Failed:      srv.failed,
	}
}

func (srv *suggestionService) Wait() {
	srv.inflight.Wait()
}

func (srv *suggestionService) Close() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.closed = true
	srv.loading = false
	if srv.supersede != nil {
		srv.supersede()
		srv.supersede = nil
	}
}

func candidateFromSuggestion(raw service.RawSuggestion) entity.LocationCandidate {
	id := raw.Ref
	if id == "" {
		id = uuid.NewString()
	}

	categories := append(append([]string{}, raw.Categories...), raw.FeatureType)

	candidate := entity.LocationCandidate{
		ID:                 id,
		Name:               strings.TrimSpace(raw.Name),
		SubtitleName:       strings.TrimSpace(raw.PlaceFormatted),
		SubtitleExternalID: strings.TrimSpace(raw.ExternalID),
		Category:           entity.FirstCategory(categories...),
		Position:           entity.Bare(),
	}
	if raw.Coordinates != nil && raw.Coordinates.IsValid() {
		candidate.Position = entity.Enriched(*raw.Coordinates)
	}

	return candidate
}
