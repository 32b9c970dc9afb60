package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peakform/peakformcom/internal/profile"
	"github.com/peakform/peakformcom/internal/telemetry/metrics"
	"github.com/peakform/peakformcom/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type measurementsRepo interface {
	Add(ctx context.Context, m Measurement) (*Measurement, error)
	Get(ctx context.Context, id string) (*Measurement, error)
	List(ctx context.Context, params ListParams) (_ []Measurement, total int, err error)
	ListAll(ctx context.Context, params MeasurementParams) ([]Measurement, error)
	Delete(ctx context.Context, id string) error
	MeasurementsCount(ctx context.Context, params MeasurementParams) (int, error)
}

type profilesRepo interface {
	Get(ctx context.Context, clientID string) (*profile.Snapshot, error)
}

// SeriesPoint is one weight chart point, oldest first in the series.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Overview is the full derived progress snapshot for one client. It is
// recomputed from measurements and the profile on demand and cached for a
// short while, never persisted.
type Overview struct {
	Cards        []MetricCard  `json:"cards"`
	Series       []SeriesPoint `json:"series"`
	Achievements []Achievement `json:"achievements"`
	Monthly      []MonthlyStat `json:"monthly"`
	Messages     []Message     `json:"messages"`
}

type Analyzer struct {
	repo     measurementsRepo
	profiles profilesRepo
	cache    *freecache.Cache
	cacheTTL int // seconds
	metrics  *metrics.Manager
}

func NewAnalyzer(
	repo measurementsRepo,
	profiles profilesRepo,
	cacheTTLSeconds int,
	metricsManager *metrics.Manager,
) *Analyzer {
	megabyte := 1024 * 1024
	return &Analyzer{
		repo:     repo,
		profiles: profiles,
		cache:    freecache.NewCache(10 * megabyte),
		cacheTTL: cacheTTLSeconds,
		metrics:  metricsManager,
	}
}

// Overview derives the complete progress snapshot for the given client.
// Invalid stored records are silently skipped, a missing profile degrades
// to an empty one, and every stage tolerates empty input, so the endpoint
// never fails just because a client has no data yet.
func (a *Analyzer) Overview(ctx context.Context, clientID string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client_id", clientID))

	// freecache treats a non-positive expiry as "never expire", so the
	// "ttl 0 disables caching" contract is enforced here, not passed down
	cacheKey := []byte(fmt.Sprintf("overview::%s", clientID))
	if a.cacheTTL > 0 {
		if cachedBytes, err := a.cache.Get(cacheKey); err == nil {
			var cached Overview
			if err := json.Unmarshal(cachedBytes, &cached); err == nil {
				log.Tracef("overview for %s served from cache", clientID)
				a.metrics.CounterOverviewCacheHits.Inc()
				span.SetAttributes(attribute.Bool("cache_hit", true))
				return &cached, nil
			}
			log.Errorf("failed to unmarshal cached overview for %s: %s", clientID, err)
		}
	}

	records, err := a.repo.ListAll(ctx, MeasurementParams{ClientID: clientID})
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	snapshot, err := a.profiles.Get(ctx, clientID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		snapshot = &profile.Snapshot{ClientID: clientID}
	}

	working := make([]Measurement, 0, len(records))
	for _, m := range records {
		if m.Valid() {
			working = append(working, m)
		}
	}
	SortDescending(working)

	groups := Group(working)
	weights := groups.Of(TypeWeight)

	sum := SummarizeWeight(weights, *snapshot)

	overview := &Overview{
		Cards:        DeriveMetrics(weights, *snapshot),
		Series:       weightSeries(weights),
		Achievements: EvaluateAchievements(weights, snapshot.TargetWeight),
		Monthly:      AggregateMonthly(weights),
		Messages:     ComposeMessages(sum),
	}

	a.metrics.CounterOverviewComputed.Inc()

	if a.cacheTTL <= 0 {
		return overview, nil
	}

	overviewBytes, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("failed to marshal overview for cache, client %s: %s", clientID, err)
		return overview, nil
	}
	if err := a.cache.Set(cacheKey, overviewBytes, a.cacheTTL); err != nil {
		log.Errorf("failed to set overview cache for %s: %s", clientID, err)
	}

	return overview, nil
}

// InvalidateOverview drops the cached overview after a measurement write.
func (a *Analyzer) InvalidateOverview(clientID string) {
	a.cache.Del([]byte(fmt.Sprintf("overview::%s", clientID)))
}

// weightSeries turns the newest-first weight records into chart points,
// oldest first.
func weightSeries(weights []Measurement) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(weights))
	for i := len(weights) - 1; i >= 0; i-- {
		points = append(points, SeriesPoint{
			Date:  weights[i].RecordedAt,
			Value: weights[i].Value,
		})
	}
	return points
}
