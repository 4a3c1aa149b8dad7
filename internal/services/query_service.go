// Package services wires the loaded ledger to its collaborators: the
// result cache and the optional query-event publisher.
package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"vendite/internal/amqp"
	"vendite/internal/cache"
	"vendite/internal/core"
	applog "vendite/internal/log"
)

// EventPublisher is satisfied by the AMQP client. A nil publisher
// disables event publishing.
type EventPublisher interface {
	PublishQueryExecuted(ctx context.Context, msg *amqp.QueryExecutedMessage) error
	Close() error
}

// Result is the outcome of one query, ready for display.
type Result struct {
	Found  bool
	Amount string
	Boxes  string

	amountCents int64
	boxesTotal  int64
}

// QueryService answers ledger queries. The ledger is immutable, so
// identical queries are served from an LRU cache; publishing happens on
// every call, cached or not.
type QueryService struct {
	ledger  *core.Ledger
	events  EventPublisher
	results *cache.LRUCache[Result]

	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// NewQueryService creates a service over an already-loaded ledger.
// events may be nil.
func NewQueryService(ledger *core.Ledger, events EventPublisher, cacheSize int, cacheTTL time.Duration) *QueryService {
	s := &QueryService{
		ledger:      ledger,
		events:      events,
		results:     cache.NewLRUCache[Result](cacheSize, cacheTTL),
		stopCleanup: make(chan struct{}),
	}
	go s.startCleanup(cacheTTL)
	return s
}

// startCleanup periodically sweeps expired results so an idle cache does
// not hold stale entries until their keys are requested again.
func (s *QueryService) startCleanup(interval time.Duration) {
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.results.CleanExpired()
		case <-s.stopCleanup:
			return
		}
	}
}

// Years returns the ledger's year options, sentinel first.
func (s *QueryService) Years() []string {
	return s.ledger.Years()
}

// Query runs one point query against the ledger.
func (s *QueryService) Query(ctx context.Context, country, product string, filter core.TimeFilter) Result {
	key := cacheKey(country, product, filter)

	result, hit := s.results.Get(key)
	if !hit {
		sum, found := s.ledger.Query(country, product, filter)
		result = Result{Found: found}
		if found {
			result.Amount = sum.AmountString()
			result.Boxes = sum.BoxesString()
			result.amountCents = sum.Amount.Cents
			result.boxesTotal = sum.Boxes
		}
		s.results.Set(key, result)
	}

	s.publish(ctx, country, product, filter, result)

	fields := applog.NewFields().
		WithComponent(applog.ComponentQuery).
		WithQuery(country, product).
		WithOutcome(result.Found, result.amountCents, result.boxesTotal)
	fields["filter"] = filter.String()
	fields["cache_hit"] = hit
	slog.DebugContext(ctx, "Query executed", fields.ToSlice()...)

	return result
}

func (s *QueryService) publish(ctx context.Context, country, product string, filter core.TimeFilter, r Result) {
	if s.events == nil {
		return
	}
	msg := amqp.NewQueryExecutedMessage(country, product, filter.String(), r.Found, r.amountCents, r.boxesTotal)
	if err := s.events.PublishQueryExecuted(ctx, msg); err != nil {
		// Event publishing never fails the query.
		fields := applog.NewFields().
			WithComponent(applog.ComponentQuery).
			WithOperation(applog.OpPublish).
			WithQuery(country, product).
			WithError(err)
		slog.WarnContext(ctx, "Failed to publish query event", fields.ToSlice()...)
	}
}

// CacheSize returns the number of cached results, for health reporting.
func (s *QueryService) CacheSize() int {
	return s.results.Size()
}

// Close stops the cache sweeper and releases the event publisher, if any.
func (s *QueryService) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopCleanup)
	})
	if s.events != nil {
		return s.events.Close()
	}
	return nil
}

func cacheKey(country, product string, filter core.TimeFilter) string {
	return strings.Join([]string{core.MatchKey(country), core.MatchKey(product), filter.String()}, "|")
}
