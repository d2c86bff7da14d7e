package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"clientCompass/domain"
	"clientCompass/pkg/logger"
)

// ErrSeedNotFound is returned when a seed id does not exist in the loaded
// client table. Callers decide how to surface it; nothing here panics on an
// empty lookup.
var ErrSeedNotFound = errors.New("seed client not found")

type Service struct {
	snapshots SnapshotProvider
	cfg       Config
}

func NewService(snapshots SnapshotProvider, cfg Config) *Service {
	return &Service{
		snapshots: snapshots,
		cfg:       cfg,
	}
}

// SimilarClients ranks clients that never transacted by their aggregate
// similarity to the given seed clients. Each seed contributes its per-candidate
// scores and the totals are summed, so a candidate weakly similar to many
// seeds can outrank one strongly similar to a single seed. A limit <= 0
// returns the full ranking.
func (s *Service) SimilarClients(
	ctx context.Context,
	seedIDs []string,
	limit int,
) ([]domain.ClientRecommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(seedIDs) == 0 {
		return nil, errors.New("at least one seed id is required")
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	seeds := seedIDs
	if s.cfg.DedupeSeeds {
		seeds = dedupe(seedIDs)
	}

	seedSet := make(map[string]struct{}, len(seeds))
	for _, id := range seeds {
		seedSet[id] = struct{}{}
	}

	totals := make(map[string]int)

	for _, seedID := range seeds {
		seed, ok := snap.SeedByID(seedID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, seedID)
		}

		for candID, score := range scoreSeed(snap, s.cfg.Weights, seed) {
			if _, isSeed := seedSet[candID]; isSeed {
				continue
			}
			totals[candID] += score
		}
	}

	recs := make([]domain.ClientRecommendation, 0, len(totals))
	for id, score := range totals {
		recs = append(recs, domain.ClientRecommendation{
			ClientID: id,
			Score:    score,
		})
	}

	// descending by score; ties broken by id to keep output deterministic
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score == recs[j].Score {
			return recs[i].ClientID < recs[j].ClientID
		}
		return recs[i].Score > recs[j].Score
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	logger.Debug("similar_clients",
		"snapshot", snap.Version,
		"seeds", len(seeds),
		"candidates", len(totals),
		"returned", len(recs),
	)

	return recs, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
