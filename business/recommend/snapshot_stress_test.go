//go:build !integration

package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"clientCompass/domain"
)

// scenario params
const (
	stressNumClients    = 50000
	stressNumCountries  = 30
	stressNumCities     = 200
	stressNumSegments   = 4
	stressTransactedPct = 40
)

var stressPremiums = []string{"standard", "gold", "platinum"}

func TestSnapshotScoring_LargeTable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	clients := make([]domain.Client, 0, stressNumClients)
	transacted := make(map[string]struct{})

	for i := 0; i < stressNumClients; i++ {
		id := fmt.Sprintf("c%06d", i)

		clients = append(clients, domain.Client{
			ClientID:      id,
			Country:       fmt.Sprintf("country%d", rng.Intn(stressNumCountries)),
			Nationality:   fmt.Sprintf("nat%d", rng.Intn(stressNumCountries)),
			City:          fmt.Sprintf("city%d", rng.Intn(stressNumCities)),
			Gender:        []string{"F", "M"}[rng.Intn(2)],
			Segment:       fmt.Sprintf("seg%d", rng.Intn(stressNumSegments)),
			PremiumStatus: stressPremiums[rng.Intn(len(stressPremiums))],
			Contactable:   rng.Intn(10) != 0,
		})

		if rng.Intn(100) < stressTransactedPct {
			transacted[id] = struct{}{}
		}
	}

	snap := BuildSnapshot(clients, transacted)
	t.Logf("snapshot: clients=%d eligible=%d cohorts=%d",
		len(clients), len(snap.Eligible()), len(snap.cohorts))

	svc := NewService(&staticProvider{snap: snap}, DefaultConfig())

	seeds := []string{"c000000", "c000001", "c000002"}
	recs, err := svc.SimilarClients(context.Background(), seeds, 50)
	if err != nil {
		t.Fatalf("SimilarClients: %v", err)
	}

	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if len(recs) > 50 {
		t.Fatalf("limit not honored, got %d", len(recs))
	}

	maxTotal := DefaultWeights().MaxScore() * len(seeds)
	for i, rec := range recs {
		if rec.Score <= 0 || rec.Score > maxTotal {
			t.Fatalf("score %d out of range at rank %d", rec.Score, i)
		}
		if i > 0 && recs[i-1].Score < rec.Score {
			t.Fatalf("ranking not descending at %d", i)
		}
	}

	t.Logf("returned=%d topScore=%d", len(recs), recs[0].Score)
}
