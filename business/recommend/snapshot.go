package recommend

import (
	"time"

	"clientCompass/domain"

	"github.com/google/uuid"
)

// SeedClient holds the demographic attributes of a seed, looked up in the
// original (unfiltered) client table. First row wins on duplicate ids.
type SeedClient struct {
	ClientID      string
	Country       string
	Nationality   string
	City          string
	Gender        string
	Segment       string
	PremiumStatus string
}

// EligibleClient is a contactable client with the contactability sub-flags
// dropped and prior transaction history resolved against the transaction set.
type EligibleClient struct {
	ClientID      string
	Country       string
	Nationality   string
	City          string
	Gender        string
	Segment       string
	PremiumStatus string
	HasTransacted bool
}

type cohortKey struct {
	segment       string
	premiumStatus string
}

// Snapshot is an immutable view of the loaded client and transaction tables,
// with candidate cohorts indexed by (segment, premium status) so scoring a
// seed only touches clients that can actually be candidates for it.
type Snapshot struct {
	Version string
	BuiltAt time.Time

	seeds    map[string]SeedClient
	eligible []EligibleClient
	cohorts  map[cohortKey][]int
}

// BuildSnapshot derives the eligibility-filtered view from the full client
// table and the set of client ids appearing in the transaction table. Empty
// inputs yield an empty snapshot.
func BuildSnapshot(clients []domain.Client, transactedIDs map[string]struct{}) *Snapshot {
	snap := &Snapshot{
		Version: uuid.NewString(),
		BuiltAt: time.Now(),
		seeds:   make(map[string]SeedClient, len(clients)),
		cohorts: make(map[cohortKey][]int),
	}

	for _, c := range clients {
		if _, ok := snap.seeds[c.ClientID]; !ok {
			snap.seeds[c.ClientID] = SeedClient{
				ClientID:      c.ClientID,
				Country:       c.Country,
				Nationality:   c.Nationality,
				City:          c.City,
				Gender:        c.Gender,
				Segment:       c.Segment,
				PremiumStatus: c.PremiumStatus,
			}
		}

		if !c.Contactable {
			continue
		}

		_, hasTransacted := transactedIDs[c.ClientID]

		snap.eligible = append(snap.eligible, EligibleClient{
			ClientID:      c.ClientID,
			Country:       c.Country,
			Nationality:   c.Nationality,
			City:          c.City,
			Gender:        c.Gender,
			Segment:       c.Segment,
			PremiumStatus: c.PremiumStatus,
			HasTransacted: hasTransacted,
		})

		if !hasTransacted {
			key := cohortKey{segment: c.Segment, premiumStatus: c.PremiumStatus}
			snap.cohorts[key] = append(snap.cohorts[key], len(snap.eligible)-1)
		}
	}

	return snap
}

// SeedByID looks up a seed client in the original table by exact id match.
func (s *Snapshot) SeedByID(id string) (SeedClient, bool) {
	seed, ok := s.seeds[id]
	return seed, ok
}

// Eligible returns the eligibility-filtered client set.
func (s *Snapshot) Eligible() []EligibleClient {
	return s.eligible
}

// candidates returns indices of transactionless eligible clients sharing the
// given segment and premium status.
func (s *Snapshot) candidates(segment, premiumStatus string) []int {
	return s.cohorts[cohortKey{segment: segment, premiumStatus: premiumStatus}]
}
