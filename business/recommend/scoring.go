package recommend

// similarityScore sums the weight of every demographic attribute the
// candidate shares with the seed.
func similarityScore(w Weights, seed SeedClient, cand EligibleClient) int {
	score := 0

	if cand.Country == seed.Country {
		score += w.SameCountry
	}
	if cand.Nationality == seed.Nationality {
		score += w.SameNationality
	}
	if cand.City == seed.City {
		score += w.SameCity
	}
	if cand.Gender == seed.Gender {
		score += w.SameGender
	}

	return score
}

// scoreSeed scores every candidate in the seed's cohort and keeps the ones
// with at least one matching attribute.
func scoreSeed(snap *Snapshot, w Weights, seed SeedClient) map[string]int {
	out := make(map[string]int)

	for _, idx := range snap.candidates(seed.Segment, seed.PremiumStatus) {
		cand := snap.eligible[idx]

		score := similarityScore(w, seed, cand)
		if score <= 0 {
			continue
		}

		out[cand.ClientID] = score
	}

	return out
}
