package uplift

import (
	"context"
	"fmt"

	"clientCompass/domain"
)

type UpliftRepository interface {
	GetByAction(ctx context.Context, actionID string, limit int) ([]domain.UpliftPrediction, error)
}

type Service struct {
	repo UpliftRepository
}

func NewService(repo UpliftRepository) *Service {
	return &Service{repo: repo}
}

// GetInvitees returns the best existing clients to invite to an action:
// highest positive uplift first, one entry per client.
func (s *Service) GetInvitees(
	ctx context.Context,
	actionID string,
	limit int,
) ([]domain.Invitee, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}

	// over-fetch so deduplication can still fill the requested count
	candidateLimit := limit * 3
	if candidateLimit < limit {
		candidateLimit = limit
	}

	preds, err := s.repo.GetByAction(ctx, actionID, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("load uplift predictions: %w", err)
	}

	seen := make(map[string]struct{}, len(preds))
	invitees := make([]domain.Invitee, 0, limit)

	for _, p := range preds {
		if p.UpliftPred <= 0 {
			continue
		}
		if _, ok := seen[p.ClientID]; ok {
			continue
		}
		seen[p.ClientID] = struct{}{}

		invitees = append(invitees, domain.Invitee{
			ClientID:   p.ClientID,
			UpliftPred: p.UpliftPred,
		})

		if len(invitees) == limit {
			break
		}
	}

	return invitees, nil
}
