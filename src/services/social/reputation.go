package social

import (
	"context"
	"fmt"
	"strconv"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
)

// AdjustScore adds delta to the active profile's score and returns the new tier.
func (s *SocialService) AdjustScore(ctx context.Context, delta int) (entities.Tier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return "", fmt.Errorf("SocialService.AdjustScore - %w", err)
	}

	before := profile.Tier()
	after := profile.AdjustScore(delta)
	if before != after {
		s.logger.Info("Tier changed", "email", profile.Email(), "from", before, "to", after, "score", profile.Score())
	}
	s.publish(ctx, s.event(domain.EventScoreAdjusted, profile.Email(), "").
		With("delta", strconv.Itoa(delta)).
		With("tier", string(after)))

	return after, nil
}

func (s *SocialService) Score() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return 0, fmt.Errorf("SocialService.Score - %w", err)
	}
	return profile.Score(), nil
}

func (s *SocialService) ScoreOf(email string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.resolve(email)
	if err != nil {
		return 0, fmt.Errorf("SocialService.ScoreOf - %w", err)
	}
	return profile.Score(), nil
}

func (s *SocialService) Tier() (entities.Tier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.sessionProfile()
	if err != nil {
		return "", fmt.Errorf("SocialService.Tier - %w", err)
	}
	return profile.Tier(), nil
}
