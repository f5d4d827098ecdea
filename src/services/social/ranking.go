package social

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
)

const rankingSize = 3

// Ranking lists the three most and three least popular profiles. Ties are broken
// by email. The result is saved to the ranking store when one is configured.
func (s *SocialService) Ranking(ctx context.Context) domain.Ranking {
	s.mu.RLock()
	entries := lo.MapToSlice(s.profiles, func(email string, profile *entities.SocialProfile) domain.RankingEntry {
		return domain.RankingEntry{Email: email, Name: profile.Name(), Score: profile.Score()}
	})
	s.mu.RUnlock()

	slices.SortFunc(entries, func(a, b domain.RankingEntry) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.Email, b.Email))
	})
	most := slices.Clone(entries[:min(rankingSize, len(entries))])

	slices.SortFunc(entries, func(a, b domain.RankingEntry) int {
		return cmp.Or(cmp.Compare(a.Score, b.Score), cmp.Compare(a.Email, b.Email))
	})
	least := slices.Clone(entries[:min(rankingSize, len(entries))])

	ranking := domain.Ranking{
		MostPopular:  most,
		LeastPopular: least,
		GeneratedAt:  s.now().UTC(),
	}

	if s.rankingStore != nil {
		if err := s.rankingStore.SaveRanking(ctx, ranking); err != nil {
			s.logger.Warn("Failed to save ranking snapshot", "error", err)
		}
	}

	return ranking
}

// LastRanking returns the snapshot kept by the ranking store.
func (s *SocialService) LastRanking(ctx context.Context) (domain.Ranking, bool, error) {
	if s.rankingStore == nil {
		return domain.Ranking{}, false, nil
	}

	ranking, found, err := s.rankingStore.LoadRanking(ctx)
	if err != nil {
		return domain.Ranking{}, false, fmt.Errorf("SocialService.LastRanking - %w", err)
	}
	return ranking, found, nil
}

// TrendingTopics returns the three most used hashtags across every timeline,
// ties in alphabetical order.
func (s *SocialService) TrendingTopics() []domain.TrendingTopic {
	s.mu.RLock()
	tags := lo.FlatMap(lo.Values(s.profiles), func(profile *entities.SocialProfile, _ int) []string {
		return lo.FlatMap(profile.Timeline(), func(post *entities.Post, _ int) []string {
			return post.Tags()
		})
	})
	s.mu.RUnlock()

	topics := lo.MapToSlice(lo.GroupBy(tags, func(tag string) string { return tag }), func(tag string, uses []string) domain.TrendingTopic {
		return domain.TrendingTopic{Tag: tag, Count: len(uses)}
	})
	slices.SortFunc(topics, func(a, b domain.TrendingTopic) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Tag, b.Tag))
	})

	return topics[:min(rankingSize, len(topics))]
}
