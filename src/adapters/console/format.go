package console

import (
	"fmt"
	"strings"

	"socialgraph/src/domain"
)

// FormatRanking renders "Mais Populares: (1) name score; ... | Menos Populares: ...".
func FormatRanking(ranking domain.Ranking) string {
	return fmt.Sprintf("Mais Populares: %s | Menos Populares: %s",
		formatEntries(ranking.MostPopular),
		formatEntries(ranking.LeastPopular))
}

func formatEntries(entries []domain.RankingEntry) string {
	parts := make([]string, len(entries))
	for i, entry := range entries {
		parts[i] = fmt.Sprintf("(%d) %s %d;", i+1, entry.Name, entry.Score)
	}
	return strings.Join(parts, " ")
}

// FormatTrendingTopics renders "Trending Topics: (1) #tag: n; ...".
func FormatTrendingTopics(topics []domain.TrendingTopic) string {
	parts := make([]string, len(topics))
	for i, topic := range topics {
		parts[i] = fmt.Sprintf("(%d) %s: %d;", i+1, topic.Tag, topic.Count)
	}
	return strings.TrimSpace("Trending Topics: " + strings.Join(parts, " "))
}
