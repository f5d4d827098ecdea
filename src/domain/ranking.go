package domain

import "time"

// RankingEntry é a posição de um perfil no ranking de popularidade.
type RankingEntry struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Ranking keeps up to three profiles on each end of the score scale.
type Ranking struct {
	MostPopular  []RankingEntry `json:"most_popular"`
	LeastPopular []RankingEntry `json:"least_popular"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

type TrendingTopic struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
