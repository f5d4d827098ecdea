package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"socialgraph/src/domain"
)

const rankingSnapshotKey = "ranking:latest"

// KeyValueStore é o subconjunto do cliente redis usado pelos repositórios.
type KeyValueStore interface {
	SetKey(ctx context.Context, key string, value string) error
	GetKey(ctx context.Context, key string) (string, bool, error)
}

// RankingSnapshotRepository keeps the latest computed ranking as JSON.
type RankingSnapshotRepository struct {
	store KeyValueStore
}

func NewRankingSnapshotRepository(store KeyValueStore) *RankingSnapshotRepository {
	return &RankingSnapshotRepository{store: store}
}

func (r *RankingSnapshotRepository) SaveRanking(ctx context.Context, ranking domain.Ranking) error {
	data, err := json.Marshal(ranking)
	if err != nil {
		return fmt.Errorf("RankingSnapshotRepository.SaveRanking - failed to marshal ranking: %w", err)
	}

	if err := r.store.SetKey(ctx, rankingSnapshotKey, string(data)); err != nil {
		return fmt.Errorf("RankingSnapshotRepository.SaveRanking - failed to store snapshot: %w", err)
	}
	return nil
}

func (r *RankingSnapshotRepository) LoadRanking(ctx context.Context) (domain.Ranking, bool, error) {
	data, found, err := r.store.GetKey(ctx, rankingSnapshotKey)
	if err != nil {
		return domain.Ranking{}, false, fmt.Errorf("RankingSnapshotRepository.LoadRanking - failed to read snapshot: %w", err)
	}
	if !found {
		return domain.Ranking{}, false, nil
	}

	var ranking domain.Ranking
	if err := json.Unmarshal([]byte(data), &ranking); err != nil {
		return domain.Ranking{}, false, fmt.Errorf("RankingSnapshotRepository.LoadRanking - failed to unmarshal snapshot: %w", err)
	}
	return ranking, true, nil
}
