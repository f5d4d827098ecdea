package repositories_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"socialgraph/src/domain"
	"socialgraph/src/repositories"
	"socialgraph/src/test_artefacts/comparer"
)

type memoryStore struct {
	values map[string]string
	err    error
}

func (s *memoryStore) SetKey(_ context.Context, key string, value string) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	return nil
}

func (s *memoryStore) GetKey(_ context.Context, key string) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	value, ok := s.values[key]
	return value, ok, nil
}

var _ = Describe("RankingSnapshotRepository", func() {
	var (
		ctx        context.Context
		store      *memoryStore
		repository *repositories.RankingSnapshotRepository
		ranking    domain.Ranking
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = &memoryStore{values: map[string]string{}}
		repository = repositories.NewRankingSnapshotRepository(store)
		ranking = domain.Ranking{
			MostPopular:  []domain.RankingEntry{{Email: "ana@pop.com", Name: "Ana", Score: 12}},
			LeastPopular: []domain.RankingEntry{{Email: "ana@pop.com", Name: "Ana", Score: 12}},
			GeneratedAt:  time.Now().UTC(),
		}
	})

	It("stores the ranking as JSON", func() {
		// ACT
		err := repository.SaveRanking(ctx, ranking)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(store.values).To(HaveKey("ranking:latest"))

		expected, _ := json.Marshal(ranking)
		Expect(json.RawMessage(store.values["ranking:latest"])).
			To(BeComparableTo(json.RawMessage(expected), comparer.JSONRawMessage()))
	})

	It("loads the last saved ranking", func() {
		Expect(repository.SaveRanking(ctx, ranking)).To(Succeed())

		loaded, found, err := repository.LoadRanking(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(loaded).To(BeComparableTo(ranking, comparer.TimeWithinTolerance(1)))
	})

	It("reports a miss when nothing was saved", func() {
		_, found, err := repository.LoadRanking(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("fails on a corrupted snapshot", func() {
		store.values["ranking:latest"] = "{"

		_, _, err := repository.LoadRanking(ctx)

		Expect(err).To(MatchError(ContainSubstring("failed to unmarshal snapshot")))
	})

	It("wraps store errors", func() {
		store.err = errors.New("connection refused")

		err := repository.SaveRanking(ctx, ranking)

		Expect(err).To(MatchError(ContainSubstring("connection refused")))
	})
})
