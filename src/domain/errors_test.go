package domain_test

import (
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"socialgraph/src/domain"
	"socialgraph/src/test_artefacts/comparer"
)

var _ = Describe("Errors", func() {
	It("classifies wrapped domain errors", func() {
		err := fmt.Errorf("SocialService.Login - %w: ana@pop.com", domain.ErrUnknownIdentity)

		Expect(domain.KindOf(err)).To(Equal(domain.KindUnknownIdentity))
		Expect(errors.Is(err, domain.ErrUnknownIdentity)).To(BeTrue())
	})

	It("classifies foreign errors as unknown", func() {
		Expect(domain.KindOf(errors.New("boom"))).To(Equal(domain.KindUnknown))
	})

	It("keeps sentinels of the same kind distinct", func() {
		Expect(errors.Is(domain.ErrNegativeIndex, domain.ErrPostIndexOutOfRange)).To(BeFalse())
		Expect(domain.KindOf(domain.ErrNegativeIndex)).To(Equal(domain.KindOf(domain.ErrPostIndexOutOfRange)))
	})
})

var _ = Describe("SocialEvent", func() {
	It("gets a fresh id and a UTC timestamp", func() {
		// ARRANGE
		occurredAt := time.Now()

		// ACT
		first := domain.NewSocialEvent(domain.EventPostLiked, "ana@pop.com", "bruno@pop.com", occurredAt)
		second := domain.NewSocialEvent(domain.EventPostLiked, "ana@pop.com", "bruno@pop.com", occurredAt)

		// ASSERT
		Expect(first.EventID).NotTo(Equal(second.EventID))
		Expect(first.OccurredAt.Location()).To(Equal(time.UTC))
		Expect(first).To(BeComparableTo(second,
			comparer.IgnoreFieldsFor[domain.SocialEvent]("EventID"),
			comparer.TimeWithinTolerance(0)))
	})

	It("copies attributes on With", func() {
		// ARRANGE
		base := domain.NewSocialEvent(domain.EventPostLiked, "ana@pop.com", "", time.Now()).With("post", "0")

		// ACT
		extended := base.With("delta", "2")

		// ASSERT
		Expect(base.Attributes).To(Equal(map[string]string{"post": "0"}))
		Expect(extended.Attributes).To(Equal(map[string]string{"post": "0", "delta": "2"}))
	})
})
