package social_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"socialgraph/src/domain"
	"socialgraph/src/domain/entities"
	"socialgraph/src/services/social"
	"socialgraph/src/test_artefacts/stubs"
	"socialgraph/src/test_artefacts/test_seeder"
)

var _ = Describe("Posts", func() {
	var (
		ctx        context.Context
		publisher  *recordingPublisher
		service    *social.SocialService
		testSeeder test_seeder.TestSeeder
		ana        social.RegisterRequest
		bruno      social.RegisterRequest
		createdAt  time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		publisher = &recordingPublisher{}
		service = social.NewSocialService(discardLogger, nil, publisher, nil)
		testSeeder = test_seeder.New(service)
		createdAt = time.Date(2024, time.May, 1, 9, 15, 0, 0, time.UTC)

		ana = stubs.NewProfileStub().WithName("Ana").Get()
		bruno = stubs.NewProfileStub().WithName("Bruno").Get()
		for _, request := range []social.RegisterRequest{ana, bruno} {
			_, err := service.Register(ctx, request)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	Context("when creating posts", func() {
		BeforeEach(func() {
			testSeeder.LoginAs(ctx, ana)
		})

		It("appends posts in order and returns their index", func() {
			first := stubs.NewPostStub().WithLines("primeiro").WithCreatedAt(createdAt)
			second := stubs.NewPostStub().WithLines("segundo").WithCreatedAt(createdAt)

			Expect(service.CreatePost(ctx, first.Lines(), first.Tags(), first.CreatedAt())).To(Equal(0))
			Expect(service.CreatePost(ctx, second.Lines(), second.Tags(), second.CreatedAt())).To(Equal(1))
			Expect(service.PostField("content", 1)).To(Equal("segundo"))
			Expect(publisher.Last().Attributes).To(HaveKeyWithValue("post", "1"))
		})

		It("substitutes media markers when reading lines", func() {
			// ARRANGE
			stub := stubs.NewPostStub().WithLines("legenda", "<imagem>x.png</imagem>", "<audio>y.mp3</audio>")
			_, err := service.CreatePost(ctx, stub.Lines(), stub.Tags(), createdAt)
			Expect(err).NotTo(HaveOccurred())

			// ACT & ASSERT
			Expect(service.ContentLine(0, 0)).To(Equal("legenda"))
			Expect(service.ContentLine(1, 0)).To(Equal("$arquivo_imagem:x.png"))
			Expect(service.ContentLine(2, 0)).To(Equal("$arquivo_audio:y.mp3"))
		})

		It("reports bounds errors", func() {
			stub := stubs.NewPostStub()
			_, err := service.CreatePost(ctx, stub.Lines(), stub.Tags(), createdAt)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.PostText(1)
			Expect(err).To(MatchError(domain.ErrPostIndexOutOfRange))

			_, err = service.PostLikes(-1)
			Expect(err).To(MatchError(domain.ErrNegativeIndex))

			_, err = service.ContentLine(1, 0)
			Expect(err).To(MatchError(domain.ErrContentIndexOutOfRange))
			Expect(domain.KindOf(err)).To(Equal(domain.KindBounds))

			_, err = service.PostField("autor", 0)
			Expect(err).To(MatchError(domain.ErrInvalidFieldRequest))
		})

		It("adds a hashtag to an existing post", func() {
			// ARRANGE
			stub := stubs.NewPostStub().WithLines("praia").WithTags("#sol").WithCreatedAt(createdAt)
			_, err := service.CreatePost(ctx, stub.Lines(), stub.Tags(), stub.CreatedAt())
			Expect(err).NotTo(HaveOccurred())

			// ACT
			err = service.AddPostTag(ctx, 0, " #verao ")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(service.PostField("tags", 0)).To(Equal("#sol,#verao"))
			Expect(service.PostText(0)).To(Equal("praia #sol #verao (2024-05-01 09:15:00)"))
			Expect(publisher.Last().EventType).To(Equal(domain.EventPostTagged))
			Expect(publisher.Last().Attributes).To(Equal(map[string]string{"post": "0", "tag": "#verao"}))
		})

		DescribeTable("rejects a hashtag it cannot add",
			func(tag string, index int, expected error) {
				stub := stubs.NewPostStub()
				_, err := service.CreatePost(ctx, stub.Lines(), stub.Tags(), createdAt)
				Expect(err).NotTo(HaveOccurred())

				Expect(service.AddPostTag(ctx, index, tag)).To(MatchError(expected))
			},
			Entry("missing #", "verao", 0, domain.ErrInvalidHashtag),
			Entry("two words", "#verao #sol", 0, domain.ErrInvalidHashtag),
			Entry("post out of range", "#verao", 1, domain.ErrPostIndexOutOfRange),
		)

		It("fails without content", func() {
			_, err := service.CreatePost(ctx, nil, nil, createdAt)

			Expect(err).To(MatchError(domain.ErrEmptyPost))
		})
	})

	Context("when friends interact with a post", func() {
		BeforeEach(func() {
			testSeeder.Connect(ctx, ana, bruno)

			testSeeder.LoginAs(ctx, ana)
			stub := stubs.NewPostStub().WithCreatedAt(createdAt)
			_, err := service.CreatePost(ctx, stub.Lines(), stub.Tags(), stub.CreatedAt())
			Expect(err).NotTo(HaveOccurred())
			testSeeder.LoginAs(ctx, bruno)
		})

		It("applies a normal like", func() {
			// ACT
			err := service.LikePost(ctx, ana.Email, 0)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(service.ScoreOf(ana.Email)).To(Equal(1))

			testSeeder.LoginAs(ctx, ana)
			Expect(service.PostLikes(0)).To(Equal(1))
			Expect(service.PostScore(0)).To(Equal(1))
			Expect(service.NextNotification()).To(Equal("Bruno curtiu seu post de 2024-05-01 09:15:00."))
		})

		It("uses the acting profile's tier for the delta", func() {
			// ARRANGE
			Expect(service.AdjustScore(ctx, 1001)).To(Equal(entities.TierIcon))

			// ACT
			Expect(service.LikePost(ctx, ana.Email, 0)).To(Succeed())
			Expect(service.RejectPost(ctx, ana.Email, 0)).To(Succeed())
			Expect(service.RejectPost(ctx, ana.Email, 0)).To(Succeed())

			// ASSERT
			testSeeder.LoginAs(ctx, ana)
			Expect(service.PostLikes(0)).To(Equal(1))
			Expect(service.PostRejections(0)).To(Equal(2))
			Expect(service.PostScore(0)).To(Equal(-3))
			Expect(service.Score()).To(Equal(-3))
			Expect(service.NotificationCount()).To(Equal(3))
		})

		It("publishes the applied delta", func() {
			Expect(service.RejectPost(ctx, ana.Email, 0)).To(Succeed())

			event := publisher.Last()
			Expect(event.EventType).To(Equal(domain.EventPostRejected))
			Expect(event.Actor).To(Equal(bruno.Email))
			Expect(event.Target).To(Equal(ana.Email))
			Expect(event.Attributes).To(Equal(map[string]string{"post": "0", "delta": "-1"}))
		})

		It("keeps counters consistent under concurrent likes and reads", func() {
			// ARRANGE
			own := stubs.NewPostStub()
			_, err := service.CreatePost(ctx, own.Lines(), own.Tags(), createdAt)
			Expect(err).NotTo(HaveOccurred())

			// ACT
			var wg sync.WaitGroup
			for range 20 {
				wg.Add(2)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					Expect(service.LikePost(ctx, ana.Email, 0)).To(Succeed())
				}()
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					Expect(service.PostLikes(0)).To(Equal(0))
					Expect(service.PostText(0)).NotTo(BeEmpty())
					Expect(service.ScoreOf(ana.Email)).To(BeNumerically("<=", 20))
				}()
			}
			wg.Wait()

			// ASSERT
			testSeeder.LoginAs(ctx, ana)
			Expect(service.PostLikes(0)).To(Equal(20))
			Expect(service.PostScore(0)).To(Equal(20))
		})

		It("fails for a post out of range", func() {
			Expect(service.LikePost(ctx, ana.Email, 3)).To(MatchError(domain.ErrPostIndexOutOfRange))
		})

		It("fails for profiles that are not connected", func() {
			carla := stubs.NewProfileStub().Get()
			_, err := service.Register(ctx, carla)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.LikePost(ctx, carla.Email, 0)).To(MatchError(domain.ErrNotConnected))
		})

		It("fails for an unknown friend", func() {
			Expect(service.LikePost(ctx, "ninguem@pop.com", 0)).To(MatchError(domain.ErrUnknownIdentity))
		})
	})

	Context("when a publisher fails", func() {
		It("keeps the state change", func() {
			publisher.err = errors.New("broker unavailable")
			testSeeder.LoginAs(ctx, ana)

			index, err := service.CreatePost(ctx, []string{"ok"}, nil, createdAt)

			Expect(err).NotTo(HaveOccurred())
			Expect(service.PostField("content", index)).To(Equal("ok"))
		})
	})
})
