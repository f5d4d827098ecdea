package social_test

import (
	"context"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"socialgraph/src/domain"
	"socialgraph/src/services/social"
	"socialgraph/src/test_artefacts/stubs"
	"socialgraph/src/test_artefacts/test_seeder"
)

var _ = Describe("Registry and session", func() {
	var (
		ctx        context.Context
		publisher  *recordingPublisher
		service    *social.SocialService
		testSeeder test_seeder.TestSeeder
	)

	BeforeEach(func() {
		ctx = context.Background()
		publisher = &recordingPublisher{}
		service = social.NewSocialService(discardLogger, nil, publisher, nil)
		testSeeder = test_seeder.New(service)
	})

	Context("when registering", func() {
		It("adds the profile keyed by email", func() {
			// ARRANGE
			request := stubs.NewProfileStub().WithName("Ana").Get()

			// ACT
			email, err := service.Register(ctx, request)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(email).To(Equal(request.Email))
			Expect(service.Attribute("name", request.Email)).To(Equal("Ana"))
			Expect(publisher.Types()).To(Equal([]domain.EventType{domain.EventProfileRegistered}))
		})

		DescribeTable("rejects invalid fields",
			func(stub stubs.ProfileStub, expected error) {
				_, err := service.Register(ctx, stub.Get())

				Expect(err).To(MatchError(expected))
				Expect(domain.KindOf(err)).To(Equal(domain.KindValidation))
			},
			Entry("blank name", stubs.NewProfileStub().WithName(" "), domain.ErrInvalidName),
			Entry("bad email", stubs.NewProfileStub().WithEmail("ana.pop"), domain.ErrInvalidEmail),
			Entry("bad date format", stubs.NewProfileStub().WithBirthDate("1990-01-01"), domain.ErrBadDateFormat),
			Entry("impossible date", stubs.NewProfileStub().WithBirthDate("31/04/1990"), domain.ErrDateDoesNotExist),
		)

		It("trims the email before using it as the key", func() {
			// ARRANGE
			request := stubs.NewProfileStub().WithEmail("  ana@pop.com ").Get()

			// ACT
			email, err := service.Register(ctx, request)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(email).To(Equal("ana@pop.com"))
			Expect(service.Login(ctx, "ana@pop.com", request.Credential)).To(Succeed())
			_, err = service.Register(ctx, stubs.NewProfileStub().WithEmail("ana@pop.com").Get())
			Expect(err).To(MatchError(domain.ErrDuplicateIdentity))
		})

		It("rejects a duplicate email", func() {
			// ARRANGE
			request := stubs.NewProfileStub().Get()
			_, err := service.Register(ctx, request)
			Expect(err).NotTo(HaveOccurred())

			// ACT
			_, err = service.Register(ctx, stubs.NewProfileStub().WithEmail(request.Email).Get())

			// ASSERT
			Expect(err).To(MatchError(domain.ErrDuplicateIdentity))
			Expect(domain.KindOf(err)).To(Equal(domain.KindDuplicateIdentity))
		})

		It("registers concurrently without losing profiles", func() {
			var wg sync.WaitGroup
			for i := range 50 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					request := stubs.NewProfileStub().WithEmail(fmt.Sprintf("perfil%d@pop.com", i)).Get()
					_, err := service.Register(ctx, request)
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			for i := range 50 {
				_, err := service.Profile(fmt.Sprintf("perfil%d@pop.com", i))
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Context("when logging in", func() {
		var profiles []social.RegisterRequest

		BeforeEach(func() {
			profiles = testSeeder.RegisterProfiles(ctx, 2)
		})

		It("opens the session", func() {
			Expect(service.Login(ctx, profiles[0].Email, profiles[0].Credential)).To(Succeed())

			email, active := service.ActiveSession()
			Expect(active).To(BeTrue())
			Expect(email).To(Equal(profiles[0].Email))
		})

		It("fails for an unknown email", func() {
			err := service.Login(ctx, "ninguem@pop.com", "x")

			Expect(err).To(MatchError(domain.ErrUnknownIdentity))
		})

		It("fails for a wrong credential", func() {
			err := service.Login(ctx, profiles[0].Email, profiles[0].Credential+"!")

			Expect(err).To(MatchError(domain.ErrInvalidCredential))
			Expect(domain.KindOf(err)).To(Equal(domain.KindAuthentication))
			_, active := service.ActiveSession()
			Expect(active).To(BeFalse())
		})

		It("fails while another session is active", func() {
			testSeeder.LoginAs(ctx, profiles[0])

			err := service.Login(ctx, profiles[1].Email, profiles[1].Credential)

			Expect(err).To(MatchError(domain.ErrAlreadyAuthenticated))
		})

		It("fails to log out without a session", func() {
			Expect(service.Logout(ctx)).To(MatchError(domain.ErrNoActiveSession))
		})

		It("fails session operations without a session", func() {
			_, err := service.NotificationCount()
			Expect(err).To(MatchError(domain.ErrNoActiveSession))
		})
	})

	Context("when shutting down", func() {
		It("is blocked by an active session", func() {
			profiles := testSeeder.RegisterProfiles(ctx, 1)
			testSeeder.LoginAs(ctx, profiles[0])

			err := service.Shutdown(ctx)

			Expect(err).To(MatchError(domain.ErrSessionStillActive))
			Expect(domain.KindOf(err)).To(Equal(domain.KindShutdownBlocked))
		})

		It("succeeds with no session", func() {
			testSeeder.RegisterProfiles(ctx, 1)

			Expect(service.Shutdown(ctx)).To(Succeed())
		})
	})

	Context("when removing a profile", func() {
		It("clears every reference to it", func() {
			// ARRANGE
			profiles := testSeeder.RegisterProfiles(ctx, 3)
			ana, bruno, carla := profiles[0], profiles[1], profiles[2]
			testSeeder.Connect(ctx, ana, bruno)
			testSeeder.LoginAs(ctx, ana)
			Expect(service.RequestConnection(ctx, carla.Email)).To(Succeed())
			testSeeder.Logout(ctx)

			// ACT
			err := service.Remove(ctx, ana.Email)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Profile(ana.Email)
			Expect(err).To(MatchError(domain.ErrUnknownIdentity))
			Expect(service.Connections(bruno.Email)).To(BeEmpty())
			Expect(service.PendingRequests(carla.Email)).To(BeEmpty())
		})

		It("ends the session of the removed profile", func() {
			profiles := testSeeder.RegisterProfiles(ctx, 1)
			testSeeder.LoginAs(ctx, profiles[0])

			Expect(service.Remove(ctx, profiles[0].Email)).To(Succeed())

			_, active := service.ActiveSession()
			Expect(active).To(BeFalse())
			Expect(service.Shutdown(ctx)).To(Succeed())
		})

		It("fails for an unknown email", func() {
			Expect(service.Remove(ctx, "ninguem@pop.com")).To(MatchError(domain.ErrUnknownIdentity))
		})
	})
})
