package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/logging"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/persistence/postgres"
	"github.com/OSUMed/feature-request-app/internal/services"
	"github.com/OSUMed/feature-request-app/internal/testutil"
)

var _ = Describe("UpvoteService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *services.UpvoteService
		voter   *entities.User
		feature *entities.FeatureRequest
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = testutil.NewSQLiteDB(GinkgoT())
		service = services.NewUpvoteService(
			postgres.NewFeatureRequestRepository(db),
			postgres.NewUpvoteRepository(db),
			logging.NewNopLogger(),
		)
		owner := testutil.CreateUser(GinkgoT(), db, "owner@example.com", entities.RoleUser)
		voter = testutil.CreateUser(GinkgoT(), db, "voter@example.com", entities.RoleUser)
		feature = testutil.CreateFeature(GinkgoT(), db, owner, "Dark mode")
	})

	upvoteCount := func() int64 {
		return testutil.CountRows(GinkgoT(), db, "upvotes", "feature_id = ?", feature.ID)
	}

	Describe("Toggle", func() {
		It("adiciona um voto e depois remove", func() {
			voted, err := service.Toggle(ctx, voter.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeTrue())
			Expect(upvoteCount()).To(Equal(int64(1)))

			status, err := service.Status(ctx, voter.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(BeTrue())

			voted, err = service.Toggle(ctx, voter.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeFalse())
			Expect(upvoteCount()).To(BeZero())
		})

		It("permite que o dono vote no próprio pedido", func() {
			owner := testutil.CreateUser(GinkgoT(), db, "author@example.com", entities.RoleUser)
			own := testutil.CreateFeature(GinkgoT(), db, owner, "Own idea")

			voted, err := service.Toggle(ctx, owner.Identity(), own.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeTrue())
		})

		It("mantém separados os votos de usuários diferentes", func() {
			other := testutil.CreateUser(GinkgoT(), db, "other@example.com", entities.RoleAdmin)

			_, err := service.Toggle(ctx, voter.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Toggle(ctx, other.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(upvoteCount()).To(Equal(int64(2)))

			voted, err := service.Toggle(ctx, voter.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeFalse())
			Expect(upvoteCount()).To(Equal(int64(1)))
		})

		It("exige identidade", func() {
			_, err := service.Toggle(ctx, nil, feature.ID)
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
			Expect(upvoteCount()).To(BeZero())
		})

		It("retorna ErrFeatureRequestNotFound para features desconhecidas", func() {
			_, err := service.Toggle(ctx, voter.Identity(), "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrFeatureRequestNotFound))
			Expect(testutil.CountRows(GinkgoT(), db, "upvotes", "")).To(BeZero())
		})

		It("reporta falhas de persistência como StorageError", func() {
			Expect(postgres.Close(db)).To(Succeed())

			_, err := service.Toggle(ctx, voter.Identity(), feature.ID)
			Expect(err).To(MatchError(domainerrors.ErrStorage))
		})
	})

	Describe("Status", func() {
		It("é false para visitantes anônimos", func() {
			voted, err := service.Status(ctx, nil, feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeFalse())
		})

		It("é false antes de votar", func() {
			voted, err := service.Status(ctx, voter.Identity(), feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeFalse())
		})

		It("é false para features desconhecidas", func() {
			voted, err := service.Status(ctx, voter.Identity(), "00000000-0000-0000-0000-000000000000")
			Expect(err).NotTo(HaveOccurred())
			Expect(voted).To(BeFalse())
		})
	})
})
