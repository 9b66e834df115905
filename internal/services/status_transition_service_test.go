package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/domain/repositories"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/logging"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/persistence/postgres"
	"github.com/OSUMed/feature-request-app/internal/services"
	"github.com/OSUMed/feature-request-app/internal/testutil"
)

var _ = Describe("StatusTransitionService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *services.StatusTransitionService
		admin   *entities.User
		user    *entities.User
		feature *entities.FeatureRequest
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = testutil.NewSQLiteDB(GinkgoT())
		service = services.NewStatusTransitionService(
			postgres.NewFeatureRequestRepository(db),
			postgres.NewAdminActionRepository(db),
			postgres.NewUnitOfWork(db),
			logging.NewNopLogger(),
		)
		admin = testutil.CreateUser(GinkgoT(), db, "admin@example.com", entities.RoleAdmin)
		user = testutil.CreateUser(GinkgoT(), db, "user@example.com", entities.RoleUser)
		feature = testutil.CreateFeature(GinkgoT(), db, user, "Dark mode")
	})

	storedStatus := func() entities.Status {
		var status string
		Expect(db.Table("feature_requests").Select("status").Where("id = ?", feature.ID).Scan(&status).Error).To(Succeed())
		return entities.Status(status)
	}

	actionCount := func() int64 {
		return testutil.CountRows(GinkgoT(), db, "admin_actions", "")
	}

	It("altera o status e registra exatamente uma ação de admin", func() {
		updated, err := service.Transition(ctx, admin.Identity(), feature.ID, "planned")
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal(entities.StatusPlanned))
		Expect(updated.ID).To(Equal(feature.ID))
		Expect(storedStatus()).To(Equal(entities.StatusPlanned))

		Expect(actionCount()).To(Equal(int64(1)))
		Expect(testutil.CountRows(GinkgoT(), db, "admin_actions",
			"admin_id = ? AND feature_id = ? AND action = ?", admin.ID, feature.ID, "planned")).To(Equal(int64(1)))
	})

	It("permite ir de qualquer estado para qualquer estado", func() {
		for _, next := range []string{"completed", "pending", "planned", "planned"} {
			updated, err := service.Transition(ctx, admin.Identity(), feature.ID, next)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(updated.Status)).To(Equal(next))
		}
		Expect(actionCount()).To(Equal(int64(4)))
	})

	It("mantém a contagem de votos no registro retornado", func() {
		_, err := postgres.NewUpvoteRepository(db).Toggle(ctx, admin.ID, feature.ID)
		Expect(err).NotTo(HaveOccurred())

		updated, err := service.Transition(ctx, admin.Identity(), feature.ID, "completed")
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.UpvoteCount).To(Equal(int64(1)))
	})

	It("proíbe não-admins e mantém o status", func() {
		_, err := service.Transition(ctx, user.Identity(), feature.ID, "completed")
		Expect(err).To(MatchError(domainerrors.ErrForbidden))
		Expect(storedStatus()).To(Equal(entities.StatusPending))
		Expect(actionCount()).To(BeZero())
	})

	It("exige identidade", func() {
		_, err := service.Transition(ctx, nil, feature.ID, "completed")
		Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
		Expect(actionCount()).To(BeZero())
	})

	DescribeTable("rejeita status fora do conjunto permitido",
		func(status string) {
			_, err := service.Transition(ctx, admin.Identity(), feature.ID, status)

			var validationErr *domainerrors.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Fields).To(HaveLen(1))
			Expect(validationErr.Fields[0].Field).To(Equal("status"))
			Expect(storedStatus()).To(Equal(entities.StatusPending))
			Expect(actionCount()).To(BeZero())
		},
		Entry("palavra desconhecida", "archived"),
		Entry("caixa errada", "Planned"),
		Entry("vazio", ""),
	)

	It("reporta feature inexistente como StorageError", func() {
		_, err := service.Transition(ctx, admin.Identity(), "00000000-0000-0000-0000-000000000000", "planned")
		Expect(err).To(MatchError(domainerrors.ErrStorage))
		Expect(errors.Is(err, repositories.ErrNotFound)).To(BeTrue())
		Expect(actionCount()).To(BeZero())
	})

	It("desfaz o status quando a gravação da auditoria falha", func() {
		Expect(db.Migrator().DropTable("admin_actions")).To(Succeed())

		_, err := service.Transition(ctx, admin.Identity(), feature.ID, "completed")
		Expect(err).To(MatchError(domainerrors.ErrStorage))
		Expect(storedStatus()).To(Equal(entities.StatusPending))
	})
})
