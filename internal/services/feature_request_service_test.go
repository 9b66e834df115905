package services_test

import (
	"context"
	"strings"

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

var _ = Describe("FeatureRequestService", func() {
	var (
		ctx      context.Context
		db       *gorm.DB
		service  *services.FeatureRequestService
		owner    *entities.User
		identity *entities.Identity
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = testutil.NewSQLiteDB(GinkgoT())
		service = services.NewFeatureRequestService(postgres.NewFeatureRequestRepository(db), logging.NewNopLogger())
		owner = testutil.CreateUser(GinkgoT(), db, "owner@example.com", entities.RoleUser)
		identity = owner.Identity()
	})

	featureCount := func() int64 {
		return testutil.CountRows(GinkgoT(), db, "feature_requests", "")
	}

	Describe("Create", func() {
		It("cria um pedido pendente que aparece na lista com zero votos", func() {
			created, err := service.Create(ctx, identity, services.CreateFeatureRequestInput{
				Title:       "Dark mode",
				Description: "Please add a dark theme",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(entities.StatusPending))
			Expect(created.UpvoteCount).To(BeZero())
			Expect(created.Owner.Email).To(Equal("owner@example.com"))

			list, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].ID).To(Equal(created.ID))
			Expect(list[0].Title).To(Equal("Dark mode"))
			Expect(list[0].Description).To(Equal("Please add a dark theme"))
			Expect(list[0].Status).To(Equal(entities.StatusPending))
			Expect(list[0].UpvoteCount).To(BeZero())
		})

		It("aceita os tamanhos limite", func() {
			_, err := service.Create(ctx, identity, services.CreateFeatureRequestInput{
				Title:       strings.Repeat("t", entities.TitleMaxLength),
				Description: strings.Repeat("d", entities.DescriptionMaxLength),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("conta caracteres, não bytes", func() {
			_, err := service.Create(ctx, identity, services.CreateFeatureRequestInput{
				Title:       strings.Repeat("é", entities.TitleMaxLength),
				Description: "accents",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("grava o texto como enviado", func() {
			created, err := service.Create(ctx, identity, services.CreateFeatureRequestInput{
				Title:       "  Webhooks  ",
				Description: "   ",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Title).To(Equal("  Webhooks  "))
			Expect(created.Description).To(Equal("   "))
		})

		DescribeTable("rejeita entrada fora dos limites sem gravar",
			func(input services.CreateFeatureRequestInput, field, tag string) {
				_, err := service.Create(ctx, identity, input)

				var validationErr *domainerrors.ValidationError
				Expect(err).To(BeAssignableToTypeOf(validationErr))
				validationErr = err.(*domainerrors.ValidationError)
				Expect(validationErr.Fields).To(ContainElement(
					And(
						HaveField("Field", field),
						HaveField("Tag", tag),
					),
				))
				Expect(featureCount()).To(BeZero())
			},
			Entry("título vazio", services.CreateFeatureRequestInput{Title: "", Description: "ok"}, "title", "required"),
			Entry("título em branco", services.CreateFeatureRequestInput{Title: "   ", Description: "ok"}, "title", "notblank"),
			Entry("título acima de 100", services.CreateFeatureRequestInput{Title: strings.Repeat("x", 101), Description: "ok"}, "title", "max"),
			Entry("descrição vazia", services.CreateFeatureRequestInput{Title: "ok", Description: ""}, "description", "required"),
			Entry("descrição acima de 500", services.CreateFeatureRequestInput{Title: "ok", Description: strings.Repeat("x", 501)}, "description", "max"),
		)

		It("exige identidade e não grava nada", func() {
			_, err := service.Create(ctx, nil, services.CreateFeatureRequestInput{Title: "Dark mode", Description: "desc"})
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
			Expect(featureCount()).To(BeZero())
		})

		It("reporta falhas de persistência como StorageError", func() {
			Expect(postgres.Close(db)).To(Succeed())

			_, err := service.Create(ctx, identity, services.CreateFeatureRequestInput{Title: "Dark mode", Description: "desc"})
			Expect(err).To(MatchError(domainerrors.ErrStorage))
		})
	})

	Describe("List", func() {
		It("ordena pela contagem de votos decrescente", func() {
			upvotes := postgres.NewUpvoteRepository(db)
			zero := testutil.CreateFeature(GinkgoT(), db, owner, "zero")
			five := testutil.CreateFeature(GinkgoT(), db, owner, "five")
			three := testutil.CreateFeature(GinkgoT(), db, owner, "three")

			for i := 0; i < 5; i++ {
				voter := testutil.CreateUser(GinkgoT(), db, "voter"+string(rune('a'+i))+"@example.com", entities.RoleUser)
				_, err := upvotes.Toggle(ctx, voter.ID, five.ID)
				Expect(err).NotTo(HaveOccurred())
				if i < 3 {
					_, err = upvotes.Toggle(ctx, voter.ID, three.ID)
					Expect(err).NotTo(HaveOccurred())
				}
			}

			list, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect([]string{list[0].ID, list[1].ID, list[2].ID}).To(Equal([]string{five.ID, three.ID, zero.ID}))
			Expect([]int64{list[0].UpvoteCount, list[1].UpvoteCount, list[2].UpvoteCount}).To(Equal([]int64{5, 3, 0}))
		})

		It("retorna lista vazia quando nada foi enviado", func() {
			list, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("reporta falhas de persistência como StorageError", func() {
			Expect(postgres.Close(db)).To(Succeed())

			_, err := service.List(ctx)
			Expect(err).To(MatchError(domainerrors.ErrStorage))
		})
	})

	Describe("Get", func() {
		It("retorna o pedido com dono e contagem", func() {
			feature := testutil.CreateFeature(GinkgoT(), db, owner, "Export")

			found, err := service.Get(ctx, feature.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Title).To(Equal("Export"))
			Expect(found.Owner.Email).To(Equal("owner@example.com"))
		})

		It("retorna ErrFeatureRequestNotFound para ids desconhecidos", func() {
			_, err := service.Get(ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrFeatureRequestNotFound))

			_, err = service.Get(ctx, "not-a-uuid")
			Expect(err).To(MatchError(domainerrors.ErrFeatureRequestNotFound))
		})
	})
})
