package services_test

import (
	"context"
	"errors"

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

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = testutil.NewSQLiteDB(GinkgoT())
		service = services.NewUserService(postgres.NewUserRepository(db), logging.NewNopLogger())
	})

	Describe("CreateUser", func() {
		It("gera o hash da senha e normaliza o email", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    " Admin@Example.com ",
				Name:     "Admin User",
				Password: "admin123",
				Role:     entities.RoleAdmin,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.Email.String()).To(Equal("admin@example.com"))
			Expect(user.Role).To(Equal(entities.RoleAdmin))
			Expect(user.HasPassword()).To(BeTrue())
			Expect(*user.PasswordHash).NotTo(Equal("admin123"))
		})

		It("usa o papel user por padrão", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{Email: "a@example.com", Password: "password1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.Name).To(BeNil())
		})

		It("rejeita emails duplicados", func() {
			input := services.CreateUserInput{Email: "a@example.com", Password: "password1"}
			_, err := service.CreateUser(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateUser(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("valida a entrada", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{Email: "not-an-email", Password: "short"})

			var validationErr *domainerrors.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Fields).To(ContainElement(HaveField("Field", "email")))
			Expect(validationErr.Fields).To(ContainElement(HaveField("Field", "password")))
		})
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{Email: "user@example.com", Password: "secret123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna o usuário para credenciais válidas", func() {
			user, err := service.Authenticate(ctx, "USER@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("user@example.com"))
		})

		DescribeTable("rejeita credenciais inválidas",
			func(email, password string) {
				_, err := service.Authenticate(ctx, email, password)
				Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
			},
			Entry("senha errada", "user@example.com", "wrong-pass"),
			Entry("email desconhecido", "nobody@example.com", "secret123"),
			Entry("senha vazia", "user@example.com", ""),
			Entry("email malformado", "user", "secret123"),
		)

		It("rejeita contas sem senha", func() {
			testutil.CreateUser(GinkgoT(), db, "oauth@example.com", entities.RoleUser)

			_, err := service.Authenticate(ctx, "oauth@example.com", "anything1")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("GetUser", func() {
		It("retorna ErrUserNotFound para ids desconhecidos", func() {
			_, err := service.GetUser(ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})
})
