package services_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/palettehub-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/domain/ports"
	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/logging"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/palettehub-backend/internal/services"
)

var dbSeq int

var _ = Describe("EngagementService", func() {
	var (
		ctx         context.Context
		db          *gorm.DB
		paletteRepo repositories.PaletteRepository
		likeRepo    repositories.LikeRepository
		uow         ports.UnitOfWork
		svc         *services.EngagementService
		palette     *entities.Palette
	)

	// Contador persistido e cardinalidade do ledger devem sempre coincidir
	expectCounterMatchesLedger := func(paletteID uint) {
		GinkgoHelper()

		found, err := paletteRepo.FindByID(ctx, paletteID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).NotTo(BeNil())

		count, err := likeRepo.CountByPalette(ctx, paletteID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Likes).To(Equal(count))
	}

	BeforeEach(func() {
		ctx = context.Background()

		dbSeq++
		dsn := fmt.Sprintf("file:engagement-%d?mode=memory&cache=shared", dbSeq)

		var err error
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(postgres.Migrate(db)).To(Succeed())

		paletteRepo = postgres.NewPaletteRepository(db)
		likeRepo = postgres.NewLikeRepository(db)
		uow = postgres.NewUnitOfWork(db)
		svc = services.NewEngagementService(
			paletteRepo,
			likeRepo,
			uow,
			logging.NewSlogLogger("error"),
		)

		palette = &entities.Palette{
			Name:      "Neon",
			HexColors: []string{"#39ff14", "#ff073a"},
			Public:    true,
			OwnerID:   1,
		}
		Expect(paletteRepo.Create(ctx, palette)).To(Succeed())
	})

	Describe("LikePalette", func() {
		It("incrementa o contador e grava a linha do ledger", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())

			found, err := paletteRepo.FindByID(ctx, palette.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Likes).To(Equal(int64(1)))

			liked, err := likeRepo.Exists(ctx, 2, palette.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(liked).To(BeTrue())

			expectCounterMatchesLedger(palette.ID)
		})

		It("acumula curtidas de usuários distintos", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 3, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 4, palette.ID)).To(Succeed())

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(3)))
			expectCounterMatchesLedger(palette.ID)
		})

		It("rejeita curtida duplicada sem tocar no contador", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())

			err := svc.LikePalette(ctx, 2, palette.ID)
			Expect(err).To(MatchError(domainerrors.ErrPaletteAlreadyLiked))

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(1)))
			expectCounterMatchesLedger(palette.ID)
		})

		It("falha com NotFound para paleta inexistente", func() {
			err := svc.LikePalette(ctx, 2, 9999)
			Expect(err).To(MatchError(domainerrors.ErrPaletteNotFound))
		})

		It("trata paleta soft-deleted como inexistente", func() {
			Expect(paletteRepo.Delete(ctx, palette.ID)).To(Succeed())

			err := svc.LikePalette(ctx, 2, palette.ID)
			Expect(err).To(MatchError(domainerrors.ErrPaletteNotFound))
		})
	})

	Describe("UnlikePalette", func() {
		It("restaura o contador ao valor anterior à curtida", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.UnlikePalette(ctx, 2, palette.ID)).To(Succeed())

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(0)))

			liked, _ := likeRepo.Exists(ctx, 2, palette.ID)
			Expect(liked).To(BeFalse())
			expectCounterMatchesLedger(palette.ID)
		})

		It("permite curtir de novo depois do unlike", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.UnlikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(1)))
			expectCounterMatchesLedger(palette.ID)
		})

		It("rejeita unlike sem curtida ativa", func() {
			err := svc.UnlikePalette(ctx, 2, palette.ID)
			Expect(err).To(MatchError(domainerrors.ErrPaletteNotLiked))
		})

		It("falha com NotFound para paleta inexistente", func() {
			err := svc.UnlikePalette(ctx, 2, 9999)
			Expect(err).To(MatchError(domainerrors.ErrPaletteNotFound))
		})

		It("desfaz o decremento quando outro unlike já removeu a linha", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 3, palette.ID)).To(Succeed())

			// Dois unlikes do usuário 2 passam pela pré-leitura do ledger
			// antes de qualquer escrita; o primeiro completa normalmente
			Expect(svc.UnlikePalette(ctx, 2, palette.ID)).To(Succeed())

			// O segundo segue com as mesmas escritas: decrementa e tenta
			// remover a linha que já não existe. O delete vazio falha e a
			// transação reverte o decremento.
			err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
				if err := paletteRepo.IncrementLikes(txCtx, palette.ID, -1); err != nil {
					return err
				}
				return likeRepo.Delete(txCtx, 2, palette.ID)
			})
			Expect(err).To(MatchError(domainerrors.ErrPaletteNotLiked))

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(1)))
			expectCounterMatchesLedger(palette.ID)
		})

		It("trava o contador no piso zero com estado inconsistente", func() {
			// Linha no ledger com contador zerado: estado que só aparece se
			// o armazenamento já estiver corrompido
			Expect(likeRepo.Create(ctx, 2, palette.ID)).To(Succeed())

			Expect(svc.UnlikePalette(ctx, 2, palette.ID)).To(Succeed())

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(0)))

			liked, _ := likeRepo.Exists(ctx, 2, palette.ID)
			Expect(liked).To(BeFalse())
		})
	})

	Describe("sequências de like/unlike", func() {
		It("mantém o invariante contador == |ledger| em qualquer ordem", func() {
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 3, palette.ID)).To(Succeed())
			Expect(svc.UnlikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 4, palette.ID)).To(Succeed())
			Expect(svc.LikePalette(ctx, 2, palette.ID)).To(Succeed())
			Expect(svc.UnlikePalette(ctx, 3, palette.ID)).To(Succeed())

			found, _ := paletteRepo.FindByID(ctx, palette.ID)
			Expect(found.Likes).To(Equal(int64(2)))
			expectCounterMatchesLedger(palette.ID)
		})
	})
})
