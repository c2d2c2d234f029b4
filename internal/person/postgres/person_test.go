package postgres_test

import (
	"context"
	"testing"

	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	personDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/person"
	"github.com/frahmantamala/attendance-system/internal/person"
	personPostgres "github.com/frahmantamala/attendance-system/internal/person/postgres"
	"github.com/frahmantamala/attendance-system/internal/testutil"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPersonPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Person Postgres Suite")
}

var _ = Describe("Person Repository", func() {
	var (
		ctx  context.Context
		db   *sqlx.DB
		repo person.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.OpenDB()
		Expect(err).NotTo(HaveOccurred())
		repo = personPostgres.NewPersonRepository(db, testutil.Logger())
	})

	AfterEach(func() {
		db.Close()
	})

	It("should round-trip every column", func() {
		p := &personDatamodel.Person{
			ID:          uuid.New(),
			FirstName:   "Ada",
			LastName:    "Lovelace",
			DateOfBirth: dates.New(1815, 12, 10).Time,
			Email:       "ada@example.com",
		}
		id, err := repo.Add(ctx, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(p.ID))

		got, err := repo.GetByID(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.FirstName).To(Equal("Ada"))
		Expect(got.LastName).To(Equal("Lovelace"))
		Expect(got.Email).To(Equal("ada@example.com"))
		Expect(dates.FromTime(got.DateOfBirth).String()).To(Equal("1815-12-10"))
	})

	It("should report false when updating or deleting an absent person", func() {
		ok, err := repo.Update(ctx, &personDatamodel.Person{ID: uuid.New(), FirstName: "x", LastName: "y", Email: "z"})
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		ok, err = repo.Delete(ctx, uuid.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})
})
