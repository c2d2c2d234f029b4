package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/frahmantamala/attendance-system/internal/attendance"
	attendancePostgres "github.com/frahmantamala/attendance-system/internal/attendance/postgres"
	attendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/attendance"
	employeeattendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/frahmantamala/attendance-system/internal/testutil"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAttendancePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Postgres Suite")
}

var _ = Describe("Attendance Repository", func() {
	var (
		ctx     context.Context
		db      *sqlx.DB
		repo    attendance.RepositoryAPI
		fixture *testutil.Fixture
	)

	countEntries := func() int {
		var n int
		Expect(db.Get(&n, `SELECT COUNT(*) FROM "EmployeeAttendances"`)).To(Succeed())
		return n
	}

	entry := func(employeeID uuid.UUID, present bool) *employeeattendanceDatamodel.EmployeeAttendance {
		timeIn := "09:00"
		return &employeeattendanceDatamodel.EmployeeAttendance{
			ID:               uuid.New(),
			EmployeeID:       employeeID,
			TimeIn:           &timeIn,
			Present:          present,
			TotalWorkedHours: 8,
		}
	}

	newAttendance := func(entries ...*employeeattendanceDatamodel.EmployeeAttendance) *attendanceDatamodel.Attendance {
		return &attendanceDatamodel.Attendance{
			ID:                  uuid.New(),
			DepartmentID:        fixture.Department.ID,
			Date:                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EmployeeAttendances: entries,
		}
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.OpenDB()
		Expect(err).NotTo(HaveOccurred())
		fixture, err = testutil.SeedFixture(db)
		Expect(err).NotTo(HaveOccurred())
		repo = attendancePostgres.NewAttendanceRepository(db, testutil.Logger())
	})

	AfterEach(func() {
		db.Close()
	})

	Describe("Add", func() {
		It("should store the attendance with its entries linked to it", func() {
			a := newAttendance(entry(fixture.Employee.ID, true), entry(fixture.Employee.ID, false))
			id, err := repo.Add(ctx, a)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(a.ID))

			got, err := repo.GetByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(got.DepartmentID).To(Equal(fixture.Department.ID))
			Expect(got.EmployeeAttendances).To(HaveLen(2))
			for _, e := range got.EmployeeAttendances {
				Expect(e.AttendanceID).To(Equal(uuid.NullUUID{UUID: id, Valid: true}))
				Expect(e.TimeIn).To(HaveValue(Equal("09:00")))
			}
		})

		It("should write nothing when one entry violates a constraint", func() {
			a := newAttendance(entry(fixture.Employee.ID, true), entry(uuid.New(), true))
			_, err := repo.Add(ctx, a)
			Expect(err).To(HaveOccurred())

			got, err := repo.GetByID(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
			Expect(countEntries()).To(BeZero())
		})

		It("should reject an unknown department", func() {
			a := newAttendance()
			a.DepartmentID = uuid.New()
			_, err := repo.Add(ctx, a)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetAll", func() {
		It("should load the entries of each attendance", func() {
			_, err := repo.Add(ctx, newAttendance(entry(fixture.Employee.ID, true)))
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Add(ctx, newAttendance())
			Expect(err).NotTo(HaveOccurred())

			all, err := repo.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))

			counts := []int{len(all[0].EmployeeAttendances), len(all[1].EmployeeAttendances)}
			Expect(counts).To(ConsistOf(0, 1))
		})
	})

	Describe("Update", func() {
		It("should replace the entry list", func() {
			kept := entry(fixture.Employee.ID, true)
			dropped := entry(fixture.Employee.ID, false)
			a := newAttendance(kept, dropped)
			_, err := repo.Add(ctx, a)
			Expect(err).NotTo(HaveOccurred())

			reason := "sick"
			keptCopy := *kept
			keptCopy.Reason = &reason
			added := entry(fixture.Employee.ID, true)
			changed := &attendanceDatamodel.Attendance{
				ID:                  a.ID,
				DepartmentID:        a.DepartmentID,
				Date:                time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				EmployeeAttendances: []*employeeattendanceDatamodel.EmployeeAttendance{&keptCopy, added},
			}
			ok, err := repo.Update(ctx, changed)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			got, err := repo.GetByID(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Date.Day()).To(Equal(2))

			ids := make([]uuid.UUID, 0, len(got.EmployeeAttendances))
			for _, e := range got.EmployeeAttendances {
				ids = append(ids, e.ID)
			}
			Expect(ids).To(ConsistOf(kept.ID, added.ID))
			Expect(countEntries()).To(Equal(2))
		})

		It("should report false and write nothing when the attendance is absent", func() {
			ok, err := repo.Update(ctx, newAttendance(entry(fixture.Employee.ID, true)))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(countEntries()).To(BeZero())
		})

		It("should keep the old state when a new entry is invalid", func() {
			a := newAttendance(entry(fixture.Employee.ID, true))
			_, err := repo.Add(ctx, a)
			Expect(err).NotTo(HaveOccurred())

			broken := newAttendance(entry(uuid.New(), true))
			broken.ID = a.ID
			_, err = repo.Update(ctx, broken)
			Expect(err).To(HaveOccurred())

			got, err := repo.GetByID(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.EmployeeAttendances).To(HaveLen(1))
			Expect(got.EmployeeAttendances[0].ID).To(Equal(a.EmployeeAttendances[0].ID))
		})
	})

	Describe("Delete", func() {
		It("should remove the attendance and its entries only", func() {
			standalone := entry(fixture.Employee.ID, true)
			_, err := db.NamedExec(`INSERT INTO "EmployeeAttendances" ("Id", "AttendanceId", "EmployeeId", "EmployeeLeaveId", "TimeIn", "TimeOut", "Present", "Reason", "TotalWorkedHours")
				VALUES (:Id, :AttendanceId, :EmployeeId, :EmployeeLeaveId, :TimeIn, :TimeOut, :Present, :Reason, :TotalWorkedHours)`, standalone)
			Expect(err).NotTo(HaveOccurred())

			a := newAttendance(entry(fixture.Employee.ID, true))
			_, err = repo.Add(ctx, a)
			Expect(err).NotTo(HaveOccurred())
			Expect(countEntries()).To(Equal(2))

			ok, err := repo.Delete(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(countEntries()).To(Equal(1))
		})

		It("should report false for an unknown id", func() {
			ok, err := repo.Delete(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
