package attendance_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/attendance-system/internal/attendance"
	attendancePostgres "github.com/frahmantamala/attendance-system/internal/attendance/postgres"
	"github.com/frahmantamala/attendance-system/internal/testutil"
	"github.com/frahmantamala/attendance-system/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db      *sqlx.DB
		router  *chi.Mux
		fixture *testutil.Fixture
	)

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	get := func(id uuid.UUID) attendance.AttendanceResponse {
		w := do(http.MethodGet, "/api/attendances/"+id.String(), nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		var resp attendance.AttendanceResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	BeforeEach(func() {
		var err error
		db, err = testutil.OpenDB()
		Expect(err).NotTo(HaveOccurred())
		fixture, err = testutil.SeedFixture(db)
		Expect(err).NotTo(HaveOccurred())

		slogger := testutil.Logger()
		service := attendance.NewService(attendancePostgres.NewAttendanceRepository(db, slogger), slogger)
		handler := attendance.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		transport.MountResource(router, "/api/attendances", handler)
	})

	AfterEach(func() {
		db.Close()
	})

	It("should create an attendance day and read it back with its entries", func() {
		w := do(http.MethodPost, "/api/attendances", map[string]interface{}{
			"departmentId": fixture.Department.ID,
			"date":         "2024-03-01",
			"employeeAttendances": []map[string]interface{}{
				{"employeeId": fixture.Employee.ID, "present": true, "timeIn": "09:00", "timeOut": "17:30", "totalWorkedHours": 8.5},
				{"employeeId": fixture.Employee.ID, "employeeLeaveId": fixture.EmployeeLeave.ID, "present": false, "reason": "annual leave"},
			},
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		var id uuid.UUID
		Expect(json.NewDecoder(w.Body).Decode(&id)).To(Succeed())

		resp := get(id)
		Expect(resp.DepartmentID).To(Equal(fixture.Department.ID))
		Expect(resp.Date.String()).To(Equal("2024-03-01"))
		Expect(resp.EmployeeAttendances).To(HaveLen(2))

		var onLeave int
		for _, e := range resp.EmployeeAttendances {
			Expect(e.AttendanceID).To(HaveValue(Equal(id)))
			if e.EmployeeLeaveID != nil {
				onLeave++
				Expect(*e.EmployeeLeaveID).To(Equal(fixture.EmployeeLeave.ID))
				Expect(e.Present).To(BeFalse())
				Expect(e.Reason).To(Equal("annual leave"))
			} else {
				Expect(e.TotalWorkedHours).To(Equal(8.5))
			}
		}
		Expect(onLeave).To(Equal(1))
	})

	It("should replace the entries on update and remove everything on delete", func() {
		w := do(http.MethodPost, "/api/attendances", map[string]interface{}{
			"departmentId": fixture.Department.ID,
			"date":         "2024-03-01",
			"employeeAttendances": []map[string]interface{}{
				{"employeeId": fixture.Employee.ID, "present": true},
				{"employeeId": fixture.Employee.ID, "present": false},
			},
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		var id uuid.UUID
		Expect(json.NewDecoder(w.Body).Decode(&id)).To(Succeed())
		kept := get(id).EmployeeAttendances[0].ID

		w = do(http.MethodPut, "/api/attendances/"+id.String(), map[string]interface{}{
			"departmentId": fixture.Department.ID,
			"date":         "2024-03-04T00:00:00Z",
			"employeeAttendances": []map[string]interface{}{
				{"id": kept, "employeeId": fixture.Employee.ID, "present": true, "timeIn": "10:15"},
			},
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		resp := get(id)
		Expect(resp.Date.String()).To(Equal("2024-03-04"))
		Expect(resp.EmployeeAttendances).To(HaveLen(1))
		Expect(resp.EmployeeAttendances[0].ID).To(Equal(kept))
		Expect(resp.EmployeeAttendances[0].TimeIn).To(Equal("10:15"))

		Expect(do(http.MethodDelete, "/api/attendances/"+id.String(), nil).Code).To(Equal(http.StatusOK))
		Expect(do(http.MethodGet, "/api/attendances/"+id.String(), nil).Code).To(Equal(http.StatusNotFound))

		var remaining int
		Expect(db.Get(&remaining, `SELECT COUNT(*) FROM "EmployeeAttendances"`)).To(Succeed())
		Expect(remaining).To(BeZero())
	})

	It("should answer 400 with indexed field errors for an invalid nested entry", func() {
		w := do(http.MethodPost, "/api/attendances", map[string]interface{}{
			"departmentId": fixture.Department.ID,
			"date":         "2024-03-01",
			"employeeAttendances": []map[string]interface{}{
				{"employeeId": fixture.Employee.ID, "present": true, "timeIn": "9am"},
			},
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("employeeAttendances[0].timeIn"))
	})

	It("should answer 500 and store nothing when an entry references an unknown employee", func() {
		w := do(http.MethodPost, "/api/attendances", map[string]interface{}{
			"departmentId": fixture.Department.ID,
			"date":         "2024-03-01",
			"employeeAttendances": []map[string]interface{}{
				{"employeeId": fixture.Employee.ID, "present": true},
				{"employeeId": uuid.New(), "present": true},
			},
		})
		Expect(w.Code).To(Equal(http.StatusInternalServerError))

		w = do(http.MethodGet, "/api/attendances", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("should answer 404 when updating an unknown attendance", func() {
		w := do(http.MethodPut, "/api/attendances/"+uuid.New().String(), map[string]interface{}{
			"departmentId": fixture.Department.ID,
			"date":         "2024-03-01",
		})
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
