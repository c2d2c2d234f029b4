package employeeattendance_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/attendance-system/internal/employeeattendance"
	employeeattendancePostgres "github.com/frahmantamala/attendance-system/internal/employeeattendance/postgres"
	"github.com/frahmantamala/attendance-system/internal/testutil"
	"github.com/frahmantamala/attendance-system/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Employee Attendance Handler Integration", func() {
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

	BeforeEach(func() {
		var err error
		db, err = testutil.OpenDB()
		Expect(err).NotTo(HaveOccurred())
		fixture, err = testutil.SeedFixture(db)
		Expect(err).NotTo(HaveOccurred())

		slogger := testutil.Logger()
		service := employeeattendance.NewService(employeeattendancePostgres.NewEmployeeAttendanceRepository(db, slogger), slogger)
		router = chi.NewRouter()
		transport.MountResource(router, "/api/employeesattendance", employeeattendance.NewHandler(transport.NewBaseHandler(slogger), service))
	})

	AfterEach(func() {
		db.Close()
	})

	It("should record an absence against a leave", func() {
		w := do(http.MethodPost, "/api/employeesattendance", map[string]interface{}{
			"employeeId":      fixture.Employee.ID,
			"employeeLeaveId": fixture.EmployeeLeave.ID,
			"present":         false,
			"reason":          "On leave",
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		var id uuid.UUID
		Expect(json.NewDecoder(w.Body).Decode(&id)).To(Succeed())

		w = do(http.MethodGet, "/api/employeesattendance/"+id.String(), nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{
			"id": "` + id.String() + `",
			"employeeId": "` + fixture.Employee.ID.String() + `",
			"employeeLeaveId": "` + fixture.EmployeeLeave.ID.String() + `",
			"timeIn": "",
			"timeOut": "",
			"present": false,
			"reason": "On leave",
			"totalWorkedHours": 0
		}`))
	})

	It("should update worked hours", func() {
		w := do(http.MethodPost, "/api/employeesattendance", map[string]interface{}{
			"employeeId": fixture.Employee.ID,
			"present":    true,
			"timeIn":     "09:00",
		})
		var id uuid.UUID
		Expect(json.NewDecoder(w.Body).Decode(&id)).To(Succeed())

		w = do(http.MethodPut, "/api/employeesattendance/"+id.String(), map[string]interface{}{
			"employeeId":       fixture.Employee.ID,
			"present":          true,
			"timeIn":           "09:00",
			"timeOut":          "17:30",
			"totalWorkedHours": 8.5,
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.Len()).To(BeZero())

		var got employeeattendance.EmployeeAttendanceResponse
		w = do(http.MethodGet, "/api/employeesattendance/"+id.String(), nil)
		Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
		Expect(got.TimeOut).To(Equal("17:30"))
		Expect(got.TotalWorkedHours).To(Equal(8.5))
		Expect(got.EmployeeLeaveID).To(BeNil())
	})

	It("should answer 400 when present is missing", func() {
		w := do(http.MethodPost, "/api/employeesattendance", map[string]interface{}{
			"employeeId": fixture.Employee.ID,
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(`"field":"present"`))
	})

	It("should answer 400 for a badly formatted time", func() {
		w := do(http.MethodPost, "/api/employeesattendance", map[string]interface{}{
			"employeeId": fixture.Employee.ID,
			"present":    true,
			"timeIn":     "9am",
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_TIME"))
	})

	It("should answer 500 for an unknown employee", func() {
		w := do(http.MethodPost, "/api/employeesattendance", map[string]interface{}{
			"employeeId": uuid.New(),
			"present":    true,
		})
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"code":500,"message":"Internal Server Error"}`))
	})

	It("should answer 404 for an unknown id", func() {
		Expect(do(http.MethodGet, "/api/employeesattendance/"+uuid.New().String(), nil).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodDelete, "/api/employeesattendance/"+uuid.New().String(), nil).Code).To(Equal(http.StatusNotFound))
	})
})
