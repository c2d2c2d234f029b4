package person_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/attendance-system/internal/person"
	personPostgres "github.com/frahmantamala/attendance-system/internal/person/postgres"
	"github.com/frahmantamala/attendance-system/internal/testutil"
	"github.com/frahmantamala/attendance-system/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Person Handler Integration", func() {
	var (
		db     *sqlx.DB
		router *chi.Mux
	)

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	create := func(body interface{}) uuid.UUID {
		w := do(http.MethodPost, "/api/people", body)
		Expect(w.Code).To(Equal(http.StatusOK))
		var id uuid.UUID
		Expect(json.NewDecoder(w.Body).Decode(&id)).To(Succeed())
		return id
	}

	validBody := map[string]interface{}{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"dateOfBirth": "1815-12-10",
		"email":       "ada@example.com",
	}

	BeforeEach(func() {
		var err error
		db, err = testutil.OpenDB()
		Expect(err).NotTo(HaveOccurred())

		slogger := testutil.Logger()
		service := person.NewService(personPostgres.NewPersonRepository(db, slogger), slogger)
		handler := person.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		transport.MountResource(router, "/api/people", handler)
	})

	AfterEach(func() {
		db.Close()
	})

	It("should return an empty array when there are no people", func() {
		w := do(http.MethodGet, "/api/people", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("should create, read, update and delete a person", func() {
		id := create(validBody)

		w := do(http.MethodGet, "/api/people/"+id.String(), nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{
			"id": "` + id.String() + `",
			"firstName": "Ada",
			"lastName": "Lovelace",
			"fullName": "Ada, Lovelace",
			"dateOfBirth": "1815-12-10",
			"email": "ada@example.com"
		}`))

		w = do(http.MethodPut, "/api/people/"+id.String(), map[string]interface{}{
			"firstName":   "Augusta",
			"lastName":    "King",
			"dateOfBirth": "1815-12-10T00:00:00Z",
			"email":       "augusta@example.com",
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		var got person.PersonResponse
		w = do(http.MethodGet, "/api/people/"+id.String(), nil)
		Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
		Expect(got.FullName).To(Equal("Augusta, King"))

		w = do(http.MethodDelete, "/api/people/"+id.String(), nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		w = do(http.MethodGet, "/api/people/"+id.String(), nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should answer 400 with field details for an invalid body", func() {
		w := do(http.MethodPost, "/api/people", map[string]interface{}{"email": "nope"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp struct {
			Error struct {
				Code    string `json:"code"`
				Details struct {
					Errors []struct {
						Field string `json:"field"`
					} `json:"errors"`
				} `json:"details"`
			} `json:"error"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Error.Code).To(Equal("VALIDATION_FAILED"))

		var fields []string
		for _, e := range resp.Error.Details.Errors {
			fields = append(fields, e.Field)
		}
		Expect(fields).To(ConsistOf("firstName", "lastName", "dateOfBirth", "email"))
	})

	It("should answer 400 for malformed JSON", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/people", bytes.NewBufferString(`{"firstName":`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_REQUEST_BODY"))
	})

	It("should answer 404 when updating or deleting an unknown person", func() {
		missing := uuid.New().String()
		Expect(do(http.MethodPut, "/api/people/"+missing, validBody).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodDelete, "/api/people/"+missing, nil).Code).To(Equal(http.StatusNotFound))
	})

	It("should answer 404 for a non-UUID id", func() {
		Expect(do(http.MethodGet, "/api/people/42", nil).Code).To(Equal(http.StatusNotFound))
	})

	It("should answer 500 with a generic message when the database is gone", func() {
		Expect(db.Close()).To(Succeed())
		w := do(http.MethodGet, "/api/people", nil)
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"code":500,"message":"Internal Server Error"}`))
	})
})
