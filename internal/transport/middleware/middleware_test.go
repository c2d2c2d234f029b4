package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frahmantamala/attendance-system/internal/transport/middleware"
	"github.com/frahmantamala/attendance-system/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("Middleware", func() {
	Describe("RequestID", func() {
		It("should echo the caller's trace id and attach a logger", func() {
			var hasLogger bool
			h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, hasLogger = logger.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
			req.Header.Set(middleware.TraceHeader, "trace-123")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Expect(w.Header().Get(middleware.TraceHeader)).To(Equal("trace-123"))
			Expect(hasLogger).To(BeTrue())
		})

		It("should generate a trace id when none is given", func() {
			h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(w.Header().Get(middleware.TraceHeader)).NotTo(BeEmpty())
		})
	})

	Describe("Recovery", func() {
		It("should answer the generic 500 body without the panic value", func() {
			h := middleware.Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("database password is hunter2")
			}))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/offices", nil))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(MatchJSON(`{"code":500,"message":"Internal Server Error"}`))
			Expect(w.Body.String()).NotTo(ContainSubstring("hunter2"))
		})
	})

	Describe("Logging", func() {
		It("should pass the request body through untouched", func() {
			var got string
			h := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				buf := new(bytes.Buffer)
				_, _ = buf.ReadFrom(r.Body)
				got = buf.String()
				w.WriteHeader(http.StatusCreated)
			}))
			body := `{"firstName":"Ada","dateOfBirth":"1815-12-10"}`
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/people", strings.NewReader(body)))

			Expect(got).To(Equal(body))
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		logged := func(method, path, body string, handler http.HandlerFunc) (string, *httptest.ResponseRecorder) {
			var buf bytes.Buffer
			l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			req := httptest.NewRequest(method, path, strings.NewReader(body))
			req = req.WithContext(logger.WithLogger(req.Context(), l))
			w := httptest.NewRecorder()
			middleware.Logging(handler).ServeHTTP(w, req)
			return buf.String(), w
		}

		It("should hand a body larger than the log cap to the handler in full", func() {
			body := `{"description":"` + strings.Repeat("x", 64*1024) + `","tail":"end-marker"}`
			var got string
			out, _ := logged(http.MethodPost, "/api/leaves", body, func(w http.ResponseWriter, r *http.Request) {
				buf := new(bytes.Buffer)
				_, _ = buf.ReadFrom(r.Body)
				got = buf.String()
			})

			Expect(got).To(Equal(body))
			Expect(out).To(ContainSubstring("TRUNCATED"))
			Expect(out).NotTo(ContainSubstring("end-marker"))
			Expect(len(out)).To(BeNumerically("<", 16*1024))
		})

		It("should mask email addresses in request and response bodies", func() {
			out, _ := logged(http.MethodPost, "/api/employees",
				`{"personId":"p","workEmail":"ada@work.example.com"}`,
				func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`[{"email":"ada@example.com","firstName":"Ada"}]`))
				})

			Expect(out).NotTo(ContainSubstring("ada@work.example.com"))
			Expect(out).NotTo(ContainSubstring("ada@example.com"))
			Expect(out).To(ContainSubstring("[FILTERED]"))
			Expect(out).To(ContainSubstring("Ada"))
		})

		It("should not log a truncated response body", func() {
			secret := `{"email":"` + strings.Repeat("a", 8*1024) + `@example.com"}`
			out, w := logged(http.MethodGet, "/api/people", "", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(secret))
			})

			Expect(w.Body.String()).To(Equal(secret))
			Expect(out).NotTo(ContainSubstring("aaaa"))
			Expect(out).To(ContainSubstring("TRUNCATED"))
		})
	})
})
