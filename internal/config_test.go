package internal_test

import (
	"os"
	"time"

	"github.com/frahmantamala/attendance-system/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	valid := func() *internal.Config {
		return &internal.Config{
			Server: internal.ServerConfig{
				Port:              8080,
				AllowedOrigins:    "http://localhost:3000, *",
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
			},
			Database: internal.DatabaseConfig{
				Source:       "postgres://localhost/attendance",
				MaxOpenConns: 10,
				MaxIdleConns: 2,
			},
			Observability: internal.ObservabilityConfig{
				Logging: internal.LoggingConfig{Level: "info", Format: "json"},
			},
		}
	}

	It("should accept a complete configuration", func() {
		cfg := valid()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Server.Origins()).To(Equal([]string{"http://localhost:3000", "*"}))
	})

	It("should report every problem at once", func() {
		cfg := valid()
		cfg.Database.Source = ""
		cfg.Observability.Logging.Level = "verbose"
		cfg.Server.ReadTimeout = time.Second

		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("source is required"))
		Expect(err.Error()).To(ContainSubstring(`unknown log level "verbose"`))
		Expect(err.Error()).To(ContainSubstring("read_timeout"))
		Expect(err.Error()).To(ContainSubstring("; "))
	})

	It("should reject more idle than open connections", func() {
		cfg := valid()
		cfg.Database.MaxIdleConns = 20
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("max_idle_conns")))
	})

	It("should reject a relative origin", func() {
		cfg := valid()
		cfg.Server.AllowedOrigins = "localhost"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("invalid allowed origin")))
	})

	Describe("LoadConfigFromEnv", func() {
		BeforeEach(func() {
			os.Setenv("DATABASE_URL", "postgres://env/attendance")
			os.Setenv("HTTP_PORT", "9090")
			os.Setenv("DATABASE_AUTO_MIGRATE", "false")
		})

		AfterEach(func() {
			os.Unsetenv("DATABASE_URL")
			os.Unsetenv("HTTP_PORT")
			os.Unsetenv("DATABASE_AUTO_MIGRATE")
		})

		It("should read plain environment variables", func() {
			cfg := internal.LoadConfigFromEnv()
			Expect(cfg.Database.Source).To(Equal("postgres://env/attendance"))
			Expect(cfg.Server.Port).To(Equal(9090))
			Expect(cfg.Database.AutoMigrate).To(BeFalse())
			Expect(cfg.Validate()).To(Succeed())
		})
	})
})
