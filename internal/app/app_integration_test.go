//go:build integration

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/slug-shortener/internal/config"
	"github.com/vadimbarashkov/slug-shortener/migrations"

	pg "github.com/vadimbarashkov/slug-shortener/pkg/postgres"
)

type APITestSuite struct {
	suite.Suite
	pgCont testcontainers.Container
	cfg    config.Config
	db     *sqlx.DB
	logger *httplog.Logger
	server *httptest.Server
	e      *httpexpect.Expect
}

func (suite *APITestSuite) SetupSuite() {
	ctx := context.Background()

	pgUser := "test"
	pgPassword := "test"
	pgDB := "slug_shortener"

	var err error
	suite.pgCont, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDB,
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		suite.T().Fatalf("Failed to start postgres container: %v", err)
	}
	suite.T().Cleanup(func() {
		if err := suite.pgCont.Terminate(ctx); err != nil {
			suite.T().Fatalf("Failed to terminate postgres container: %v", err)
		}
	})

	pgHost, err := suite.pgCont.Host(ctx)
	if err != nil {
		suite.T().Fatalf("Failed to get postgres container host: %v", err)
	}

	pgPort, err := suite.pgCont.MappedPort(ctx, "5432")
	if err != nil {
		suite.T().Fatalf("Failed to get postgres container port: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		suite.T().Fatalf("Failed to load config: %v", err)
	}
	suite.cfg = *cfg
	suite.cfg.Postgres.URL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort.Int(), pgDB)

	if err := pg.RunMigrations(migrations.FS, suite.cfg.Postgres.DSN()); err != nil {
		suite.T().Fatalf("Failed to run migrations: %v", err)
	}

	suite.db, err = pg.New(ctx, suite.cfg.Postgres.DSN())
	if err != nil {
		suite.T().Fatalf("Failed to connect to database: %v", err)
	}
	suite.T().Cleanup(func() {
		if err := suite.db.Close(); err != nil {
			suite.T().Fatalf("Failed to close database: %v", err)
		}
	})

	suite.logger = httplog.NewLogger("", httplog.Options{Writer: io.Discard})
	suite.server = httptest.NewServer(newRouter(suite.logger, suite.db, &suite.cfg))
	suite.T().Cleanup(func() {
		suite.server.Close()
	})

	suite.e = httpexpect.Default(suite.T(), suite.server.URL)
}

func (suite *APITestSuite) TearDownSubTest() {
	if _, err := suite.db.Exec("TRUNCATE TABLE access_tokens, refresh_tokens, records RESTART IDENTITY CASCADE"); err != nil {
		suite.T().Fatalf("Failed to truncate tables: %v", err)
	}
}

func (suite *APITestSuite) create(slug, url string) {
	suite.e.POST("/new").
		WithJSON(map[string]any{"slug": slug, "url": url}).
		Expect().
		Status(http.StatusCreated)
}

func (suite *APITestSuite) TestRecords() {
	suite.Run("create then resolve", func() {
		suite.create("abc", "http://x.com")

		resp := suite.e.GET("/abc").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("slug", "abc")
		resp.HasValue("url", "http://x.com")
		resp.Value("last_used_at").NotNull()
	})

	suite.Run("duplicate slug without overwrite", func() {
		suite.create("abc", "http://x.com")

		suite.e.POST("/new").
			WithJSON(map[string]any{"slug": "abc", "url": "http://y.com"}).
			Expect().
			Status(http.StatusConflict)

		suite.e.GET("/abc").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("url", "http://x.com")
	})

	suite.Run("duplicate slug with overwrite", func() {
		suite.create("abc", "http://x.com")

		suite.e.POST("/new").
			WithJSON(map[string]any{"slug": "abc", "url": "http://y.com", "overwrite": true}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("url", "http://y.com")
	})

	suite.Run("unknown slug", func() {
		suite.e.GET("/missing").
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("recently used first, never used last", func() {
		suite.create("first", "http://1.com")
		suite.create("second", "http://2.com")
		suite.create("third", "http://3.com")

		suite.e.GET("/first").Expect().Status(http.StatusOK)

		records := suite.e.GET("/").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("records").Array()

		records.Length().IsEqual(3)
		records.Value(0).Object().HasValue("slug", "first")
		records.Value(1).Object().HasValue("slug", "third")
		records.Value(2).Object().HasValue("slug", "second")
	})
}

func (suite *APITestSuite) TestTokens() {
	suite.Run("issue and validate", func() {
		refresh := suite.e.POST("/api/v1/tokens/refresh").
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		refreshID := int64(refresh.Value("id").Number().Raw())
		refreshToken := refresh.Value("token").String().Raw()

		suite.e.GET("/api/v1/tokens/refresh/{token}", refreshToken).
			Expect().
			Status(http.StatusOK)

		access := suite.e.POST("/api/v1/tokens/access").
			WithJSON(map[string]any{"refresh_token_id": refreshID}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		access.HasValue("refresh_token_id", refreshID)

		suite.e.GET("/api/v1/tokens/access/{token}", access.Value("token").String().Raw()).
			Expect().
			Status(http.StatusOK)
	})

	suite.Run("unknown tokens", func() {
		suite.e.GET("/api/v1/tokens/refresh/{token}", "nope").
			Expect().
			Status(http.StatusNotFound)

		suite.e.GET("/api/v1/tokens/access/{token}", "nope").
			Expect().
			Status(http.StatusNotFound)

		suite.e.POST("/api/v1/tokens/access").
			WithJSON(map[string]any{"refresh_token_id": 999}).
			Expect().
			Status(http.StatusNotFound)
	})
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
