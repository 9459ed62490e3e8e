package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"idea-feasibility-backend/internal/analyses"
	"idea-feasibility-backend/internal/llm/openai"
	"idea-feasibility-backend/internal/shared/config"
	"idea-feasibility-backend/internal/shared/server"
	"idea-feasibility-backend/internal/shared/server/middleware"
	"idea-feasibility-backend/internal/shared/storage/db"
	"idea-feasibility-backend/internal/shared/storage/object"
	localstore "idea-feasibility-backend/internal/shared/storage/object/local"
	s3store "idea-feasibility-backend/internal/shared/storage/object/s3"
	"idea-feasibility-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Archive         object.ObjectStore
	AnalysesRepo    analyses.Repo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	archive, err := buildArchive(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Archive: archive,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// NewService builds the analysis service without HTTP wiring. A nil DB selects the
// in-memory repository.
func NewService(cfg config.Config, sqlDB *sql.DB, archive object.ObjectStore) *analyses.Service {
	var repo analyses.Repo
	if sqlDB != nil {
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		repo = analyses.NewMemoryRepo()
	}
	return &analyses.Service{
		Repo:    repo,
		LLM:     NewLLMClient(cfg),
		Archive: archive,
	}
}

// NewLLMClient builds the remote analyzer from configuration.
func NewLLMClient(cfg config.Config) *openai.Client {
	return openai.NewClient(openai.Options{
		BaseURL:        cfg.LLMBaseURL,
		APIKey:         cfg.LLMAPIKey,
		Model:          cfg.LLMModel,
		Timeout:        time.Duration(cfg.LLMTimeoutSecs) * time.Second,
		RawLogMaxBytes: cfg.LLMLogRawMax,
	})
}

func buildServices(app *App) {
	svc := NewService(app.Config, app.DB, app.Archive)
	app.AnalysesRepo = svc.Repo
	app.AnalysesService = svc
	app.AnalysisHandler = analyses.NewHandler(svc, app.Config.ExposeStack())
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repo", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultLambdaOptions()))
	} else {
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	}
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repo", map[string]any{"reason": "database unavailable", "err": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildArchive(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ArchiveStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("ARCHIVE_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		return nil, nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
