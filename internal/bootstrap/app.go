// Package bootstrap assembles application dependencies into a runnable App.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/educator"
	"skillgap-backend/internal/gapreports"
	"skillgap-backend/internal/interviews"
	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/llm/gemini"
	"skillgap-backend/internal/mentors"
	"skillgap-backend/internal/prep"
	"skillgap-backend/internal/quiz"
	"skillgap-backend/internal/resumes"
	"skillgap-backend/internal/search"
	"skillgap-backend/internal/shared/config"
	"skillgap-backend/internal/shared/server"
	"skillgap-backend/internal/shared/storage/db"
	"skillgap-backend/internal/shared/telemetry"
	"skillgap-backend/internal/users"
)

// App holds shared dependencies behind the HTTP surface.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Completer llm.Completer
	Searcher  search.Searcher

	UsersRepo      users.Repo
	InterviewsRepo interviews.Repo

	UsersService      *users.Service
	InterviewsService *interviews.Service
	GapReportsService *gapreports.Service
	ResumesService    *resumes.Service
	EducatorService   *educator.Service

	closeFns []func() error
}

// Build prepares all dependencies and the wired router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB

	if err := buildClients(ctx, app); err != nil {
		return nil, err
	}
	buildServices(app)

	usersHandler := users.NewHandler(app.UsersService)
	resumesHandler := resumes.NewHandler(app.ResumesService)
	gapHandler := gapreports.NewHandler(app.GapReportsService)
	quizHandler := quiz.NewHandler(app.Completer)
	prepHandler := prep.NewHandler(app.Completer)
	interviewsHandler := interviews.NewHandler(app.InterviewsService, cfg.JWTSecret)
	mentorsHandler := mentors.NewHandler(app.Searcher)
	educatorHandler := educator.NewHandler(app.EducatorService)

	app.Router = server.NewRouter(cfg,
		usersHandler,
		resumesHandler,
		gapHandler,
		quizHandler,
		prepHandler,
		interviewsHandler,
		mentorsHandler,
		educatorHandler,
	)

	return app, nil
}

// Close releases held clients and connections.
func (a *App) Close() error {
	var firstErr error
	for _, fn := range a.closeFns {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildClients wires the model and search collaborators. Missing credentials
// leave placeholders in place: every feature degrades to its fallback path
// instead of refusing to start.
func buildClients(ctx context.Context, app *App) error {
	app.Completer = llm.Placeholder{}
	if strings.TrimSpace(app.Config.GeminiAPIKey) != "" {
		client, err := gemini.NewClient(ctx, app.Config.GeminiAPIKey, app.Config.GeminiModel, app.Config.GeminiTimeout)
		if err != nil {
			return fmt.Errorf("build gemini client: %w", err)
		}
		app.Completer = client
		app.closeFns = append(app.closeFns, client.Close)
	} else {
		telemetry.Info("bootstrap.llm_placeholder", map[string]any{
			"reason": "GEMINI_API_KEY empty",
		})
	}

	app.Searcher = search.Placeholder{}
	if strings.TrimSpace(app.Config.SearchAPIKey) != "" && strings.TrimSpace(app.Config.SearchEngineID) != "" {
		client, err := search.NewGoogleClient(app.Config.SearchAPIKey, app.Config.SearchEngineID, app.Config.SearchTimeout)
		if err != nil {
			return fmt.Errorf("build search client: %w", err)
		}
		app.Searcher = client
	} else {
		telemetry.Info("bootstrap.search_placeholder", map[string]any{
			"reason": "SEARCH_API_KEY or SEARCH_ENGINE_ID empty",
		})
	}
	return nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.InterviewsRepo = &interviews.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.InterviewsRepo = interviews.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo, app.Config.JWTSecret)
	app.InterviewsService = interviews.NewService(app.InterviewsRepo)
	app.GapReportsService = gapreports.NewService(app.Completer, app.Searcher)
	app.ResumesService = resumes.NewService(app.Completer)
	app.EducatorService = educator.NewService(app.Completer, app.Searcher)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
