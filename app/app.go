package corkboard

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/cors"

	"corkboard/core"
	"corkboard/pkg/router"
)

type App struct {
	config  *Config
	db      *core.SQLiteDB
	context context.Context
	server  *http.Server
	logger  *slog.Logger
	router  *router.Router

	exit chan int

	accounts *core.AccountService
	board    *core.BoardService

	cleanupFuncs []func(context.Context)
}

func New(ctx context.Context, config *Config) *App {
	var err error
	app := &App{
		exit: make(chan int),
	}
	if ctx == nil {
		ctx, _ = signal.NotifyContext(
			context.Background(),
			syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	}
	app.context = ctx

	if config == nil {
		config, err = LoadConfig()
		if err != nil {
			failed(1, "failed to load config: %v\n", err)
		}
	}
	if err := config.Validate(); err != nil {
		failed(1, FormatValidationErrors(err))
	}
	app.config = config

	app.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))

	sqliteOptions := &core.SQLiteDBOption{
		Mode:          "rwc",
		Cache:         "shared",
		JournalMode:   "WAL",
		BusyTimeoutMS: 5000,
	}
	app.db, err = core.NewSQLiteDB(app.config.SQLite.File, app.config.SQLite.Migrations, sqliteOptions)
	if err != nil {
		failed(1, "failed to open database: %v\n", err)
	}
	app.AddCleanupFunc(func(ctx context.Context) {
		app.db.Close()
	})
	if err := app.db.Migrate(); err != nil {
		failed(1, "failed to migrate database: %v\n", err)
	}

	userStore := core.NewSQLiteUserStore(app.db.DB)
	messageStore := core.NewSQLiteMessageStore(app.db.DB)
	app.accounts = core.NewAccountService(userStore)
	app.board = core.NewBoardService(messageStore, app.accounts, app.logger)

	app.router = newBoardRouter(app.logger, app.config, app.board, app.accounts)

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", app.config.Hostname, app.config.Port),
		Handler: app.router.Router,
		BaseContext: func(listener net.Listener) context.Context {
			return app.context
		},
	}

	return app
}

// newBoardRouter builds the request routing table. Dispatch mirrors the
// board's long-standing wire protocol: the method plus the action query
// parameter select the operation.
func newBoardRouter(logger *slog.Logger, config *Config, board *core.BoardService, accounts *core.AccountService) *router.Router {
	r := router.New(router.WithLogger(logger))

	r.Router.Use(router.RequestID)
	r.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	boardHandler := NewBoardHandler(board, config.ProxyIPHeader)
	accountHandler := NewAccountHandler(accounts)

	r.Get("/", boardHandler.GetMessagesHandler)

	r.Post("/", func(w http.ResponseWriter, req *http.Request) error {
		switch req.URL.Query().Get("action") {
		case "register":
			return accountHandler.RegisterHandler(w, req)
		case "login":
			return accountHandler.LoginHandler(w, req)
		case "update":
			return accountHandler.ChangePasswordHandler(w, req)
		default:
			return boardHandler.PostMessageHandler(w, req)
		}
	})

	r.Delete("/", func(w http.ResponseWriter, req *http.Request) error {
		if req.URL.Query().Get("action") == "delete" {
			return accountHandler.DeleteAccountHandler(w, req)
		}
		return router.NewJsonError(http.StatusMethodNotAllowed, "Unsupported DELETE action.")
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) error {
		return router.NewJsonError(http.StatusMethodNotAllowed, "Unsupported request method.")
	})

	return r
}

func (app *App) Start() {
	// listen for shutdown signal
	go func() {
		<-app.context.Done()
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()

		app.server.Shutdown(closeCtx)

		for _, f := range app.cleanupFuncs {
			f(closeCtx)
		}

		select {
		case <-closeCtx.Done():
			app.logger.Info("app shutdown timed out")
			app.exit <- 1
		default:
			app.logger.Info("app shutdown gracefully")
			app.exit <- 0
		}
	}()

	app.logger.Info(fmt.Sprintf("board listening on %s:%d",
		app.config.Hostname, app.config.Port))

	if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		failed(1, "server error: %v\n", err)
	}

	code := <-app.exit
	os.Exit(code)
}

func (app *App) AddCleanupFunc(f func(context.Context)) {
	app.cleanupFuncs = append(app.cleanupFuncs, f)
}

func failed(code int, s string, args ...interface{}) {
	fmt.Printf(s, args...)
	os.Exit(code)
}
