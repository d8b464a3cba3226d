package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/zotcurve/internal/config"
	"github.com/zotcurve/internal/grades"
	httpx "github.com/zotcurve/internal/http"
	"github.com/zotcurve/internal/http/static"
	"github.com/zotcurve/internal/http/templates"
	"github.com/zotcurve/internal/sessions"
	"golang.org/x/sync/errgroup"
)

func main() {
	defaults := config.Default()
	configPath := flag.String("config", "", "path to a yaml config file")
	addr := flag.String("address", defaults.Address, "http address to listen to")
	dbPath := flag.String("database-path", defaults.DatabasePath, "path to the sessions database")
	gradesSource := flag.String("grades", defaults.Grades, "path or url of the grades tsv file")
	defaultYear := flag.String("default-year", defaults.DefaultYear, "year selected on a fresh search form")
	watch := flag.Bool("watch", defaults.Watch, "if true, will serve from filesystem")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[ERROR] config: %s", err)
		}
		cfg = loaded
	}
	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "address":
			cfg.Address = *addr
		case "database-path":
			cfg.DatabasePath = *dbPath
		case "grades":
			cfg.Grades = *gradesSource
		case "default-year":
			cfg.DefaultYear = *defaultYear
		case "watch":
			cfg.Watch = *watch
		}
	})
	if envGrades := os.Getenv("ZOTCURVE_GRADES"); envGrades != "" {
		cfg.Grades = envGrades
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: new(slog.LevelVar),
	}))

	dataset, err := grades.NewLoader(logger).Load(ctx, cfg.Grades)
	if err != nil {
		log.Fatalf("[ERROR] failed to load grades, please report this error: %s", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DatabasePath))
	if err != nil {
		log.Fatalf("[ERROR] db: %s", err)
	}
	defer db.Close()

	var renderer templates.Renderer
	var staticHandler http.Handler
	if cfg.Watch {
		renderer = templates.NewFilesystemTemplates("./internal/http/templates")
		staticHandler = static.NewFilesystemHandler("./internal/http/static/files")
	} else {
		renderer = templates.NewEmbedTemplates()
		staticHandler = static.NewEmbedHandler()
	}

	sessionsStore := sessions.NewStore(db)
	htmlHandler := httpx.Handler(
		logger,
		renderer,
		staticHandler,
		dataset,
		sessionsStore,
		cfg.DefaultYear,
	)

	httpServer := http.Server{
		Handler: htmlHandler,
	}

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		log.Fatalf("[ERROR] tcp: %s", err)
	}
	log.Printf("[INFO] listening on %s", ln.Addr())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		shutdownCh := make(chan os.Signal, 1)
		signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdownCh)
		select {
		case sig := <-shutdownCh:
			log.Printf("[INFO] received %s, shutting down", sig)
		case <-gCtx.Done():
		}

		shutdownTimeout := 15 * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] http serve: %s", err)
	}

	log.Printf("[INFO] application stopped")
}
