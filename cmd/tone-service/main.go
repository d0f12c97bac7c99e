// main package for the tone-service
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/book-expert/logger"
	"github.com/book-expert/tone-service/internal/cache"
	"github.com/book-expert/tone-service/internal/config"
	"github.com/book-expert/tone-service/internal/core"
	"github.com/book-expert/tone-service/internal/httpapi"
	"github.com/book-expert/tone-service/internal/oracle"
	"github.com/book-expert/tone-service/internal/tone"
	"github.com/book-expert/tone-service/internal/worker"
	"github.com/nats-io/nats.go"
)

func setupLogger(logPath, fileName string) (*logger.Logger, error) {
	log, err := logger.New(logPath, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

func run() error {
	// 1. Create a temporary logger for the bootstrap process
	bootstrapLog, err := setupLogger(os.TempDir(), "tone-service-bootstrap.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to create bootstrap logger: %v\n", err)

		return err
	}

	bootstrapLog.Info("Bootstrap logger created.")

	// 2. Load configuration using the central configurator
	cfg, err := config.Load(bootstrapLog)
	if err != nil {
		bootstrapLog.Error("Failed to load configuration: %v", err)

		return fmt.Errorf("failed to load configuration: %w", err)
	}

	bootstrapLog.Info("Configuration loaded successfully.")

	// 3. Initialize the final logger based on the loaded configuration
	finalLog, err := setupLogger(cfg.Paths.BaseLogsDir, "tone-service.log")
	if err != nil {
		bootstrapLog.Error("Failed to create final logger: %v", err)

		return fmt.Errorf("failed to create final logger: %w", err)
	}

	defer func() {
		closeErr := finalLog.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing final logger: %v\n", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Connect to NATS
	natsConnection, err := nats.Connect(cfg.NATS.URL, nats.Name("tone-service"))
	if err != nil {
		finalLog.Error("Failed to connect to NATS at %s: %v", cfg.NATS.URL, err)

		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer natsConnection.Close()

	// 5. Build the analyzer
	analyzer, err := buildAnalyzer(ctx, cfg, natsConnection, finalLog)
	if err != nil {
		finalLog.Error("Failed to build analyzer: %v", err)

		return err
	}

	// 6. Serve
	finalLog.System("Tone-Service successfully initialized. Listening for requests on subject: %s",
		cfg.NATS.AnalysisSubject)

	return serve(ctx, cfg, natsConnection, analyzer, finalLog)
}

func buildAnalyzer(
	ctx context.Context,
	cfg *config.Config,
	natsConnection *nats.Conn,
	log *logger.Logger,
) (core.ToneAnalyzer, error) {
	lexicon, err := loadLexicon(ctx, cfg, natsConnection, log)
	if err != nil {
		return nil, err
	}

	opts := []tone.AnalyzerOption{tone.WithLexicon(lexicon), tone.WithLogger(log)}

	if cfg.NATS.OracleSubject != "" {
		syllableOracle, oracleErr := oracle.New(natsConnection, cfg.NATS.OracleSubject, cfg.OracleTimeout())
		if oracleErr != nil {
			return nil, fmt.Errorf("failed to create syllable oracle: %w", oracleErr)
		}

		opts = append(opts, tone.WithOracle(syllableOracle))
		log.Info("Syllable count oracle enabled on subject %s", cfg.NATS.OracleSubject)
	}

	analyzer, err := tone.NewAnalyzer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	if cfg.Tone.CacheSize == 0 {
		return analyzer, nil
	}

	cached, err := cache.New(analyzer, cfg.Tone.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis cache: %w", err)
	}

	return cached, nil
}

// serve runs the NATS worker and, when configured, the HTTP API until ctx is
// cancelled or one of them fails.
func serve(
	ctx context.Context,
	cfg *config.Config,
	natsConnection *nats.Conn,
	analyzer core.ToneAnalyzer,
	log *logger.Logger,
) error {
	natsWorker, err := worker.NewNatsWorker(natsConnection, cfg.NATS.AnalysisSubject, analyzer, log,
		worker.WithMaxWordRunes(cfg.Tone.MaxWordRunes), worker.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)
	running := 1

	go func() {
		errChan <- natsWorker.Run(ctx)
	}()

	if cfg.HTTP.Addr != "" {
		server := httpapi.New(analyzer, log,
			httpapi.WithMaxWordRunes(cfg.Tone.MaxWordRunes),
			httpapi.WithRequestTimeout(cfg.RequestTimeout()),
			httpapi.WithAllowedOrigins(cfg.HTTP.AllowedOrigins))
		running++

		go func() {
			errChan <- server.ListenAndServe(ctx, cfg.HTTP.Addr)
		}()
	}

	var errs []error

	for range running {
		runErr := <-errChan
		if runErr != nil {
			log.Error("Service component stopped: %v", runErr)
			errs = append(errs, runErr)
		}

		cancel()
	}

	log.System("Tone-Service shut down.")

	return errors.Join(errs...)
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service exited with error: %v\n", err)
		os.Exit(1)
	}
}
