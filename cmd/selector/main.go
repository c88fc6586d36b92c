package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"selection-lab/classifier/lexicon"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/infrastructure/grpc/client"
	"selection-lab/infrastructure/storage"
	"selection-lab/internal"
	"selection-lab/runtime"
	"selection-lab/runtime/workers"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run reads selections from stdin, one per line, and prints the classified
// results as they arrive. Deferred cleanups run before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Classifier, local or sidecar
	sup := workers.NewSupervisor(log, config.RestartInterval)
	classifier, closeClassifier, err := newClassifier(ctx, config, sup, log)
	if err != nil {
		return err
	}
	defer closeClassifier()

	// 4. Cache (BadgerDB)
	db, err := storage.OpenDB(config.CacheFilepath)
	if err != nil {
		return fmt.Errorf("cache opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing cache...")
		_ = db.Close()
	}()
	cached := storage.NewCachedClassifier(classifier, db, config.CacheTTL, log)

	// 5. Supervision & Orchestration
	orchestrator := runtime.NewOrchestrator(
		log, sup, cached, contract.ResultSinkFunc(printResult),
		config.NumberOfWorkers, config.BufferSize, config.ClassifierTimeout, config.ReportInterval,
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = orchestrator.Start(ctx)
	}()

	// 6. Read selections until EOF or a signal
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	dispatcher := orchestrator.Dispatcher()
loop:
	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down gracefully...")
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			handleLine(dispatcher, line)
		}
	}

	// 7. Final Cleanup
	orchestrator.Stop()
	<-done
	stats := orchestrator.Stats()
	log.Info("Program stopped cleanly",
		"delivered", stats.Delivered, "failed", stats.Failed, "canceled", stats.Canceled)
	return nil
}

func newClassifier(ctx context.Context, config internal.Config,
	sup contract.ISupervisor, log *slog.Logger) (contract.Classifier, func(), error) {
	if config.UseSpecialist() {
		specialist, err := client.StartSpecialist(ctx, client.Config{
			ID:       "lexicon",
			BinPath:  config.SpecialistBinPath,
			Host:     config.SpecialistHost,
			Port:     config.SpecialistPort,
			LogLevel: config.LogLevel,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("specialist failed to start: %w", err)
		}
		log.Info("Specialist ready", "id", specialist.ID, "port", specialist.Port)
		sup.Add(workers.NewProcessMonitor(log, specialist.ID, specialist.Process.Pid, config.ReportInterval))
		return specialist, func() { _ = specialist.Kill() }, nil
	}

	data, err := runtime.LoadDefaultLexicon()
	if err != nil {
		return nil, nil, fmt.Errorf("lexicon loading failed: %w", err)
	}
	classifier, err := lexicon.New(data.Entries, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Lexicon loaded", "labels", data.Labels, "words", data.Words)
	return classifier, func() {}, nil
}

func handleLine(dispatcher contract.IDispatcher, line string) {
	cmd, err := parseCommand(line)
	if err != nil {
		color.Red.Println(err)
		return
	}

	switch cmd.op {
	case opSkip:
		return
	case opCancel:
		dispatcher.CancelAllRequests()
		color.Yellow.Printf("canceled, generation %d\n", dispatcher.Generation())
		return
	}

	send := dispatcher.SendClassifyRequest
	if cmd.op == opSuggest {
		send = dispatcher.SendSuggestAndClassifyRequest
	}
	id, err := send(cmd.text, cmd.start, cmd.end)
	if err != nil {
		color.Red.Println(err)
		return
	}
	color.Gray.Printf("request %d dispatched\n", id)
}

func printResult(result selection.Result) {
	color.Green.Printf("%s", result.Label)
	fmt.Printf(" adjust=[%d,%d] action=%s", result.StartAdjust, result.EndAdjust, result.Action.ID)
	if match, ok := result.Action.Extras["match"]; ok {
		color.Cyan.Printf(" %q", match)
	}
	fmt.Println()
}
