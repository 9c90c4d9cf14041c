package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/iudanet/recordsync/internal/config"
	"github.com/iudanet/recordsync/internal/remote"
	"github.com/iudanet/recordsync/internal/storage/boltdb"
	"github.com/iudanet/recordsync/internal/storage/sqlite"
	"github.com/iudanet/recordsync/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	// Флаги переопределяют окружение
	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local records database")
	flag.StringVar(&cfg.MetaDBPath, "meta", cfg.MetaDBPath, "Path to sync metadata database")
	flag.StringVar(&cfg.RemoteFile, "remote", cfg.RemoteFile, "Path to remote records file")
	flag.StringVar(&cfg.MappingsFile, "mappings", cfg.MappingsFile, "Path to mapping declarations")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of records reconciled concurrently")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	if !slices.Contains([]string{"sync", "status"}, command) {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cfg.LoadMappings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, command, cfg, logger)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, cfg *config.Config, logger *slog.Logger) error {
	records, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open records database: %w", err)
	}
	defer func() {
		if err := records.Close(); err != nil {
			logger.Error("failed to close records database", "error", err)
		}
	}()

	metadata, err := boltdb.New(ctx, cfg.MetaDBPath)
	if err != nil {
		return fmt.Errorf("failed to open metadata database: %w", err)
	}
	defer func() {
		if err := metadata.Close(); err != nil {
			logger.Error("failed to close metadata database", "error", err)
		}
	}()

	remoteStore, err := remote.OpenFileStore(cfg.RemoteFile)
	if err != nil {
		return err
	}

	bindings := make([]*sync.Binding, 0, len(cfg.Mappings))
	for _, m := range cfg.Mappings {
		table, err := m.Build()
		if err != nil {
			return err
		}
		bindings = append(bindings, sync.NewBinding(m.Name, m.ObjectType, m.RemoteType, table))
	}

	service := sync.NewService(sync.Options{
		Records:  records,
		Metadata: metadata,
		Remote:   remoteStore,
		Logger:   logger,
		Bindings: bindings,
		Workers:  cfg.Workers,
	})

	switch command {
	case "sync":
		return runSync(ctx, service, remoteStore)
	case "status":
		return runStatus(ctx, service)
	}

	return nil
}

func runSync(ctx context.Context, service sync.Service, remoteStore *remote.FileStore) error {
	result, err := service.Sync(ctx)

	// Сохраняем удаленное хранилище даже после частичного прохода
	if saveErr := remoteStore.Save(); saveErr != nil {
		return saveErr
	}

	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	fmt.Println("✓ Synchronization completed")
	fmt.Printf("Local records collected:  %d\n", result.LocalRecords)
	fmt.Printf("Remote records collected: %d\n", result.RemoteRecords)
	fmt.Printf("Local updated / created:  %d / %d\n", result.LocalUpdated, result.LocalCreated)
	fmt.Printf("Remote updated / created: %d / %d\n", result.RemoteUpdated, result.RemoteCreated)
	fmt.Printf("Already up to date:       %d\n", result.UpToDate)
	if result.SkippedRecords > 0 {
		fmt.Printf("Skipped (errors):         %d\n", result.SkippedRecords)
	}

	return nil
}

func runStatus(ctx context.Context, service sync.Service) error {
	pending, err := service.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending records: %w", err)
	}

	fmt.Println("Pending records:")
	for _, name := range slices.Sorted(maps.Keys(pending)) {
		fmt.Printf("  %-20s %d\n", name, pending[name])
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: recordsync [flags] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync     Reconcile local records with the remote system")
	fmt.Println("  status   Show records waiting for synchronization")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Printf("recordsync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
