// cmd/api/migrate.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/ammerola/canteen-be/internal/adapters/db"
	"github.com/ammerola/canteen-be/internal/pkg/config"
)

const migrateUsage = "usage: migrate up | down [steps] | status | force <version> | validate"

// schemaMigrator is the part of *db.Migrator the migrate command drives
type schemaMigrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Force(ctx context.Context, version int) error
	Status(ctx context.Context) (*db.MigrationStatus, error)
}

// runMigrateCommand handles `api migrate ...` and exits without serving
func runMigrateCommand(ctx context.Context, cfg *config.Config, args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) > 0 && args[0] == "validate" {
		if err := db.ValidateMigrations(cfg.Database.MigrationPath); err != nil {
			return err
		}
		fmt.Fprintln(out, "migrations OK")
		return nil
	}

	migrator, err := db.NewMigrator(migrationConfig(cfg), logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrateCommand(ctx, args, migrator, out)
}

func migrateCommand(ctx context.Context, args []string, m schemaMigrator, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(migrateUsage)
	}

	switch args[0] {
	case "up":
		if err := m.Up(ctx); err != nil {
			return err
		}
		return printStatus(ctx, m, out)

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			steps = n
		}
		for i := 0; i < steps; i++ {
			if err := m.Down(ctx); err != nil {
				return err
			}
		}
		return printStatus(ctx, m, out)

	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := m.Force(ctx, version); err != nil {
			return err
		}
		return printStatus(ctx, m, out)

	case "status":
		return printStatus(ctx, m, out)

	default:
		return fmt.Errorf("unknown migrate command %q; %s", args[0], migrateUsage)
	}
}

func printStatus(ctx context.Context, m schemaMigrator, out io.Writer) error {
	status, err := m.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "version: %d\n", status.CurrentVersion)
	fmt.Fprintf(out, "dirty:   %t\n", status.IsDirty)
	fmt.Fprintf(out, "applied: %d\n", len(status.Applied))
	fmt.Fprintf(out, "pending: %d\n", len(status.Pending))
	for _, p := range status.Pending {
		fmt.Fprintf(out, "  %d %s\n", p.Version, p.Description)
	}
	return nil
}
