package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	snapfile "github.com/labops/labstock/internal/domains/inventory/adapters/snapshot/file"
	snappostgres "github.com/labops/labstock/internal/domains/inventory/adapters/snapshot/postgres"
	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/domains/inventory/ports"
	platformpostgres "github.com/labops/labstock/internal/platform/postgres"
)

// Prints an inventory report from the persisted snapshot without
// touching the running API.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store, cleanup := openSnapshotStore(ctx, logger)
	defer cleanup()

	items, found, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load inventory snapshot: %v", err)
	}
	if !found {
		log.Fatal("no inventory snapshot found; start the API at least once")
	}

	fmt.Printf("Inventory report (%d items)\n\n", len(items))
	for _, item := range items {
		fmt.Printf("%-8s %-32s %4d on hand  unit %s  value %s  [%s]\n",
			item.ID, item.Name, item.Quantity,
			domain.FormatINR(item.UnitPrice),
			domain.FormatINR(item.CurrentValue()),
			domain.StatusOf(item.Quantity))
	}
	fmt.Printf("\nTotal current value: %s\n", domain.FormatINR(domain.TotalCurrentValue(items)))
	fmt.Printf("Total investment:    %s\n", domain.FormatINR(domain.TotalInvestment(items)))
	fmt.Printf("Items needing restock: %d\n", domain.LowStockCount(items))
}

func openSnapshotStore(ctx context.Context, logger *slog.Logger) (ports.SnapshotStore, func()) {
	if db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger); db != nil {
		return snappostgres.NewStore(db), cleanup
	}
	path := strings.TrimSpace(os.Getenv("SNAPSHOT_FILE"))
	if path == "" {
		path = "labstock-snapshot.json"
	}
	store, err := snapfile.NewStore(path)
	if err != nil {
		log.Fatalf("failed to open snapshot file %s: %v", path, err)
	}
	return store, func() {}
}
