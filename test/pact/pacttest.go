//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "labstock-api"
	ConsumerName = "lab-dashboard"

	StateInventorySeeded = "inventory baseline seeded"
	StateItemExists      = "item ITM100 exists"
	StateItemMissing     = "no item with id ITM999"
)

const (
	ExistingItemID = "ITM100"
	MissingItemID  = "ITM999"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the dashboard consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleItemPayload provides stable test data for pact interactions.
func ExampleItemPayload() map[string]any {
	return map[string]any{
		"id":                  ExistingItemID,
		"name":                "Oscilloscope Probe",
		"unitPrice":           1250.0,
		"unitPriceDisplay":    "₹1,250.00",
		"quantity":            5,
		"initialQuantity":     10,
		"status":              "LOW",
		"currentValue":        6250.0,
		"currentValueDisplay": "₹6,250.00",
		"initialInvestment":   12500.0,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
