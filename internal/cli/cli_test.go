package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/config"
	"azure-cost-planner/internal/estimate"
)

func clearPlannerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PLANNER_CONFIG_FILE", "PLANNER_LISTEN_ADDR", "PLANNER_LOG_LEVEL", "PLANNER_CURRENCY",
		"PLANNER_DEFAULT_HOURS", "PLANNER_PRICE_SOURCE",
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearPlannerEnv(t)
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateCommandDefaults(t *testing.T) {
	out, err := run(t, "estimate")
	if err != nil {
		t.Fatalf("estimate err: %v", err)
	}
	for _, want := range []string{
		"South India (southindia)",
		"Standard_B1s",
		"Linux",
		"Hours per month: 730",
		"INR 0.0120",
		"Monthly cost:    INR 8.76",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEstimateCommandFlags(t *testing.T) {
	out, err := run(t, "estimate", "--region", "westeurope", "--vm-size", "Standard_D4s_v5", "--os", "Windows", "--hours", "100", "--currency", "USD")
	if err != nil {
		t.Fatalf("estimate err: %v", err)
	}
	if !strings.Contains(out, "West Europe (westeurope)") || !strings.Contains(out, "USD 24.80") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEstimateCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "unknown region", args: []string{"estimate", "--region", "mars"}, want: estimate.ErrConfigurationNotFound},
		{name: "bad os", args: []string{"estimate", "--os", "BSD"}, want: catalog.ErrUnknownOS},
		{name: "bad hours", args: []string{"estimate", "--hours", "0"}, want: estimate.ErrInvalidHours},
		{name: "bad currency", args: []string{"estimate", "--currency", "EUR"}, want: estimate.ErrUnknownCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "--vm-size", "Standard_D2s_v5", "--os", "Windows")
	if err != nil {
		t.Fatalf("compare err: %v", err)
	}
	eastus := strings.Index(out, "eastus")
	westeurope := strings.Index(out, "westeurope")
	if eastus < 0 || westeurope < 0 || eastus > westeurope {
		t.Fatalf("rows not sorted by price:\n%s", out)
	}
	if !strings.Contains(out, "Cheapest:       East Us (eastus) at INR 86.14/month") {
		t.Fatalf("missing cheapest summary:\n%s", out)
	}
	if !strings.Contains(out, "Most expensive: West Europe (westeurope) at INR 90.52/month") {
		t.Fatalf("missing most expensive summary:\n%s", out)
	}
}

func TestCompareCommandRetailSource(t *testing.T) {
	clearPlannerEnv(t)
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte("priceSource: retail\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"compare", "--config", path})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); !errors.Is(err, estimate.ErrNoPricingData) {
		t.Fatalf("err=%v want ErrNoPricingData", err)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	if err != nil {
		t.Fatalf("catalog err: %v", err)
	}
	for _, want := range []string{"5 regions:", "South East Asia", "6 VM sizes:", "Standard_F2s_v2", "60 hourly prices:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCatalogCommandPriceRows(t *testing.T) {
	out, err := run(t, "catalog", "--currency", "USD")
	if err != nil {
		t.Fatalf("catalog err: %v", err)
	}
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 5 && fields[3] == "USD" {
			rows++
		}
	}
	if rows != catalog.Default().Len() {
		t.Fatalf("printed %d price rows want %d:\n%s", rows, catalog.Default().Len(), out)
	}
	if !strings.Contains(out, "westeurope") || !strings.Contains(out, "USD 0.2480") {
		t.Fatalf("missing westeurope Standard_D4s_v5 Windows row:\n%s", out)
	}
}

func TestOSFlagUsageListsSystems(t *testing.T) {
	if got := osFlagUsage(); got != "operating system (Linux, Windows)" {
		t.Fatalf("osFlagUsage()=%q", got)
	}
}

func TestNewLoggerHonoursWriter(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "debug").Debug("to buffer")
	if !strings.Contains(buf.String(), "to buffer") {
		t.Fatalf("custom writer not used: %q", buf.String())
	}
	if newLogger(os.Stderr, "info") == nil {
		t.Fatalf("stderr logger should not be nil")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version err: %v", err)
	}
	if !strings.HasPrefix(out, "planner ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunServerServesAPI(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	cfg := config.DefaultConfig()
	cfg.ListenAddr = addr
	cfg.ShutdownTimeoutSeconds = 1
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx, cfg, logger) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/v1/health")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never became ready: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status=%d", resp.StatusCode)
	}

	metrics, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("metrics err: %v", err)
	}
	body, _ := io.ReadAll(metrics.Body)
	metrics.Body.Close()
	if !strings.Contains(string(body), "planner_known_regions") {
		t.Fatalf("pricing metrics not exposed:\n%s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServer err: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
