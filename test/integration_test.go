// ABOUTME: Integration tests for the nutrilog CLI.
// ABOUTME: Builds the binary and drives a full logging-and-graphing workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "nutrilog")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/nutrilog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Point XDG dirs at a temp home so the run is hermetic
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Log food
	output, err := run("food", "add", "oatmeal", "350")
	if err != nil {
		t.Fatalf("Failed to add food: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged oatmeal") {
		t.Errorf("Expected 'Logged oatmeal' in output, got: %s", output)
	}

	// Log exercise
	output, err = run("exercise", "add", "running", "400")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged running") {
		t.Errorf("Expected 'Logged running' in output, got: %s", output)
	}

	// List food for today
	output, err = run("food", "list")
	if err != nil {
		t.Fatalf("Failed to list food: %v\n%s", err, output)
	}
	if !strings.Contains(output, "oatmeal") {
		t.Errorf("Expected 'oatmeal' in list output, got: %s", output)
	}
	if !strings.Contains(output, "350") {
		t.Errorf("Expected daily total in list output, got: %s", output)
	}

	// Log sleep
	output, err = run("sleep", "add", "23:00", "07:00")
	if err != nil {
		t.Fatalf("Failed to add sleep: %v\n%s", err, output)
	}
	if !strings.Contains(output, "8h 0m") {
		t.Errorf("Expected '8h 0m' in output, got: %s", output)
	}

	// Sleep stats cover the logged night
	output, err = run("sleep", "stats")
	if err != nil {
		t.Fatalf("Failed to get sleep stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "8h 0m") {
		t.Errorf("Expected '8h 0m' in stats, got: %s", output)
	}
	if !strings.Contains(output, "7-9h streak:") {
		t.Errorf("Expected '7-9h streak:' label in stats, got: %s", output)
	}

	// Set goals
	output, err = run("goal", "weight", "85")
	if err != nil {
		t.Fatalf("Failed to set weight: %v\n%s", err, output)
	}
	output, err = run("goal", "calories", "2000")
	if err != nil {
		t.Fatalf("Failed to set calorie goal: %v\n%s", err, output)
	}
	output, err = run("goal", "show")
	if err != nil {
		t.Fatalf("Failed to show goals: %v\n%s", err, output)
	}
	if !strings.Contains(output, "85") || !strings.Contains(output, "2000") {
		t.Errorf("Expected goals in output, got: %s", output)
	}

	// Graph renders the logged week
	output, err = run("graph", "1w")
	if err != nil {
		t.Fatalf("Failed to render graph: %v\n%s", err, output)
	}
	if !strings.Contains(output, "net") {
		t.Errorf("Expected net values in graph output, got: %s", output)
	}

	// Export round-trips through a file
	exportPath := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "-o", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("Export file missing: %v", err)
	}
	output, err = run("import", exportPath)
	if err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, output)
	}

	// Import kept IDs, so the food list still has one entry
	output, err = run("food", "list")
	if err != nil {
		t.Fatalf("Failed to list after import: %v\n%s", err, output)
	}
	if strings.Count(output, "oatmeal") != 1 {
		t.Errorf("Expected exactly one oatmeal entry after import, got: %s", output)
	}
}

func TestGraphNoData(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "nutrilog")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/nutrilog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	tmpDir := t.TempDir()
	cmd := exec.Command(binary, "graph")
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("graph failed on empty database: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "No data for selected range.") {
		t.Errorf("Expected empty-range message, got: %s", output)
	}
}
