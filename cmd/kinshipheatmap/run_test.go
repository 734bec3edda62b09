package main

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/carbocation/kinshipmap"
)

const kin0Fixture = "FID1\tID1\tFID2\tID2\tN_SNP\tHetHet\tIBS0\tKinship\n" +
	"F1\tA\tF2\tB\t1000\t0.05\t0.05\t0.25\n" +
	"F1\tA\tF3\tC\t1000\t0.05\t0.05\t-0.0123\n"

func testConfig(t *testing.T) config {
	t.Helper()

	dir := t.TempDir()
	return config{
		Prefix:    filepath.Join(dir, "king"),
		FontSize:  7,
		OutDir:    filepath.Join(dir, "out"),
		Policy:    kinshipmap.PreserveNegative,
		Delimiter: '\t',
		Now:       time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC),
	}
}

func TestRunCrossFamilyOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pairs = true
	cfg.Histogram = true
	if err := os.WriteFile(cfg.Prefix+".kin0", []byte(kin0Fixture), 0644); err != nil {
		t.Fatal(err)
	}

	resultDir, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if expected := filepath.Join(cfg.OutDir, "result_2024-03-01_12.30.05"); resultDir != expected {
		t.Errorf("Expected result dir %s, got %s", expected, resultDir)
	}

	f, err := os.Open(filepath.Join(resultDir, "Heatmap_2024-03-01_12.30.05.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("Heatmap is not a PNG: %v", err)
	}

	if _, err := os.Stat(filepath.Join(resultDir, "Histogram_2024-03-01_12.30.05.png")); err != nil {
		t.Errorf("Histogram missing: %v", err)
	}

	pairs, err := os.ReadFile(filepath.Join(resultDir, "Pairs_2024-03-01_12.30.05.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(pairs)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a header and 2 pairs, got %q", lines)
	}
	if lines[0] != "FID1\tID1\tFID2\tID2\tSource\tKinship\tBand\tRelationship" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if lines[1] != "F1\tA\tF2\tB\tkin0\t0.25\tFirst degree\tFirst degree" {
		t.Errorf("Unexpected first pair %q", lines[1])
	}
	if lines[2] != "F1\tA\tF3\tC\tkin0\t-0.0123\tUnrelated (negative)\tUnrelated" {
		t.Errorf("Unexpected second pair %q", lines[2])
	}
}

func TestRunMissingInputLeavesNoOutput(t *testing.T) {
	cfg := testConfig(t)

	_, err := run(context.Background(), cfg)

	var mie *kinshipmap.MissingInputError
	if !errors.As(err, &mie) {
		t.Fatalf("Expected *MissingInputError, got %T (%v)", err, err)
	}

	if _, err := os.Stat(cfg.OutDir); !os.IsNotExist(err) {
		t.Errorf("Expected no output directory, got %v", err)
	}
}

func TestRunClampPolicy(t *testing.T) {
	cfg := testConfig(t)
	cfg.Policy = kinshipmap.ClampNegative
	cfg.Pairs = true
	if err := os.WriteFile(cfg.Prefix+".kin0", []byte(kin0Fixture), 0644); err != nil {
		t.Fatal(err)
	}

	resultDir, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	pairs, err := os.ReadFile(filepath.Join(resultDir, "Pairs_2024-03-01_12.30.05.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pairs), "F1\tA\tF3\tC\tkin0\t-0.0123\tUnrelated\tUnrelated") {
		t.Errorf("Clamped negative should be plainly unrelated:\n%s", pairs)
	}
}

func TestParseDelimiter(t *testing.T) {
	for input, expected := range map[string]rune{
		"tab":   '\t',
		"TAB":   '\t',
		"comma": ',',
		"space": ' ',
		"auto":  0,
	} {
		got, err := parseDelimiter(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
		}
		if got != expected {
			t.Errorf("%q: expected %q, got %q", input, expected, got)
		}
	}

	if _, err := parseDelimiter("pipe"); err == nil {
		t.Errorf("Expected an error for an unknown delimiter")
	}
}
