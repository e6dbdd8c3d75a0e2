package mealtrack

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mealtrack.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestTodayOnFreshDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mealtrack.db")
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--db", path, "today"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute today: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Targets: 2500 kcal")) {
		t.Fatalf("expected seeded default targets in output, got:\n%s", buf.String())
	}
}

func TestParseMealSlotRejectsUnknownSlot(t *testing.T) {
	t.Parallel()
	if _, err := parseMealSlot("brunch"); err == nil {
		t.Fatalf("expected unknown slot to fail")
	}
}

func TestParseMealSlotNormalizesCase(t *testing.T) {
	t.Parallel()
	slot, err := parseMealSlot(" Lunch ")
	if err != nil {
		t.Fatalf("parse slot: %v", err)
	}
	if string(slot) != "lunch" {
		t.Fatalf("expected lunch, got %s", slot)
	}
}
