package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-dataset/dataio"
	"github.com/cwbudde/algo-dataset/normalize"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dsprep.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
classes: ["./data/c0.txt", "data/c1.txt", "/abs/c2.ads"]
split:
  fractions: [0.7, 0.2]
policy: range_0_1
feature_shape: [4, 1]
file_type: text
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Dir(path)
	want := []string{
		filepath.Join(dir, "data", "c0.txt"),
		filepath.Join(dir, "data", "c1.txt"),
		"/abs/c2.ads",
	}
	for i := range want {
		if cfg.Classes[i] != want[i] {
			t.Errorf("Classes[%d] = %q, want %q", i, cfg.Classes[i], want[i])
		}
	}

	if cfg.Policy != normalize.PolicyRange01 {
		t.Errorf("Policy = %v", cfg.Policy)
	}
	if cfg.FileType != dataio.KindText {
		t.Errorf("FileType = %v", cfg.FileType)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
	if cfg.Workers != 1 || cfg.Output.Format != dataio.KindBinary {
		t.Errorf("defaults not applied: workers %d, format %v", cfg.Workers, cfg.Output.Format)
	}
	if cfg.Output.Dir != filepath.Join(dir, "out") {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}

	cuts, err := cfg.Split.Resolve(100)
	if err != nil {
		t.Fatal(err)
	}
	if got := cuts.Points(); len(got) != 2 || got[0] != 70 || got[1] != 90 {
		t.Errorf("cuts = %v, want [70 90]", got)
	}
}

func TestLoadUnknownPolicy(t *testing.T) {
	path := writeConfig(t, "classes: [a.txt]\npolicy: minmax\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), `unknown policy "minmax"`) {
		t.Fatalf("error = %v, want unknown policy", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no classes", "split: {half: true}\n", "classes"},
		{"two split modes", "classes: [a]\nsplit: {half: true, cuts: [3]}\n", "only one of"},
		{"workers", "classes: [a]\nworkers: -2\n", "workers"},
		{"output format", "classes: [a]\noutput: {format: unknown}\n", "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	in := &Config{
		Classes: []string{"/data/c0.ads"},
		Split:   SplitConfig{Half: true},
		Policy:  normalize.PolicyWhiten,
		Workers: 2,
		Output:  OutputConfig{Dir: "/tmp/out", Format: dataio.KindTable},
	}
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.Policy != normalize.PolicyWhiten || !out.Split.Half || out.Output.Format != dataio.KindTable {
		t.Fatalf("round trip = %+v", out)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
