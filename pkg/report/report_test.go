package report

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/mocks"
)

func demoSnapshot(t *testing.T) fat.Snapshot {
	t.Helper()
	fs := fat.NewDefault()
	for _, f := range []struct {
		name string
		size int
	}{
		{"DOC_A.TXT", 2500},
		{"IMG_B.JPG", 1500},
		{"EMPTY", 0},
	} {
		if err := fs.Allocate(f.name, f.size); err != nil {
			t.Fatalf("Allocate(%q) failed: %v", f.name, err)
		}
	}
	return fs.Snapshot()
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
	}{
		{"directory", ViewDirectory},
		{"dir", ViewDirectory},
		{"fat", ViewTable},
		{"stats", ViewStats},
		{"", ViewAll},
	}
	for _, tt := range tests {
		got, err := ParseView(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseView(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseView("bogus"); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestTextFormatter_Directory(t *testing.T) {
	out, err := NewTextFormatter().Format(demoSnapshot(t), ViewDirectory)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, check := range []string{"DOC_A.TXT", "2500", "IMG_B.JPG", "1500", "EMPTY"} {
		if !strings.Contains(out, check) {
			t.Errorf("expected output to contain %q:\n%s", check, out)
		}
	}
	if strings.Index(out, "DOC_A.TXT") > strings.Index(out, "IMG_B.JPG") {
		t.Error("expected slot order")
	}
}

func TestTextFormatter_Table(t *testing.T) {
	out, err := NewTextFormatter().Format(demoSnapshot(t), ViewTable)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "| ") && len(l) > 0 && l[0] >= '0' && l[0] <= '9' {
			rows = append(rows, l)
		}
	}
	if len(rows) != 12 {
		t.Fatalf("expected 12 cluster rows, got %d:\n%s", len(rows), out)
	}

	// DOC_A: 0 -> 1 -> 2, IMG_B: 3 -> 4.
	wantValues := []string{"1", "2", "-1", "4", "-1", "0"}
	for i, want := range wantValues {
		fields := strings.Split(rows[i], "|")
		if got := strings.TrimSpace(fields[1]); got != want {
			t.Errorf("row %d: expected value %q, got %q", i, want, got)
		}
	}
	if !strings.Contains(rows[2], "EOF") {
		t.Errorf("expected EOF marker in row 2: %q", rows[2])
	}
}

func TestTextFormatter_Stats(t *testing.T) {
	out, err := NewTextFormatter().Format(demoSnapshot(t), ViewStats)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	for _, check := range []string{"12", "7", "5", "7168", "5120"} {
		if !strings.Contains(out, check) {
			t.Errorf("expected output to contain %q:\n%s", check, out)
		}
	}
}

func TestTextFormatter_EmptyDirectory(t *testing.T) {
	out, err := NewTextFormatter().Format(fat.NewDefault().Snapshot(), ViewAll)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(out, "EOF") {
		t.Error("expected no end-of-chain entries in an empty table")
	}
}

func TestYAMLFormatter_All(t *testing.T) {
	out, err := NewYAMLFormatter().Format(demoSnapshot(t), ViewAll)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}

	if doc.Geometry == nil || doc.Geometry.NumClusters != 12 {
		t.Errorf("unexpected geometry %+v", doc.Geometry)
	}
	if doc.Files == nil || len(*doc.Files) != 3 {
		t.Fatalf("expected 3 files, got %v", doc.Files)
	}
	files := *doc.Files
	if len(files[0].Chain) != 3 || files[0].Chain[2] != 2 {
		t.Errorf("unexpected DOC_A chain %v", files[0].Chain)
	}
	if files[2].StartCluster != fat.NoCluster || len(files[2].Chain) != 0 {
		t.Errorf("unexpected zero-byte entry %+v", files[2])
	}
	if len(doc.Table) != 12 || doc.Table[0].Next == nil || *doc.Table[0].Next != 1 {
		t.Errorf("unexpected table head %+v", doc.Table[0])
	}
	if doc.Table[2].State != "eof" || doc.Table[11].State != "free" {
		t.Errorf("unexpected states %q %q", doc.Table[2].State, doc.Table[11].State)
	}
	if doc.Stats == nil || doc.Stats.Used != 5 {
		t.Errorf("unexpected stats %+v", doc.Stats)
	}
}

func TestYAMLFormatter_EmptyDirectoryKeepsKey(t *testing.T) {
	out, err := NewYAMLFormatter().Format(fat.NewDefault().Snapshot(), ViewDirectory)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "files: []") {
		t.Errorf("expected empty file list, got %q", out)
	}
}

func TestForName(t *testing.T) {
	if _, err := ForName("yaml"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ForName("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriter_Write(t *testing.T) {
	storage := mocks.NewStorage()

	w := NewWriter(NewYAMLFormatter(), storage)
	if err := w.Write("out/snapshot.yaml", demoSnapshot(t), ViewStats); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := storage.GetFile("out/snapshot.yaml")
	if !ok {
		t.Fatal("expected snapshot to be written")
	}
	if !strings.Contains(string(data), "used: 5") {
		t.Errorf("unexpected content:\n%s", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	storage := mocks.NewStorage()
	storage.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("disk full")
	}

	w := NewWriter(NewTextFormatter(), storage)
	err := w.Write("snapshot.txt", demoSnapshot(t), ViewAll)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(snap fat.Snapshot, view View) (string, error) {
		return view.String(), nil
	})
	out, _ := f.Format(fat.Snapshot{}, ViewStats)
	if out != "stats" {
		t.Errorf("expected 'stats', got %q", out)
	}
}
