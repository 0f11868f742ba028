package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSON_RoundTripIdentity(t *testing.T) {
	p := sampleProject()
	b, err := JSON(p)
	if err != nil {
		t.Fatalf("json export: %v", err)
	}
	got, err := ParseJSON(b)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Fatalf("round trip changed the project (-want +got):\n%s", diff)
	}
}

func TestWriteAll_ProducesAllSixFormats(t *testing.T) {
	dir := t.TempDir()
	out, err := WriteAll(dir, sampleProject())
	if err != nil {
		t.Fatalf("write all: %v", err)
	}

	paths := []string{out.EDL, out.FCPXML, out.Premiere, out.JSON, out.OTIO, out.Kdenlive}
	wantNames := []string{
		"timeline.edl", "timeline.fcpxml", "timeline_premiere.xml",
		"timeline.json", "timeline.otio", "timeline.kdenlive",
	}
	for i, p := range paths {
		if filepath.Base(p) != wantNames[i] {
			t.Fatalf("output %d = %q, want %q", i, filepath.Base(p), wantNames[i])
		}
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", p)
		}
	}
}

func TestWriteAll_WriteFailureIsFatal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := WriteAll(dir, sampleProject())
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected WriteError, got %v", err)
	}
}
