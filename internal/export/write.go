package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashofman/cutplan/internal/types"
)

// WriteError marks a failed interchange-file write. It aborts the run:
// a partially written project file is unsafe to hand to an editor.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Outputs lists the six files produced by WriteAll.
type Outputs struct {
	EDL      string `json:"edl"`
	FCPXML   string `json:"fcpxml"`
	Premiere string `json:"premiere_xml"`
	JSON     string `json:"json"`
	OTIO     string `json:"otio"`
	Kdenlive string `json:"kdenlive"`
}

// WriteAll serializes the project into every supported format inside dir. All
// six are always produced so the destination editor can be chosen after the
// fact. The first write failure aborts.
func WriteAll(dir string, p types.TimelineProject) (Outputs, error) {
	out := Outputs{
		EDL:      filepath.Join(dir, "timeline.edl"),
		FCPXML:   filepath.Join(dir, "timeline.fcpxml"),
		Premiere: filepath.Join(dir, "timeline_premiere.xml"),
		JSON:     filepath.Join(dir, "timeline.json"),
		OTIO:     filepath.Join(dir, "timeline.otio"),
		Kdenlive: filepath.Join(dir, "timeline.kdenlive"),
	}

	jsonBytes, err := JSON(p)
	if err != nil {
		return Outputs{}, &WriteError{Path: out.JSON, Err: err}
	}
	otioBytes, err := OTIO(p)
	if err != nil {
		return Outputs{}, &WriteError{Path: out.OTIO, Err: err}
	}

	files := []struct {
		path string
		data []byte
	}{
		{out.EDL, []byte(EDL(p))},
		{out.FCPXML, []byte(FCPXML(p))},
		{out.Premiere, []byte(Xmeml(p))},
		{out.JSON, jsonBytes},
		{out.OTIO, otioBytes},
		{out.Kdenlive, []byte(Kdenlive(p))},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			return Outputs{}, &WriteError{Path: f.path, Err: err}
		}
	}
	return out, nil
}
