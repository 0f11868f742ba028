package export

import (
	"encoding/json"

	"github.com/ashofman/cutplan/internal/types"
)

// JSON is the identity serialization of the timeline model: parsing the
// output back yields a structurally identical project.
func JSON(p types.TimelineProject) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// ParseJSON reads a project previously written by JSON.
func ParseJSON(b []byte) (types.TimelineProject, error) {
	var p types.TimelineProject
	if err := json.Unmarshal(b, &p); err != nil {
		return types.TimelineProject{}, err
	}
	return p, nil
}
