package export

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ashofman/cutplan/internal/types"
)

// resourceTable maps asset paths to format-native resource ids, built
// incrementally while an exporter walks the clip lists. Each export call gets
// its own table; ids are never reused across exporters or runs.
type resourceTable struct {
	prefix string
	next   int
	ids    map[string]string
	order  []string
}

func newResourceTable(prefix string) *resourceTable {
	return &resourceTable{prefix: prefix, next: 1, ids: map[string]string{}}
}

// id returns the resource id for path, minting one on first sight. fresh
// reports whether the path was newly registered, so callers can emit the
// full resource record exactly once.
func (t *resourceTable) id(path string) (id string, fresh bool) {
	if id, ok := t.ids[path]; ok {
		return id, false
	}
	id = fmt.Sprintf("%s%d", t.prefix, t.next)
	t.next++
	t.ids[path] = id
	t.order = append(t.order, path)
	return id, true
}

// paths returns registered paths in first-seen order.
func (t *resourceTable) paths() []string { return t.order }

// clipsByTrack groups clips by track number, tracks in ascending order and
// clips in their stored presentation order.
func clipsByTrack(clips []types.TimelineClip) [][]types.TimelineClip {
	byTrack := map[int][]types.TimelineClip{}
	var tracks []int
	for _, c := range clips {
		if _, ok := byTrack[c.Track]; !ok {
			tracks = append(tracks, c.Track)
		}
		byTrack[c.Track] = append(byTrack[c.Track], c)
	}
	sort.Ints(tracks)

	out := make([][]types.TimelineClip, 0, len(tracks))
	for _, tr := range tracks {
		out = append(out, byTrack[tr])
	}
	return out
}

// baseName is the file name without its extension, used for display names.
func baseName(path string) string {
	b := path
	if i := strings.LastIndexByte(b, '/'); i >= 0 {
		b = b[i+1:]
	}
	if i := strings.LastIndexByte(b, '.'); i > 0 {
		b = b[:i]
	}
	return b
}

// fileURL renders a local path as a file:// URL for XML formats.
func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlReplacer.Replace(s) }
