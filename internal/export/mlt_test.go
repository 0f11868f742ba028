package export

import (
	"strings"
	"testing"
)

func TestKdenlive_ProducersPerUniqueAsset(t *testing.T) {
	mlt := Kdenlive(sampleProject())

	// Shared video source: one producer, referenced by two entries.
	if got := strings.Count(mlt, "<property name=\"resource\">/media/intro.mp4</property>"); got != 1 {
		t.Fatalf("expected 1 producer for shared source, got %d:\n%s", got, mlt)
	}
	if got := strings.Count(mlt, `producer="producer1"`); got != 2 {
		t.Fatalf("expected 2 entries on producer1, got %d:\n%s", got, mlt)
	}
	if !strings.Contains(mlt, "<property name=\"mlt_service\">avformat</property>") {
		t.Fatalf("missing avformat producer:\n%s", mlt)
	}
}

func TestKdenlive_PixbufStills(t *testing.T) {
	mlt := Kdenlive(sampleProject())
	if got := strings.Count(mlt, "<property name=\"mlt_service\">pixbuf</property>"); got != 2 {
		t.Fatalf("expected 2 pixbuf producers, got %d:\n%s", got, mlt)
	}
	if !strings.Contains(mlt, "<property name=\"ttl\">30</property>") {
		t.Fatalf("pixbuf producer missing ttl:\n%s", mlt)
	}
}

func TestKdenlive_PlaylistsAndTractor(t *testing.T) {
	mlt := Kdenlive(sampleProject())

	// Two video tracks + one stills track + one audio track.
	if got := strings.Count(mlt, "<playlist "); got != 4 {
		t.Fatalf("expected 4 playlists, got %d:\n%s", got, mlt)
	}
	if got := strings.Count(mlt, "<track producer="); got != 4 {
		t.Fatalf("expected 4 tractor tracks, got %d:\n%s", got, mlt)
	}
	// 30s at 30fps, inclusive out point.
	if !strings.Contains(mlt, `<tractor id="tractor0" in="0" out="899">`) {
		t.Fatalf("unexpected tractor bounds:\n%s", mlt)
	}
	// First entry trims frames 0-149 from the source.
	if !strings.Contains(mlt, `in="0" out="149"`) {
		t.Fatalf("missing first entry trim:\n%s", mlt)
	}
	// Audio entries include the pad in their length: 6s from frame 0.
	if !strings.Contains(mlt, `in="0" out="179"`) {
		t.Fatalf("missing padded audio entry:\n%s", mlt)
	}
}

func TestKdenlive_BlankSpacersForMissingStills(t *testing.T) {
	p := sampleProject()
	p.VideoClips[0].StillImagePath = ""
	mlt := Kdenlive(p)
	if !strings.Contains(mlt, `<blank length="150"/>`) {
		t.Fatalf("expected blank spacer on stills playlist:\n%s", mlt)
	}
}
