package rig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev, ok := <-w.Events:
		if !ok {
			t.Fatalf("events channel closed while waiting for an event")
		}
		return ev
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watch event")
	}
	return Event{}
}

func assertQuiet(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case ev, ok := <-w.Events:
		if ok {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	t.Run("debounces_rapid_writes", func(t *testing.T) {
		path := filepath.Join(dir, "dummy.yaml")
		writeFile(t, path, "name: Dummy\n")
		writeFile(t, path, "name: Dummy\nchildren: []\n")

		ev := nextEvent(t, w)
		if ev.Name != path || ev.Kind != KindCharacter {
			t.Fatalf("event = %+v, want character rig %s", ev, path)
		}
		assertQuiet(t, w)
	})

	t.Run("tables_files_are_typed", func(t *testing.T) {
		path := filepath.Join(dir, "custom_tables.yaml")
		writeFile(t, path, "categories: []\n")

		ev := nextEvent(t, w)
		if ev.Name != path || ev.Kind != KindTables {
			t.Fatalf("event = %+v, want tables file %s", ev, path)
		}
		assertQuiet(t, w)
	})

	t.Run("ignores_non_rig_files", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "notes.txt"), "scratch\n")
		assertQuiet(t, w)
	})

	t.Run("close_shuts_both_channels", func(t *testing.T) {
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		deadline := time.After(2 * time.Second)
		for open := true; open; {
			select {
			case _, ok := <-w.Events:
				open = ok
			case <-deadline:
				t.Fatalf("events channel not closed after Close")
			}
		}

		select {
		case _, ok := <-w.Errors:
			if ok {
				t.Fatalf("unexpected error after close")
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("errors channel not closed after Close")
		}
	})
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		path string
		want Kind
	}{
		{"default_tables", "rig/default_tables.yaml", KindTables},
		{"bare_tables", "tables.yml", KindTables},
		{"mixed_case", "Custom_Tables.YAML", KindTables},
		{"character_rig", "rig/dummy.yaml", KindCharacter},
		{"tables_prefix_is_a_rig", "tabletop.yaml", KindCharacter},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := kindOf(c.path); got != c.want {
				t.Fatalf("kindOf(%q) = %v, want %v", c.path, got, c.want)
			}
		})
	}
}
