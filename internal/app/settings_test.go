package app

import (
	"path/filepath"
	"testing"

	"github.com/justyntemme/chrometabs/internal/store"
)

// withStore opens the settings database at path, runs fn against the started
// store, and shuts it down.
func withStore(t *testing.T, path string, fn func(db *store.DB)) {
	t.Helper()
	db := store.NewDB()
	if err := db.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	done := make(chan struct{})
	go func() {
		db.Start()
		close(done)
	}()
	fn(db)
	close(db.RequestChan)
	<-done
	db.Close()
}

func TestResetSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	withStore(t, path, func(db *store.DB) {
		for key, value := range map[string]string{
			store.KeyTheme:       "dark",
			store.KeyWindowWidth: "1200",
			"unrelated":          "kept",
		} {
			db.RequestChan <- store.Request{Op: store.SaveSetting, Key: key, Value: value}
			if resp := <-db.ResponseChan; resp.Err != nil {
				t.Fatalf("save %s: %v", key, resp.Err)
			}
		}
	})

	if err := ResetSettings(path); err != nil {
		t.Fatalf("ResetSettings: %v", err)
	}

	withStore(t, path, func(db *store.DB) {
		db.RequestChan <- store.Request{Op: store.FetchSettings}
		resp := <-db.ResponseChan
		if resp.Err != nil {
			t.Fatalf("fetch: %v", resp.Err)
		}
		if _, ok := resp.Settings[store.KeyTheme]; ok {
			t.Error("expected theme cleared")
		}
		if _, ok := resp.Settings[store.KeyWindowWidth]; ok {
			t.Error("expected window width cleared")
		}
		if resp.Settings["unrelated"] != "kept" {
			t.Errorf("expected other settings kept, got %v", resp.Settings)
		}
	})
}
