package app

import (
	"fmt"

	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/store"
)

// overrideKeys are the stored settings that take precedence over the config file
var overrideKeys = []string{store.KeyTheme, store.KeyWindowWidth, store.KeyWindowHeight}

// ResetSettings clears the stored settings that override the config file, so
// a freshly generated config takes effect on the next start.
func ResetSettings(dbPath string) error {
	db := store.NewDB()
	if err := db.Open(dbPath); err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer db.Close()

	done := make(chan struct{})
	go func() {
		db.Start()
		close(done)
	}()
	err := deleteSettings(db, overrideKeys...)
	close(db.RequestChan)
	<-done
	return err
}

// deleteSettings removes keys one request at a time through a started store.
func deleteSettings(db *store.DB, keys ...string) error {
	for _, key := range keys {
		db.RequestChan <- store.Request{Op: store.DeleteSetting, Key: key}
		if resp := <-db.ResponseChan; resp.Err != nil {
			return fmt.Errorf("delete setting %s: %w", key, resp.Err)
		}
		debug.Log(debug.STORE, "cleared setting %s", key)
	}
	return nil
}
