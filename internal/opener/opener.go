// Package opener decides the title and favicon of tabs opened at startup and
// on request. Both the window and the terminal front end use it.
package opener

import (
	"path/filepath"
	"strings"

	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/icons"
	"github.com/justyntemme/chrometabs/internal/tabs"
)

// Opener adds tabs to a bar, taking favicons from an icon library.
type Opener struct {
	bar        *tabs.Bar
	icons      *icons.Library
	cycleIcons bool
}

// New creates an opener for bar. lib may be nil.
func New(bar *tabs.Bar, lib *icons.Library, cycleIcons bool) *Opener {
	return &Opener{bar: bar, icons: lib, cycleIcons: cycleIcons}
}

// OpenInitial adds the startup tabs and activates the first one. A configured
// favicon is an icon name or a file path; without one the icon named like the
// tab title is used.
func (o *Opener) OpenInitial(entries []config.TabEntry) {
	var first tabs.Handle
	for _, entry := range entries {
		opts := []tabs.TabOption{tabs.WithTitle(entry.Title)}
		if fav := o.resolveFavicon(entry.Favicon); fav != "" {
			opts = append(opts, tabs.WithFavicon(fav))
		} else if fav, ok := o.lookupIcon(entry.Title); ok {
			opts = append(opts, tabs.WithFavicon(fav))
		}
		t := o.bar.Add(opts...)
		if first == 0 {
			first = t.Handle
		}
	}
	if first != 0 {
		o.bar.SetCurrent(first)
	}
	debug.Log(debug.TABS, "opened %d startup tabs", len(entries))
}

// NewTabOptions returns the options for a tab the user asked for. With icon
// cycling on, each new tab takes the next icon and is named after it.
func (o *Opener) NewTabOptions() []tabs.TabOption {
	if !o.cycleIcons || o.icons == nil {
		return nil
	}
	icon, ok := o.icons.NextIcon()
	if !ok {
		return nil
	}
	return []tabs.TabOption{tabs.WithTitle(IconTitle(icon.Name)), tabs.WithFavicon(icon.Path)}
}

// resolveFavicon maps a configured favicon (icon name or file path) to a path.
func (o *Opener) resolveFavicon(ref string) string {
	if ref == "" {
		return ""
	}
	if path, ok := o.lookupIcon(ref); ok {
		return path
	}
	return ref
}

func (o *Opener) lookupIcon(name string) (string, bool) {
	if o.icons == nil || name == "" {
		return "", false
	}
	return o.icons.Lookup(name)
}

// IconTitle turns an icon file name like "google-mail" into "Google mail"
func IconTitle(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		return tabs.DefaultTitle
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
