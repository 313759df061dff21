// Package icons finds favicon image files on disk and hands them out to new tabs.
package icons

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/justyntemme/chrometabs/internal/debug"
)

// Icon is one image file usable as a favicon
type Icon struct {
	Name string // File name without extension
	Path string
}

// Scan lists the image files directly inside dir whose extension is in exts.
// A missing directory is not an error; it yields no icons.
// Results are sorted by name so that cycling order is stable.
func Scan(dir string, exts []string) ([]Icon, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		debug.Log(debug.ICONS, "scan: %s does not exist", dir)
		return nil, nil
	}

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	var (
		mu    sync.Mutex
		found []Icon
	)
	root := filepath.Clean(dir)
	conf := &fastwalk.Config{Follow: true}

	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			debug.Log(debug.ICONS, "scan: walk error at %q: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}
		// Only direct children
		if d.IsDir() {
			return fastwalk.SkipDir
		}
		if filepath.Dir(path) != root {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(name))
		if !allowed[ext] {
			return nil
		}

		mu.Lock()
		found = append(found, Icon{Name: strings.TrimSuffix(name, filepath.Ext(name)), Path: path})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Name != found[j].Name {
			return found[i].Name < found[j].Name
		}
		return found[i].Path < found[j].Path
	})
	debug.Log(debug.ICONS, "scan: %d icons in %s", len(found), root)
	return found, nil
}

// Library holds the scanned icons of one directory and cycles through them.
// Safe for concurrent use: the watcher reloads it while the UI hands out icons.
type Library struct {
	mu    sync.Mutex
	dir   string
	exts  []string
	icons []Icon
	next  int
}

func NewLibrary(dir string, exts []string) *Library {
	return &Library{dir: dir, exts: exts}
}

// Dir returns the scanned directory
func (l *Library) Dir() string {
	return l.dir
}

// Reload rescans the directory. The cycle position is kept when still in range.
func (l *Library) Reload() error {
	icons, err := Scan(l.dir, l.exts)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.icons = icons
	if l.next >= len(icons) {
		l.next = 0
	}
	l.mu.Unlock()
	return nil
}

func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.icons)
}

// NextIcon returns the next icon in cycle order. ok is false when the library is empty.
func (l *Library) NextIcon() (icon Icon, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.icons) == 0 {
		return Icon{}, false
	}
	icon = l.icons[l.next]
	l.next = (l.next + 1) % len(l.icons)
	return icon, true
}

// Lookup finds an icon by name (case-insensitive) or by path
func (l *Library) Lookup(nameOrPath string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, icon := range l.icons {
		if icon.Path == nameOrPath || strings.EqualFold(icon.Name, nameOrPath) {
			return icon.Path, true
		}
	}
	return "", false
}
