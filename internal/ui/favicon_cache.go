package ui

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"gioui.org/op/paint"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/justyntemme/chrometabs/internal/debug"
)

// FaviconCache keeps decoded favicons scaled down to tab size.
// Images are decoded off the UI goroutine; OnLoad fires after each one lands.
type FaviconCache struct {
	cache     *lru.Cache[string, paint.ImageOp]
	maxPixels int

	// OnLoad is called from the loader goroutine after an image is cached,
	// typically to invalidate the window.
	OnLoad func(path string)

	pendingMu sync.Mutex
	pending   map[string]bool
	loadChan  chan string
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// NewFaviconCache creates a cache of at most maxEntries favicons, each scaled
// to fit in maxPixels x maxPixels.
func NewFaviconCache(maxEntries, maxPixels int) *FaviconCache {
	if maxEntries <= 0 {
		maxEntries = 64
	}
	cache, _ := lru.NewWithEvict(maxEntries, func(path string, _ paint.ImageOp) {
		debug.Log(debug.UI, "FaviconCache: evicted %s", path)
	})
	fc := &FaviconCache{
		cache:     cache,
		maxPixels: maxPixels,
		pending:   make(map[string]bool),
		loadChan:  make(chan string, 64),
		stopChan:  make(chan struct{}),
	}
	go fc.backgroundLoader()
	return fc
}

// Get returns the cached favicon for path.
func (fc *FaviconCache) Get(path string) (paint.ImageOp, bool) {
	return fc.cache.Get(path)
}

// RequestLoad queues path for background decoding.
// Does nothing if the path is already cached or being loaded.
func (fc *FaviconCache) RequestLoad(path string) {
	if path == "" || fc.cache.Contains(path) {
		return
	}

	fc.pendingMu.Lock()
	if fc.pending[path] {
		fc.pendingMu.Unlock()
		return
	}
	fc.pending[path] = true
	fc.pendingMu.Unlock()

	select {
	case fc.loadChan <- path:
	default:
		// Queue full; the next frame asks again
		fc.pendingMu.Lock()
		delete(fc.pending, path)
		fc.pendingMu.Unlock()
	}
}

// Clear drops every cached favicon, e.g. after the icon directory changed.
func (fc *FaviconCache) Clear() {
	fc.cache.Purge()
	debug.Log(debug.UI, "FaviconCache: cleared")
}

// Len returns the number of cached favicons.
func (fc *FaviconCache) Len() int {
	return fc.cache.Len()
}

// Stop shuts down the background loader.
func (fc *FaviconCache) Stop() {
	fc.stopOnce.Do(func() { close(fc.stopChan) })
}

func (fc *FaviconCache) backgroundLoader() {
	for {
		select {
		case <-fc.stopChan:
			return
		case path := <-fc.loadChan:
			fc.load(path)
		}
	}
}

func (fc *FaviconCache) load(path string) {
	defer func() {
		fc.pendingMu.Lock()
		delete(fc.pending, path)
		fc.pendingMu.Unlock()
	}()

	img, err := decodeImage(path)
	if err != nil {
		debug.Log(debug.UI, "FaviconCache: failed to decode %s: %v", path, err)
		return
	}

	scaled := scaleToFit(img, fc.maxPixels)
	fc.cache.Add(path, paint.NewImageOp(scaled))
	debug.Log(debug.UI, "FaviconCache: cached %s (%dx%d)", path, scaled.Bounds().Dx(), scaled.Bounds().Dy())

	if fc.OnLoad != nil {
		fc.OnLoad(path)
	}
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	return img, err
}

// scaleToFit scales src down so neither side exceeds maxPixels, keeping the
// aspect ratio. Smaller images are returned as is.
func scaleToFit(src image.Image, maxPixels int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxPixels <= 0 || (width <= maxPixels && height <= maxPixels) {
		return src
	}

	var scale float64
	if width > height {
		scale = float64(maxPixels) / float64(width)
	} else {
		scale = float64(maxPixels) / float64(height)
	}
	newWidth := max(1, int(float64(width)*scale))
	newHeight := max(1, int(float64(height)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
