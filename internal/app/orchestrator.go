package app

import (
	"image"
	"log"
	"os"
	"strconv"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/icons"
	"github.com/justyntemme/chrometabs/internal/store"
	"github.com/justyntemme/chrometabs/internal/tabs"
	"github.com/justyntemme/chrometabs/internal/ui"
)

const (
	settingsTimeout = 2 * time.Second
	faviconEntries  = 128
	faviconPixels   = 32 // Drawn at 16dp, decoded at 2x for HiDPI
)

type Orchestrator struct {
	window    *app.Window
	config    *config.Manager
	store     *store.DB
	storeDone chan struct{}
	done      chan struct{}

	bar      *tabs.Bar
	tabs     *TabController
	strip    *ui.TabStrip
	favicons *ui.FaviconCache
	icons    *icons.Library
	watcher  *icons.Watcher
	theme    *material.Theme

	winSize image.Point // Last window size in dp
	debug   bool
}

func NewOrchestrator(cfg *config.Manager, debugMode bool) *Orchestrator {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	tabsCfg := cfg.GetTabsConfig()
	bar := tabs.New()
	lib := icons.NewLibrary(tabsCfg.IconDir, tabsCfg.IconExtensions)
	favicons := ui.NewFaviconCache(faviconEntries, faviconPixels)

	return &Orchestrator{
		window:    new(app.Window),
		config:    cfg,
		store:     store.NewDB(),
		storeDone: make(chan struct{}),
		done:      make(chan struct{}),
		bar:       bar,
		tabs:      NewTabController(bar, lib, tabsCfg.CycleIcons),
		strip:     ui.NewTabStrip(bar, favicons),
		favicons:  favicons,
		icons:     lib,
		theme:     th,
		debug:     debugMode,
	}
}

func (o *Orchestrator) Run() error {
	if o.debug {
		log.Println("Starting chrometabs in DEBUG mode")
	}

	if err := o.store.Open(store.DefaultPath()); err != nil {
		log.Printf("Failed to open settings DB: %v", err)
	}
	go func() {
		o.store.Start()
		close(o.storeDone)
	}()
	settings := o.loadSettings()

	uiCfg := o.config.GetUIConfig()
	dark := o.config.IsDarkMode()
	if theme, ok := settings[store.KeyTheme]; ok {
		dark = theme == "dark"
	}
	w, h := uiCfg.WindowWidth, uiCfg.WindowHeight
	if v, err := strconv.Atoi(settings[store.KeyWindowWidth]); err == nil && v > 0 {
		w = v
	}
	if v, err := strconv.Atoi(settings[store.KeyWindowHeight]); err == nil && v > 0 {
		h = v
	}
	o.winSize = image.Pt(w, h)

	o.strip.SetDarkMode(dark)
	o.strip.SetHotkeys(o.config.GetHotkeys())
	o.strip.ShowNewTabButton = uiCfg.ShowNewTabButton
	if uiCfg.EaseMillis >= 0 {
		o.strip.EaseDuration = time.Duration(uiCfg.EaseMillis) * time.Millisecond
	}
	if uiCfg.TabHeight > 0 {
		o.strip.TabHeight = unit.Dp(uiCfg.TabHeight)
	}
	o.favicons.OnLoad = func(string) { o.window.Invalidate() }

	o.startIcons()
	o.bar.Subscribe(o.onTabEvent)
	o.tabs.OpenInitial(o.config.GetTabsConfig().Initial)

	o.window.Option(
		app.Title(windowTitle(o.currentTitle())),
		app.Size(unit.Dp(w), unit.Dp(h)),
		app.MinSize(unit.Dp(200), unit.Dp(60)),
	)

	go o.processEvents()

	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			o.shutdown()
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if ppd := e.Metric.PxPerDp; ppd > 0 {
				o.winSize = image.Pt(int(float32(e.Size.X)/ppd), int(float32(e.Size.Y)/ppd))
			}

			var evt ui.UIEvent
			layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					dims, ev := o.strip.Layout(gtx, o.theme)
					evt = ev
					return dims
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return o.strip.LayoutPage(gtx, o.theme)
				}),
			)

			if evt.Action != ui.ActionNone {
				debug.Log(debug.UI_EVENT, "Action: %s, Tab: %d, Index: %d", evt.Action, evt.Tab, evt.Index)
				o.handleUIEvent(evt)
				o.window.Invalidate()
			}
			e.Frame(gtx.Ops)
		}
	}
}

// loadSettings fetches persisted settings before the window opens. A slow or
// broken store yields no settings rather than blocking startup.
func (o *Orchestrator) loadSettings() map[string]string {
	o.store.RequestChan <- store.Request{Op: store.FetchSettings}
	select {
	case resp := <-o.store.ResponseChan:
		if resp.Err != nil {
			log.Printf("Store Error: %v", resp.Err)
			return nil
		}
		debug.Log(debug.STORE, "loaded %d settings", len(resp.Settings))
		return resp.Settings
	case <-time.After(settingsTimeout):
		log.Printf("Store: timed out loading settings")
		return nil
	}
}

func (o *Orchestrator) startIcons() {
	if err := o.icons.Reload(); err != nil {
		log.Printf("Icons: failed to scan %s: %v", o.icons.Dir(), err)
	}
	debug.Log(debug.ICONS, "library has %d icons from %q", o.icons.Len(), o.icons.Dir())

	if !o.config.GetTabsConfig().WatchIconDir || o.icons.Dir() == "" {
		return
	}
	w, err := icons.NewWatcher(0)
	if err != nil {
		log.Printf("Icons: watcher unavailable: %v", err)
		return
	}
	if err := w.Watch(o.icons.Dir()); err != nil {
		debug.Log(debug.ICONS, "not watching %s: %v", o.icons.Dir(), err)
		w.Close()
		return
	}
	o.watcher = w
}

func (o *Orchestrator) handleUIEvent(evt ui.UIEvent) {
	if o.tabs.Handle(evt) {
		return
	}
	switch evt.Action {
	case ui.ActionToggleTheme:
		dark := !o.strip.DarkMode()
		o.strip.SetDarkMode(dark)
		theme := "light"
		if dark {
			theme = "dark"
		}
		o.config.SetTheme(theme)
		o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: store.KeyTheme, Value: theme}
	}
}

// onTabEvent runs on the UI goroutine for every bar lifecycle event.
func (o *Orchestrator) onTabEvent(e tabs.Event) {
	debug.Log(debug.TABS, "%s: tab %d %q at %d", e.Kind, e.Tab, e.Title, e.Index)
	switch e.Kind {
	case tabs.EventActiveTabChanged:
		o.window.Option(app.Title(windowTitle(e.Title)))
	case tabs.EventTabRemoved:
		if o.bar.Len() == 0 {
			o.window.Option(app.Title(windowTitle("")))
		}
	}
}

func (o *Orchestrator) currentTitle() string {
	if t, ok := o.bar.Get(o.bar.Current()); ok {
		return t.Title
	}
	return ""
}

func (o *Orchestrator) processEvents() {
	var notify <-chan string
	if o.watcher != nil {
		notify = o.watcher.Notify()
	}
	for {
		select {
		case <-o.done:
			return
		case resp := <-o.store.ResponseChan:
			o.handleStoreResponse(resp)
		case dir := <-notify:
			debug.Log(debug.ICONS, "icon directory changed: %s", dir)
			if err := o.icons.Reload(); err != nil {
				log.Printf("Icons: rescan failed: %v", err)
			}
			o.favicons.Clear()
			o.window.Invalidate()
		}
	}
}

func (o *Orchestrator) handleStoreResponse(resp store.Response) {
	if resp.Err != nil {
		log.Printf("Store Error: %v", resp.Err)
		return
	}
	debug.Log(debug.STORE, "%v done, %d settings", resp.Op, len(resp.Settings))
}

// shutdown persists the window size and stops the workers.
func (o *Orchestrator) shutdown() {
	o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: store.KeyWindowWidth, Value: strconv.Itoa(o.winSize.X)}
	o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: store.KeyWindowHeight, Value: strconv.Itoa(o.winSize.Y)}
	close(o.store.RequestChan)
	select {
	case <-o.storeDone:
	case <-time.After(settingsTimeout):
		log.Printf("Store: timed out saving settings")
	}
	close(o.done)
	o.store.Close()

	if o.watcher != nil {
		o.watcher.Close()
	}
	o.favicons.Stop()
}

func Main(cfg *config.Manager, debugMode bool) {
	go func() {
		o := NewOrchestrator(cfg, debugMode)
		if err := o.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
