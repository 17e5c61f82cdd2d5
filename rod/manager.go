package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/distill"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Ensure BrowserManager implements PageSource at compile time.
var _ PageSource = (*BrowserManager)(nil)

// BrowserManager owns a headless Chrome instance and hands out fresh tabs.
// Chrome memory grows over time even with proper page cleanup, so the browser
// is recycled after maxPages tabs have been opened. Once the budget is spent,
// NewPage blocks until the open tabs are closed and the browser is replaced.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	openPages int64
	maxPages  int64
	bin       string
	noSandbox bool
	mu        sync.Mutex
	drained   chan struct{} // closed when openPages drops to zero
	closed    atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
// Defaults to 75 if not specified.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// WithBrowserBin sets the path of the Chrome binary. When empty, rod finds or
// downloads a browser.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which is required when running
// as root inside containers.
func WithNoSandbox(enable bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.noSandbox = enable
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if err := bm.launchBrowser(); err != nil {
		return nil, err
	}

	return bm, nil
}

// NewPage opens a blank tab. The returned page must be closed by the caller.
// When the page budget is spent NewPage waits for open tabs to close so the
// browser can be recycled, or until ctx is done.
func (bm *BrowserManager) NewPage(ctx context.Context) (distill.Page, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if bm.closed.Load() {
			return nil, distill.Errorf(distill.EINTERNAL, "browser is closed")
		}

		bm.mu.Lock()
		if bm.pageCount < bm.maxPages {
			break
		}
		if bm.openPages == 0 {
			bm.recycleBrowser()
			break
		}
		if bm.drained == nil {
			bm.drained = make(chan struct{})
		}
		drained := bm.drained
		bm.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-drained:
		}
	}
	defer bm.mu.Unlock()

	if bm.browser == nil {
		return nil, distill.Errorf(distill.EINTERNAL, "browser is not running")
	}

	p, err := bm.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	bm.pageCount++
	bm.openPages++

	return newPage(p, bm.releasePage), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowser()
}

func (bm *BrowserManager) releasePage() {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.openPages--
	if bm.openPages == 0 && bm.drained != nil {
		close(bm.drained)
		bm.drained = nil
	}
}

// launchBrowser starts a new browser instance with stability flags.
func (bm *BrowserManager) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		NoSandbox(bm.noSandbox).
		Leakless(true).
		Headless(true)
	if bm.bin != "" {
		lnchr = lnchr.Bin(bm.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	oldBrowser := bm.browser
	oldLauncher := bm.launcher
	bm.browser = nil
	bm.launcher = nil

	if err := bm.launchBrowser(); err != nil {
		bm.browser = oldBrowser
		bm.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	bm.pageCount = 0
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
