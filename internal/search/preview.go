package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/zulem090/animal-style/internal/config"
)

// Key codes that never trigger a preview fetch.
var omitKeys = map[string]struct{}{
	"ArrowDown":  {},
	"ArrowLeft":  {},
	"ArrowRight": {},
	"ArrowUp":    {},
	"Enter":      {},
	"Meta":       {},
	"MetaLeft":   {},
	"MetaRight":  {},
	"Shift":      {},
	"ShiftLeft":  {},
	"Tab":        {},
}

// FocusTarget says where keyboard focus should land after a key event.
type FocusTarget int

const (
	FocusNone FocusTarget = iota
	FocusInput
	FocusItem
)

// Target pairs a focus kind with an item index when Kind is FocusItem.
type Target struct {
	Kind  FocusTarget
	Index int
}

// Preview is the search box state for one session. Fetches carry a
// sequence number; a fetch that resolves after a newer keystroke is
// discarded instead of overwriting fresher results.
type Preview struct {
	mu       sync.Mutex
	searcher Searcher
	tuning   *config.TuningHolder

	query   string
	items   []Item
	loading bool
	visible bool
	seq     uint64
}

func NewPreview(searcher Searcher, tuning *config.TuningHolder) *Preview {
	return &Preview{searcher: searcher, tuning: tuning}
}

func (p *Preview) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Preview) Items() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Item(nil), p.items...)
}

func (p *Preview) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Preview) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Focus opens the preview.
func (p *Preview) Focus() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = true
}

// Blur closes the preview unless focus moved into one of its items.
func (p *Preview) Blur(relatedTargetID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !strings.Contains(relatedTargetID, "product-preview-") {
		p.visible = false
	}
}

// KeyUp records the typed value and fetches preview candidates once the
// term reaches the minimum length. A cleared box drops the candidates;
// a single remaining character leaves the previous list untouched.
func (p *Preview) KeyUp(ctx context.Context, code, value string) error {
	if _, omit := omitKeys[code]; omit {
		return nil
	}

	t := p.tuning.Current()

	p.mu.Lock()
	p.query = value

	if len([]rune(value)) < t.PreviewMinChars {
		if value == "" {
			p.items = nil
		}
		p.loading = false
		p.mu.Unlock()
		return nil
	}

	p.loading = true
	p.seq++
	token := p.seq
	p.mu.Unlock()

	items, err := p.searcher.Search(ctx, t.PreviewSize, value)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq {
		// a newer keystroke issued a fresher fetch; it owns the
		// loading flag now
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}
	p.items = items
	p.visible = true
	return nil
}

// InputKeyDown handles navigation keys on the search input while the
// preview is open: tab or down jumps to the first item, shift-tab or up
// to the last.
func (p *Preview) InputKeyDown(code string, shift bool) Target {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.visible || len(p.items) == 0 {
		return Target{Kind: FocusNone}
	}

	if (!shift && code == "Tab") || code == "ArrowDown" {
		return Target{Kind: FocusItem, Index: 0}
	}
	if (shift && code == "Tab") || code == "ArrowUp" {
		return Target{Kind: FocusItem, Index: len(p.items) - 1}
	}
	return Target{Kind: FocusNone}
}

// ItemKeyDown handles navigation keys on a preview item: down moves to
// the next item or back to the input past the end, up moves to the
// previous item or back to the input past the start.
func (p *Preview) ItemKeyDown(index int, code string) Target {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch code {
	case "ArrowDown":
		if index+1 < len(p.items) {
			return Target{Kind: FocusItem, Index: index + 1}
		}
		return Target{Kind: FocusInput}
	case "ArrowUp":
		if index > 0 {
			return Target{Kind: FocusItem, Index: index - 1}
		}
		return Target{Kind: FocusInput}
	}
	return Target{Kind: FocusNone}
}

// Select picks a preview item: the box is cleared, the preview closed,
// and the product route returned.
func (p *Preview) Select(productID int64) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = true
	p.query = ""
	p.items = nil
	p.visible = false

	return fmt.Sprintf("/products/%d", productID)
}

// Submit resolves the listing route for the current term.
func (p *Preview) Submit() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visible = false
	p.loading = false

	if p.query == "" {
		return "/products"
	}
	return "/products?nombre=" + url.QueryEscape(p.query)
}
