package component

import "github.com/bnema/collapsepane/internal/ui/layout"

//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks . Handler

// Callbacks are invoked when the user interacts with the pane. Nil
// callbacks are skipped.
type Callbacks struct {
	// OnSizeChanged receives the new pane sizes after a drag.
	OnSizeChanged func(sizes layout.Sizes)
	// OnCollapse fires on a collapse button press or when a drag ends
	// below the collapsed size.
	OnCollapse func()
	// OnExpand fires on a button press while collapsed.
	OnExpand func()
}

// Handler is the interface form of Callbacks.
type Handler interface {
	OnSizeChanged(sizes layout.Sizes)
	OnCollapse()
	OnExpand()
}

// HandlerCallbacks routes every callback to h.
func HandlerCallbacks(h Handler) Callbacks {
	if h == nil {
		return Callbacks{}
	}
	return Callbacks{
		OnSizeChanged: h.OnSizeChanged,
		OnCollapse:    h.OnCollapse,
		OnExpand:      h.OnExpand,
	}
}

func (c Callbacks) sizeChanged(sizes layout.Sizes) {
	if c.OnSizeChanged != nil {
		c.OnSizeChanged(sizes)
	}
}

func (c Callbacks) collapse() {
	if c.OnCollapse != nil {
		c.OnCollapse()
	}
}

func (c Callbacks) expand() {
	if c.OnExpand != nil {
		c.OnExpand()
	}
}
