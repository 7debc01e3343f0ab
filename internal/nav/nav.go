// Package nav is the screen navigation layer: a stack of screens, the route
// encoding used to hand a payload to the result screen, and the Navigator
// capability the entry screen depends on.
//
// The flow has two screens. Entry is the root; Result is pushed on top of it
// by GoToResult and left again only through host back-navigation (Back).
package nav

// Navigator is the one capability the entry screen needs.
type Navigator interface {
	GoToResult(payload string)
}

// Controller owns the navigation stack and implements Navigator.
// It is not safe for concurrent use; the UI drives it from its event loop.
type Controller struct {
	stack     Stack
	listeners []func(from, to StackEntry)
}

var _ Navigator = (*Controller)(nil)

// NewController returns a controller positioned at the entry screen.
func NewController() *Controller {
	c := &Controller{}
	c.stack.Push(StackEntry{Screen: ScreenEntry, Route: ParseRoute(EntryRoute())})
	return c
}

// GoToResult pushes the result screen with payload as its listData parameter.
// It completes synchronously.
func (c *Controller) GoToResult(payload string) {
	c.Navigate(ResultRoute(payload))
}

// Navigate pushes the screen a raw route resolves to. Unknown routes are
// ignored.
func (c *Controller) Navigate(raw string) {
	r := ParseRoute(raw)
	if r.Screen == ScreenUnknown {
		return
	}
	from := c.Current()
	to := StackEntry{Screen: r.Screen, Route: r}
	c.stack.Push(to)
	c.emit(from, to)
}

// Back pops the current screen. It reports false (and does nothing) at the root.
func (c *Controller) Back() bool {
	if c.stack.Len() <= 1 {
		return false
	}
	from := *c.stack.Pop()
	c.emit(from, c.Current())
	return true
}

// Current returns the top of the stack.
func (c *Controller) Current() StackEntry {
	if top := c.stack.Peek(); top != nil {
		return *top
	}
	return StackEntry{}
}

// Depth is the number of screens on the stack.
func (c *Controller) Depth() int { return c.stack.Len() }

// OnNavigate registers fn to run after every push or pop.
func (c *Controller) OnNavigate(fn func(from, to StackEntry)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Controller) emit(from, to StackEntry) {
	for _, fn := range c.listeners {
		fn(from, to)
	}
}
