package processor

import "strings"

// Router dispatches each event to the first subprocessor that claims it,
// falling back to the root processor. When the handling processor changes,
// the event is marked activated and the stale row selection is dropped.
type Router struct {
	root   Processor
	subs   []Subprocessor
	active Processor
}

func NewRouter(root Processor, subs ...Subprocessor) *Router {
	return &Router{root: root, subs: subs}
}

// Update routes one event.
func (r *Router) Update(in Input) (Output, bool) {
	for _, sub := range r.subs {
		if sub.Use(in) {
			return r.dispatch(sub, in)
		}
	}
	return r.dispatch(r.root, in)
}

func (r *Router) dispatch(p Processor, in Input) (Output, bool) {
	if r.active != p {
		in.Activated = true
		in.SelRow = 0
		in.SelRowCells = nil
	}
	r.active = p
	return p.Update(in)
}

// Deactivate forgets the active processor so the next event activates it
// afresh. Called when the shell hides.
func (r *Router) Deactivate() { r.active = nil }

// Help joins the help text of every routed processor.
func (r *Router) Help() string {
	parts := []string{r.root.Help()}
	for _, sub := range r.subs {
		parts = append(parts, sub.Help())
	}
	return strings.Join(parts, "\n\n")
}
