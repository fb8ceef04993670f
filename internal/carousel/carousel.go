// Package carousel implements the infinite-looping project strip as a
// pure state machine, independent of any rendering.
//
// The category's items are padded by whole-list repetition to a minimum
// viable length, and three copies of the padded list (pre-buffer, main,
// post-buffer) form the display list. The index always animates by
// whole-item steps; once a transition settles outside the middle copy,
// the index snaps back to the equivalent middle position without
// animation, so the user perceives unbounded looping in both
// directions.
package carousel

import "github.com/tahajib/reelsite/internal/content"

// State is the engine's animation phase.
type State int

const (
	// StateIdle means no transition is in flight; steps are accepted.
	StateIdle State = iota
	// StateSettling means a transition is animating toward the current
	// index; further steps are ignored until Settle.
	StateSettling
)

// DragThreshold is the horizontal distance, in pixels, a coarse-pointer
// drag must cover to commit a one-item step.
const DragThreshold = 50.0

// minBuffer is the floor on the padded list length. The padded list
// must also cover the visible window plus one step in each direction.
const minBuffer = 4

// Engine drives one category's strip.
type Engine struct {
	base    []content.Project // the category's true item list
	padded  []content.Project // base repeated to a viable length
	display []content.Project // three concatenated copies of padded
	index   int               // position of the left-most visible item
	perView int               // visible items per viewport
	state   State
}

// New creates an engine for a category's filtered item list. perView is
// the number of items visible per viewport (1 on narrow viewports).
// A single-item or shorter-than-window category still loops correctly;
// the padding guarantees the buffer math always has enough items.
func New(items []content.Project, perView int) *Engine {
	if perView < 1 {
		perView = 1
	}
	e := &Engine{base: content.CloneProjects(items), perView: perView}
	e.rebuild(0)
	return e
}

// rebuild recomputes the padded and display lists and re-anchors the
// index at middleOffset items past the middle copy's start.
func (e *Engine) rebuild(middleOffset int) {
	n := len(e.base)
	if n == 0 {
		e.padded, e.display, e.index = nil, nil, 0
		return
	}

	need := e.perView + 2
	if need < minBuffer {
		need = minBuffer
	}
	copies := (need + n - 1) / n
	e.padded = make([]content.Project, 0, copies*n)
	for i := 0; i < copies; i++ {
		e.padded = append(e.padded, e.base...)
	}

	m := len(e.padded)
	e.display = make([]content.Project, 0, 3*m)
	e.display = append(e.display, e.padded...)
	e.display = append(e.display, e.padded...)
	e.display = append(e.display, e.padded...)
	e.index = m + ((middleOffset%m)+m)%m
}

// Len is the category's true (deduplicated) item count.
func (e *Engine) Len() int { return len(e.base) }

// State reports the current animation phase.
func (e *Engine) State() State { return e.state }

// Index is the current position into the display list.
func (e *Engine) Index() int { return e.index }

// Display is the triple-buffered item list the strip renders.
func (e *Engine) Display() []content.Project { return e.display }

// Current is the item at the left edge of the visible window.
func (e *Engine) Current() (content.Project, bool) {
	if len(e.display) == 0 {
		return content.Project{}, false
	}
	return e.display[e.index], true
}

// Visible is the window of items currently on screen.
func (e *Engine) Visible() []content.Project {
	if len(e.display) == 0 {
		return nil
	}
	return e.display[e.index : e.index+e.perView]
}

// StepPercent is the track offset of a single step, as a percentage of
// the viewport width.
func (e *Engine) StepPercent() float64 {
	return 100.0 / float64(e.perView)
}

// Offset is the animated track offset for the current index, in
// percent. The tween always targets this value as of step time.
func (e *Engine) Offset() float64 {
	return -float64(e.index) * e.StepPercent()
}

// Next advances by one item. Returns false when the step was ignored:
// either a transition is still settling or the strip is empty.
func (e *Engine) Next() bool { return e.step(1) }

// Prev goes back by one item under the same rules as Next.
func (e *Engine) Prev() bool { return e.step(-1) }

func (e *Engine) step(delta int) bool {
	if len(e.display) == 0 || e.state != StateIdle {
		return false
	}
	e.state = StateSettling
	e.index += delta
	return true
}

// Settle completes the in-flight transition. If the index has moved
// into the pre- or post-buffer copy it is reassigned to the equivalent
// middle position, keeping the displayed item identity unchanged; the
// caller must apply this reassignment without animation. Reports
// whether a snap occurred.
func (e *Engine) Settle() bool {
	e.state = StateIdle
	m := len(e.padded)
	if m == 0 {
		return false
	}
	if e.index >= m && e.index < 2*m {
		return false
	}
	e.index = m + ((e.index%m)+m)%m
	return true
}

// EndDrag resolves a coarse-pointer drag of dx pixels (negative means
// the finger moved left, revealing the next item). A drag past
// DragThreshold commits a one-item step and returns ±1; shorter drags
// return 0 and the strip snaps back through the normal settle path.
func (e *Engine) EndDrag(dx float64) int {
	switch {
	case dx <= -DragThreshold:
		if e.Next() {
			return 1
		}
	case dx >= DragThreshold:
		if e.Prev() {
			return -1
		}
	}
	return 0
}

// Resize re-derives the buffers for a new visible-item count and
// re-anchors the current item's offset immediately, with no animation
// and no visible jump. Any in-flight transition is dropped.
func (e *Engine) Resize(perView int) {
	if perView < 1 {
		perView = 1
	}
	n := len(e.base)
	anchor := 0
	if n > 0 {
		// display[i] shows base[i mod n] because the padded list is a
		// whole number of base copies.
		anchor = e.index % n
	}
	e.perView = perView
	e.state = StateIdle
	e.rebuild(anchor)
}
