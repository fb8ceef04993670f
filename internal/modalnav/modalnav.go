// Package modalnav computes next/previous project identities for the
// project modal, scoped to the selected project's category.
package modalnav

import "github.com/tahajib/reelsite/internal/content"

// Action is what a keyboard event maps to while the modal is open.
type Action int

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionClose
)

// Navigator walks a category-scoped subset of the full project list.
// It operates on the unpadded items, so it never sees the duplicated
// ids the carousel's buffering introduces.
type Navigator struct {
	items []content.Project
}

// New creates a Navigator over the full projects list.
func New(items []content.Project) *Navigator {
	return &Navigator{items: items}
}

// Next returns the id of the project after the given one within its
// normalized category, wrapping at the end. ok is false when the id is
// unknown, in which case the caller keeps the current selection.
func (n *Navigator) Next(id int) (int, bool) {
	return n.step(id, 1)
}

// Prev returns the id of the project before the given one within its
// normalized category, wrapping at the start.
func (n *Navigator) Prev(id int) (int, bool) {
	return n.step(id, -1)
}

func (n *Navigator) step(id int, delta int) (int, bool) {
	subset, pos := n.subset(id)
	if pos < 0 {
		return 0, false
	}
	k := len(subset)
	next := ((pos+delta)%k + k) % k
	return subset[next].ID, true
}

// subset filters items to the normalized category of the project with
// the given id, preserving original relative order, and returns the
// project's position within that subset (-1 if the id is unknown).
func (n *Navigator) subset(id int) ([]content.Project, int) {
	var current *content.Project
	for i := range n.items {
		if n.items[i].ID == id {
			current = &n.items[i]
			break
		}
	}
	if current == nil {
		return nil, -1
	}

	key := content.NormalizeCategory(current.Category)
	var subset []content.Project
	pos := -1
	for _, p := range n.items {
		if content.NormalizeCategory(p.Category) != key {
			continue
		}
		if p.ID == id {
			pos = len(subset)
		}
		subset = append(subset, p)
	}
	return subset, pos
}

// HandleKey maps a keyboard event to a modal action. Everything is
// ignored while the modal is closed.
func HandleKey(open bool, key string) Action {
	if !open {
		return ActionNone
	}
	switch key {
	case "ArrowLeft":
		return ActionPrev
	case "ArrowRight":
		return ActionNext
	case "Escape":
		return ActionClose
	default:
		return ActionNone
	}
}
