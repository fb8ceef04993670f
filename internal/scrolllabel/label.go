// Package scrolllabel derives the navbar call-to-action label from the
// current vertical scroll offset.
package scrolllabel

// LookAhead is how far above a section boundary the label switches, in
// page pixels, so the copy changes just before the section arrives.
const LookAhead = 200

// Labels for each scroll region, bottom-most section first.
const (
	LabelDefault = "Let's Talk"
	LabelWork    = "Inspired by my work?"
	LabelAbout   = "Want the full story?"
	LabelContact = "Ready to close?"
)

// Anchors holds the page-relative top offsets of the named sections.
type Anchors struct {
	Work    float64
	About   float64
	Contact float64
}

// ForOffset selects the label for a vertical scroll offset. Sections
// are checked bottom-up (contact, about, work) and the first boundary
// already passed wins; above all of them the hero-state default
// applies. Callers re-evaluate on every scroll event and once on
// mount, so a deep-linked page scrolled past a boundary shows the
// right label immediately.
func ForOffset(offset float64, a Anchors) string {
	switch {
	case offset >= a.Contact-LookAhead:
		return LabelContact
	case offset >= a.About-LookAhead:
		return LabelAbout
	case offset >= a.Work-LookAhead:
		return LabelWork
	default:
		return LabelDefault
	}
}
