package content

// genericBreakdown is substituted at render time for projects without
// their own breakdown. It is never persisted onto the project.
var genericBreakdown = Breakdown{
	Goal:   "Deliver a polished, on-brand final cut",
	Focus:  "Pacing, rhythm and visual continuity",
	Result: "A high-retention video ready to publish",
}

// ResolveBreakdown returns the project's breakdown, or the generic
// fallback triple when the project has none. The result is always
// fully populated.
func ResolveBreakdown(p Project) Breakdown {
	if p.Breakdown != nil {
		return *p.Breakdown
	}
	return genericBreakdown
}
