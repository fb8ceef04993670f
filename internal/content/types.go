package content

// Document is the complete structured text/media payload driving every
// page section. It is always fully populated: partial remote data is
// merged over Default(), never exposed with gaps.
type Document struct {
	Favicon  string    `json:"favicon"`
	Hero     Hero      `json:"hero"`
	Navbar   Navbar    `json:"navbar"`
	Projects Projects  `json:"projects"`
	About    About     `json:"about"`
	Services []Service `json:"services"`
	Contact  Contact   `json:"contact"`
	Socials  Socials   `json:"socials"`
	FAQ      []FAQItem `json:"faq"`
}

// Hero is the landing section copy.
type Hero struct {
	Subtitle    string `json:"subtitle"`
	TitleLine1  string `json:"titleLine1"`
	TitleLine2  string `json:"titleLine2"`
	Description string `json:"description"`
	CTAText     string `json:"ctaText"`
}

// Navbar holds the navigation call-to-action.
type Navbar struct {
	CTAText string `json:"ctaText"`
	CTALink string `json:"ctaLink"`
}

// Projects is the portfolio section: heading copy plus the ordered
// project entries.
type Projects struct {
	Heading    string    `json:"heading"`
	Subheading string    `json:"subheading"`
	Items      []Project `json:"items"`
}

// Project is a single portfolio entry. ID is the stable identity used
// for selection and modal navigation; positional index never is.
type Project struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Thumbnail   string     `json:"thumbnail"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Description string     `json:"description"`
	Tools       []string   `json:"tools"`
	Breakdown   *Breakdown `json:"breakdown,omitempty"`
}

// Breakdown is the optional goal/focus/result triple shown in the
// project modal.
type Breakdown struct {
	Goal   string `json:"goal"`
	Focus  string `json:"focus"`
	Result string `json:"result"`
}

// About is the bio section.
type About struct {
	Heading           string `json:"heading"`
	Bio1              string `json:"bio1"`
	Bio2              string `json:"bio2"`
	SatisfiedClients  int    `json:"satisfiedClients"`
	ProjectsCompleted int    `json:"projectsCompleted"`
	CTAText           string `json:"ctaText"`
	CTALink           string `json:"ctaLink"`
	Image             string `json:"image"`
}

// Service is one offered service. ID stays in 1..4 for icon lookup.
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Contact is the contact-form section copy.
type Contact struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Email      string `json:"email"`
}

// Socials maps platform name to profile URL.
type Socials struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Clone returns a deep copy of the document. The read path replaces
// documents wholesale and never mutates shared state, so every overlay
// starts from a clone.
func (d *Document) Clone() *Document {
	c := *d
	c.Services = make([]Service, len(d.Services))
	copy(c.Services, d.Services)
	c.FAQ = make([]FAQItem, len(d.FAQ))
	copy(c.FAQ, d.FAQ)
	c.Projects.Items = CloneProjects(d.Projects.Items)
	return &c
}

// CloneProjects deep-copies a project slice.
func CloneProjects(items []Project) []Project {
	out := make([]Project, len(items))
	for i, p := range items {
		out[i] = p
		out[i].Tools = make([]string, len(p.Tools))
		copy(out[i].Tools, p.Tools)
		if p.Breakdown != nil {
			b := *p.Breakdown
			out[i].Breakdown = &b
		}
	}
	return out
}
