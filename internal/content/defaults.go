package content

// defaultDocument is the hardcoded fallback used whenever the remote
// source is unavailable or partially populated. Every field must be
// set: the merge path relies on it being complete.
var defaultDocument = Document{
	Favicon: "/favicon.ico",
	Hero: Hero{
		Subtitle:    "Cinematic Motion & Visuals",
		TitleLine1:  "TAHAJIB",
		TitleLine2:  "EFAJ",
		Description: "A Video Editor & Motion Graphics Designer crafting high-retention visual experiences. Merging technical precision with cinematic storytelling.",
		CTAText:     "View Projects",
	},
	Navbar: Navbar{
		CTAText: "Book a Call",
		CTALink: "https://cal.com/tahajib-efaj-seugbc/calltoexplore",
	},
	Projects: Projects{
		Heading:    "Selected Works",
		Subheading: "A curation of recent motion design and video editing projects.",
		Items: []Project{
			{
				ID:          1,
				Title:       "Neon Cyberpunk Ad",
				Category:    "Motion Graphics",
				Thumbnail:   "https://images.unsplash.com/photo-1535242208474-9a2793260ca8?auto=format&fit=crop&w=800&q=80",
				VideoURL:    "https://www.youtube.com/embed/VLjt-VX8CQI?autoplay=1&rel=0&modestbranding=1",
				Description: "A high-energy futuristic advertisement featuring neon aesthetics and glitch effects created in After Effects.",
				Tools:       []string{"After Effects", "Blender", "Premiere Pro"},
				Breakdown: &Breakdown{
					Goal:   "Showcase futuristic product features",
					Focus:  "High-energy glitch transitions",
					Result: "Increased click-through rate by 25%",
				},
			},
			{
				ID:          2,
				Title:       "Minimalist Brand Story",
				Category:    "Video Editing",
				Thumbnail:   "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&w=800&q=80",
				VideoURL:    "https://www.youtube.com/embed/ScMzIvxBSi4?autoplay=1&rel=0&modestbranding=1",
				Description: "Clean, corporate storytelling for a tech startup launch. Focus on pacing and sound design.",
				Tools:       []string{"Premiere Pro", "DaVinci Resolve"},
				Breakdown: &Breakdown{
					Goal:   "Establish brand trust",
					Focus:  "Audio mixing & pacing",
					Result: "Professional brand image",
				},
			},
			{
				ID:          3,
				Title:       "Urban Fashion Edit",
				Category:    "Social Media",
				Thumbnail:   "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=800&q=80",
				VideoURL:    "https://www.youtube.com/embed/tVdmQ34_w0c?autoplay=1&rel=0&modestbranding=1",
				Description: "Fast-cut Instagram reel for a streetwear brand. Vertical format optimization and trendy transitions.",
				Tools:       []string{"Premiere Pro", "CapCut"},
				Breakdown: &Breakdown{
					Goal:   "Maximize viewer retention",
					Focus:  "Beat-sync editing",
					Result: "Viral engagement metrics",
				},
			},
			{
				ID:          4,
				Title:       "Kinetic Typography",
				Category:    "Motion Graphics",
				Thumbnail:   "https://images.unsplash.com/photo-1550745165-9bc0b252726f?auto=format&fit=crop&w=800&q=80",
				VideoURL:    "https://www.youtube.com/embed/z4sK6t3yA4I?autoplay=1&rel=0&modestbranding=1",
				Description: "Lyric video demonstrating advanced kinetic typography techniques and syncopated motion.",
				Tools:       []string{"After Effects"},
				Breakdown: &Breakdown{
					Goal:   "Visualise complex lyrics",
					Focus:  "Typography animation",
					Result: "Immersive audio-visual sync",
				},
			},
		},
	},
	About: About{
		Heading:           "I tell stories through motion and rhythm.",
		Bio1:              "I'm Tahajib Efaj, a dedicated video editor and motion graphics designer obsessed with the details. My philosophy is simple: visuals should not just look good, they should feel right.",
		Bio2:              "Specializing in Premiere Pro and After Effects, I create clean, high-retention content that cuts through the noise. Whether it's a fast-paced social ad or a cinematic brand documentary, I focus on pacing, sound design, and visual hierarchy to ensure your message lands.",
		SatisfiedClients:  4,
		ProjectsCompleted: 100,
		CTAText:           "Ready?",
		CTALink:           "https://cal.com/tahajib-efaj-seugbc/calltoexplore",
		Image:             "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=800&q=80",
	},
	Services: []Service{
		{ID: 1, Title: "Video Editing", Description: "Professional cutting, color grading, and sound design to turn raw footage into compelling narratives."},
		{ID: 2, Title: "Motion Graphics", Description: "Custom animations, kinetic typography, and visual effects that add polish and engagement."},
		{ID: 3, Title: "Short-Form Content", Description: "High-energy edits optimized for TikTok, Reels, and Shorts to maximize retention and reach."},
		{ID: 4, Title: "Brand & Social", Description: "Cohesive video content strategies that align with your brand identity across all platforms."},
	},
	Contact: Contact{
		Heading:    "Let's create something extraordinary.",
		Subheading: "Ready to elevate your content? Fill out the form, and let's discuss how we can bring your vision to life.",
		Email:      "contact.tahajib@gmail.com",
	},
	Socials: Socials{
		Instagram: "#",
		Facebook:  "#",
		Twitter:   "#",
		LinkedIn:  "#",
	},
	FAQ: []FAQItem{
		{
			Question: "Do you guarantee results?",
			Answer:   "In most cases, yes. I've worked with clients across different niches and consistently delivered strong results. While outcomes can depend on factors beyond editing, the quality, strategy, and effort on my end are always solid.",
		},
		{
			Question: "How fast will I get my videos?",
			Answer:   "It depends on the type and length of the video. Short-form content usually takes around 2-3 days. Longer videos, around 7-10 minutes, typically take 7-9 days. I'll always confirm timelines before starting.",
		},
		{
			Question: "Can I request specific video themes or styles?",
			Answer:   "Absolutely. If you have a specific style, reference, or brand direction in mind, I'll tailor the video to match it. Your vision always comes first.",
		},
		{
			Question: "Do you offer any free revisions?",
			Answer:   "Yes. I offer up to 3 revisions at no extra cost. If you need additional changes after that, there may be a small extra charge.",
		},
	},
}

// Default returns a fresh deep copy of the fallback document. Callers
// may mutate the result freely.
func Default() *Document {
	return defaultDocument.Clone()
}
