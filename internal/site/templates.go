package site

// pageTemplate is the whole single-page layout. Styling is left to the
// stylesheet; this markup only carries the structure and the data
// attributes the front-end behavior hooks onto.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Doc.Hero.TitleLine1}} {{.Doc.Hero.TitleLine2}}</title>
{{if .Doc.Favicon}}<link rel="icon" href="{{.Doc.Favicon}}">{{end}}
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
<nav id="navbar">
  <a class="brand" href="#">{{.Doc.Hero.TitleLine1}}</a>
  <a class="nav-cta" data-scroll-label href="{{.Doc.Navbar.CTALink}}">{{.Doc.Navbar.CTAText}}</a>
</nav>

{{if .IsError}}
<div class="error-banner" role="alert">
  <p>Some content could not be refreshed. You are viewing the last available version.</p>
  <form method="post" action="/api/content/retry"><button type="submit">Retry</button></form>
</div>
{{end}}

<header id="hero">
  <p class="subtitle">{{.Doc.Hero.Subtitle}}</p>
  <h1>{{.Doc.Hero.TitleLine1}}<br>{{.Doc.Hero.TitleLine2}}</h1>
  <p class="description">{{.Doc.Hero.Description}}</p>
  <a class="cta" href="#work">{{.Doc.Hero.CTAText}}</a>
</header>

<section id="work">
  <h2>{{.Doc.Projects.Heading}}</h2>
  <p class="subheading">{{.Doc.Projects.Subheading}}</p>
  {{if .IsLoading}}
  <div class="carousel-skeleton" aria-hidden="true">
    <div class="skeleton-card"></div><div class="skeleton-card"></div><div class="skeleton-card"></div>
  </div>
  {{else}}
  {{range .Sections}}
  <div class="carousel" data-category="{{.Key}}">
    <h3>{{.Name}}</h3>
    <div class="track">
      {{range .Cards}}
      <article class="card" data-project-id="{{.Project.ID}}">
        {{if .Project.Thumbnail}}
        <img src="{{.Project.Thumbnail}}" alt="{{.Project.Title}}"
             onerror="this.closest('article').classList.add('no-preview')">
        {{end}}
        <div class="no-preview-label">No preview available</div>
        <h4>{{.Project.Title}}</h4>
        <p>{{.Project.Description}}</p>
        {{if .EmbedURL}}
        <iframe src="{{.EmbedURL}}" title="{{.Project.Title}}"
                allow="autoplay; fullscreen" allowfullscreen loading="lazy"></iframe>
        {{end}}
        <ul class="tools">{{range .Project.Tools}}<li>{{.}}</li>{{end}}</ul>
        <dl class="breakdown">
          <dt>Goal</dt><dd>{{.Breakdown.Goal}}</dd>
          <dt>Focus</dt><dd>{{.Breakdown.Focus}}</dd>
          <dt>Result</dt><dd>{{.Breakdown.Result}}</dd>
        </dl>
      </article>
      {{end}}
    </div>
    <button class="prev" aria-label="Previous">&#8592;</button>
    <button class="next" aria-label="Next">&#8594;</button>
  </div>
  {{end}}
  {{end}}
</section>

<section id="about">
  <h2>{{.Doc.About.Heading}}</h2>
  {{if .Doc.About.Image}}<img class="portrait" src="{{.Doc.About.Image}}" alt="">{{end}}
  <div class="bio">{{.Bio1}}</div>
  <div class="bio">{{.Bio2}}</div>
  <ul class="stats">
    <li><strong>{{.Doc.About.SatisfiedClients}}</strong> satisfied clients</li>
    <li><strong>{{.Doc.About.ProjectsCompleted}}</strong> projects completed</li>
  </ul>
  <a class="cta" href="{{.Doc.About.CTALink}}">{{.Doc.About.CTAText}}</a>
</section>

<section id="services">
  <h2>Services</h2>
  <ul>
    {{range .Doc.Services}}
    <li class="service service-{{.ID}}"><h3>{{.Title}}</h3><p>{{.Description}}</p></li>
    {{end}}
  </ul>
</section>

<section id="faq">
  <h2>FAQ</h2>
  {{range .FAQ}}
  <details><summary>{{.Question}}</summary><div>{{.Answer}}</div></details>
  {{end}}
</section>

<section id="contact">
  <h2>{{.Doc.Contact.Heading}}</h2>
  <p>{{.Doc.Contact.Subheading}}</p>
  <a class="email" href="mailto:{{.Doc.Contact.Email}}">{{.Doc.Contact.Email}}</a>
</section>

<footer>
  <ul class="socials">
    <li><a href="{{.Doc.Socials.Instagram}}">Instagram</a></li>
    <li><a href="{{.Doc.Socials.Facebook}}">Facebook</a></li>
    <li><a href="{{.Doc.Socials.Twitter}}">Twitter</a></li>
    <li><a href="{{.Doc.Socials.LinkedIn}}">LinkedIn</a></li>
  </ul>
</footer>
</body>
</html>
`
