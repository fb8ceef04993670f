package site

// Stylesheet is served at /static/site.css. Kept deliberately small:
// the layout is plain flows and the carousel track is positioned by
// the front-end script through transform offsets.
const Stylesheet = `:root {
  --bg: #0b0b0d;
  --fg: #f4f4f2;
  --muted: #9b9b94;
  --accent: #e8ff47;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font-family: "Inter", system-ui, sans-serif;
  line-height: 1.5;
}

nav#navbar {
  position: sticky;
  top: 0;
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 1rem 2rem;
  background: rgba(11, 11, 13, 0.85);
  backdrop-filter: blur(8px);
  z-index: 10;
}

a { color: inherit; text-decoration: none; }

.nav-cta, .cta {
  display: inline-block;
  padding: 0.6rem 1.4rem;
  border-radius: 999px;
  background: var(--accent);
  color: var(--bg);
  font-weight: 600;
}

.error-banner {
  display: flex;
  justify-content: center;
  gap: 1rem;
  align-items: center;
  padding: 0.5rem 1rem;
  background: #3d1f1f;
  color: #ffd9d9;
}

header#hero { padding: 8rem 2rem 6rem; text-align: center; }
header#hero h1 { font-size: clamp(2.5rem, 8vw, 6rem); margin: 0.5rem 0; }
header#hero .subtitle { color: var(--muted); letter-spacing: 0.2em; text-transform: uppercase; }

section { padding: 4rem 2rem; max-width: 72rem; margin: 0 auto; }
section h2 { font-size: 2rem; }
.subheading { color: var(--muted); }

.carousel { position: relative; overflow: hidden; margin: 2rem 0; }
.carousel .track { display: flex; transition: transform 0.4s ease; }
.carousel .track.snapping { transition: none; }
.carousel .card { flex: 0 0 33.333%; padding: 0 0.5rem; }
.carousel button.prev, .carousel button.next {
  position: absolute;
  top: 50%;
  transform: translateY(-50%);
  border: 0;
  border-radius: 50%;
  width: 2.5rem;
  height: 2.5rem;
  background: var(--accent);
  cursor: pointer;
}
.carousel button.prev { left: 0.5rem; }
.carousel button.next { right: 0.5rem; }

.card img { width: 100%; aspect-ratio: 16 / 9; object-fit: cover; border-radius: 0.75rem; }
.card .no-preview-label { display: none; }
.card.no-preview img { display: none; }
.card.no-preview .no-preview-label {
  display: grid;
  place-items: center;
  aspect-ratio: 16 / 9;
  border-radius: 0.75rem;
  background: #1a1a1e;
  color: var(--muted);
}
.card iframe { width: 100%; aspect-ratio: 16 / 9; border: 0; border-radius: 0.75rem; }
.card .tools { display: flex; flex-wrap: wrap; gap: 0.4rem; padding: 0; list-style: none; }
.card .tools li { padding: 0.15rem 0.6rem; border: 1px solid var(--muted); border-radius: 999px; font-size: 0.8rem; }

.carousel-skeleton { display: flex; gap: 1rem; }
.skeleton-card {
  flex: 1;
  aspect-ratio: 16 / 9;
  border-radius: 0.75rem;
  background: linear-gradient(100deg, #17171a 40%, #202024 50%, #17171a 60%);
  background-size: 200% 100%;
  animation: shimmer 1.4s infinite;
}
@keyframes shimmer { to { background-position: -200% 0; } }

#about .portrait { max-width: 18rem; border-radius: 1rem; }
#about .stats { display: flex; gap: 2rem; list-style: none; padding: 0; }
#about .stats strong { font-size: 2rem; color: var(--accent); }

#services ul { list-style: none; padding: 0; display: grid; gap: 1rem; grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); }
.service { padding: 1.5rem; border: 1px solid #26262b; border-radius: 1rem; }

#faq details { border-bottom: 1px solid #26262b; padding: 1rem 0; }
#faq summary { cursor: pointer; font-weight: 600; }

#contact { text-align: center; }
#contact .email { font-size: 1.5rem; color: var(--accent); }

footer { padding: 2rem; }
footer .socials { display: flex; gap: 1.5rem; justify-content: center; list-style: none; padding: 0; color: var(--muted); }

@media (max-width: 720px) {
  .carousel .card { flex-basis: 100%; }
}
`
