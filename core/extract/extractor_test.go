package extract

import (
	"strings"
	"testing"
)

const page = `<!doctype html>
<html lang="de">
<head>
  <title> Rates hold steady </title>
  <meta property="og:site_name" content="Example News">
  <meta name="author" content="A. Writer">
  <script>track()</script>
</head>
<body>
  <header><nav><a href="/">Home</a></nav></header>
  <article>
    <h1>Rates hold steady</h1>
    <p>Read the <a href="/report.pdf">report</a>.</p>
    <figure><img src="img/chart.png" alt="chart"><figcaption>The chart</figcaption></figure>
    <form><input name="q"></form>
    <div class="ads">Buy now</div>
  </article>
  <footer>Copyright</footer>
</body>
</html>`

func TestExtractArticle(t *testing.T) {
	a, err := New().Extract("https://news.example.com/2024/rates", page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if a.Title != "Rates hold steady" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.SiteName != "Example News" || a.Byline != "A. Writer" || a.Language != "de" {
		t.Errorf("metadata = %+v", a)
	}

	for _, want := range []string{
		`<a href="https://news.example.com/report.pdf" target="_blank" rel="noreferrer">report</a>`,
		`<img src="https://news.example.com/2024/img/chart.png" alt="chart"/>`,
		`<figcaption>The chart</figcaption>`,
	} {
		if !strings.Contains(a.HTML, want) {
			t.Errorf("HTML missing %q:\n%s", want, a.HTML)
		}
	}
	for _, gone := range []string{"Home", "Copyright", "Buy now", "<form", "track()"} {
		if strings.Contains(a.HTML, gone) {
			t.Errorf("HTML still contains %q", gone)
		}
	}
}

func TestExtractFallsBackToBodyAndURL(t *testing.T) {
	a, err := New().Extract("not a url", "<p>Just text</p>")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if a.HTML != "<p>Just text</p>" {
		t.Errorf("HTML = %q", a.HTML)
	}
	if a.Title != "not a url" || a.Language != "en" {
		t.Errorf("unexpected metadata: %+v", a)
	}
}

func TestExtractUsesReadabilityForLongArticles(t *testing.T) {
	para := `<p>The central bank kept its benchmark rate unchanged on Tuesday, citing slower inflation, ` +
		`steady hiring and a cautious outlook for consumer spending, while officials said further moves ` +
		`would depend on incoming data over the coming months.</p>`
	long := `<!doctype html>
<html lang="en"><head><title>Rates</title><script>track()</script></head>
<body>
  <div class="sidebar"><a href="/a">Sidebar links</a></div>
  <div id="story">` + strings.Repeat(para, 5) + `<p>See the <a href="/data">data</a>.</p></div>
</body></html>`

	a, err := New().Extract("https://news.example.com/2024/rates", long)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(a.HTML, "The central bank kept its benchmark rate unchanged") {
		t.Errorf("article text missing:\n%s", a.HTML)
	}
	for _, gone := range []string{"Sidebar links", "track()"} {
		if strings.Contains(a.HTML, gone) {
			t.Errorf("HTML still contains %q", gone)
		}
	}
	if a.Title != "Rates" {
		t.Errorf("Title = %q", a.Title)
	}
}
