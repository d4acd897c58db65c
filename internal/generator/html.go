package generator

import (
	"html/template"
	"strings"
)

var landingHTML = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Headline}}</title>
<style>
body{font-family:system-ui,-apple-system,sans-serif;margin:0;color:#1e293b;background:#f8fafc}
.hero{background:linear-gradient(135deg,#3b82f6,#8b5cf6);color:#fff;padding:64px 24px;text-align:center}
.hero h1{font-size:2.25rem;margin:0 0 12px}
.hero p{font-size:1.125rem;opacity:.9;max-width:640px;margin:0 auto}
.section{max-width:720px;margin:0 auto;padding:40px 24px}
.section h2{font-size:1.5rem}
.steps{list-style:none;padding:0}
.steps li{background:#fff;border:1px solid #e2e8f0;border-radius:12px;padding:16px;margin-bottom:12px}
.proof{text-align:center;color:#64748b}
.cta{display:block;max-width:420px;margin:24px auto 56px;background:#f59e0b;color:#fff;text-align:center;padding:16px 24px;border-radius:9999px;font-weight:700;text-decoration:none}
</style>
</head>
<body>
<header class="hero">
<h1>{{.Page.Headline}}</h1>
<p>{{.Page.Subheadline}}</p>
</header>
<main>
<section class="section">
<h2>Cara Baru</h2>
<p>{{.Page.NewWay}}</p>
</section>
<section class="section">
<h2>Bagaimana Caranya?</h2>
<ol class="steps">
{{range .Page.HowItWorks}}<li>{{.}}</li>
{{end}}</ol>
</section>
<p class="proof">{{.Page.SocialProof}}</p>
<a class="cta" href="#">{{.Page.CTA}}</a>
</main>
</body>
</html>
`))

// RenderHTML produces the standalone landing page document stored on the
// project record and served at its public URL.
func RenderHTML(in ProductInput, page LandingPage) string {
	var b strings.Builder
	data := struct {
		Input ProductInput
		Page  LandingPage
	}{in, page}
	if err := landingHTML.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}
