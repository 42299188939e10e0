// Package templates renders the quote builder's server-side views as templ
// components. Handlers pass in fully formatted view data; no pricing logic
// lives here.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Page wraps content in the HTML shell shared by every full-page response.
// HTMX fragment responses render the content component directly instead.
func Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — QuoteCraft</title>
<script src="/static/htmx.min.js"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar">
<a href="/quotes" class="brand">QuoteCraft</a>
<nav><a href="/quotes">Quotes</a> <a href="/quotes/create">New Quote</a></nav>
</header>
<main id="content">
`, html.EscapeString(title)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</main>\n<div id=\"toast-root\"></div>\n</body>\n</html>\n")
		return err
	})
}

// esc is a shorthand for HTML-escaping view data.
func esc(s string) string {
	return html.EscapeString(s)
}
