package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuoteListItem is one row of the quote list page.
type QuoteListItem struct {
	ID          string
	Label       string
	QuoteType   string
	Total       string
	Deposit     string
	UpdatedDate string
	Locked      bool
	Recommended bool
}

// QuoteListData backs the quote list page.
type QuoteListData struct {
	Quotes []QuoteListItem
}

// QuoteListContent renders the quote table fragment.
func QuoteListContent(data QuoteListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div id="quote-list"><h2>Quote Options</h2>`)
		if len(data.Quotes) == 0 {
			io.WriteString(w, `<p class="empty">No quotes yet. <a href="/quotes/create">Create one</a>.</p></div>`)
			return nil
		}
		io.WriteString(w, `<table class="quotes"><thead><tr><th>Label</th><th>Type</th><th>Total</th><th>Deposit</th><th>Updated</th><th></th></tr></thead><tbody>`)
		for _, q := range data.Quotes {
			badge := ""
			if q.Recommended {
				badge = ` <span class="badge">Recommended</span>`
			}
			if q.Locked {
				badge += ` <span class="badge locked">Locked</span>`
			}
			fmt.Fprintf(w,
				`<tr><td><a href="/quotes/%s">%s</a>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
				esc(q.ID), esc(q.Label), badge, esc(q.QuoteType), esc(q.Total), esc(q.Deposit), esc(q.UpdatedDate))
			fmt.Fprintf(w,
				`<td><a href="/quotes/%s/edit">Edit</a> <a href="/quotes/%s/compare">Compare</a> `+
					`<button hx-delete="/quotes/%s" hx-confirm="Delete this quote?" hx-target="#content">Delete</button></td></tr>`,
				esc(q.ID), esc(q.ID), esc(q.ID))
		}
		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}

// QuoteListPage renders the full quote list page.
func QuoteListPage(data QuoteListData) templ.Component {
	return Page("Quotes", QuoteListContent(data))
}

// QuoteCreateData backs the quote creation form.
type QuoteCreateData struct {
	Label      string
	QuoteType  string
	QuoteTypes []string
	Errors     map[string]string
}

// QuoteCreateContent renders the creation form fragment.
func QuoteCreateContent(data QuoteCreateData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div id="quote-create"><h2>New Quote</h2><form method="post" action="/quotes">`)
		fmt.Fprintf(w, `<label>Label <input name="label" value="%s"></label>`, esc(data.Label))
		if msg, ok := data.Errors["label"]; ok {
			fmt.Fprintf(w, `<p class="error">%s</p>`, esc(msg))
		}
		io.WriteString(w, `<label>Quote Type <select name="quote_type">`)
		for _, qt := range data.QuoteTypes {
			selected := ""
			if qt == data.QuoteType {
				selected = " selected"
			}
			fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(qt), selected, esc(qt))
		}
		io.WriteString(w, `</select></label>`)
		if msg, ok := data.Errors["quote_type"]; ok {
			fmt.Fprintf(w, `<p class="error">%s</p>`, esc(msg))
		}
		_, err := io.WriteString(w, `<button type="submit">Create</button></form></div>`)
		return err
	})
}

// QuoteCreatePage renders the full creation page.
func QuoteCreatePage(data QuoteCreateData) templ.Component {
	return Page("New Quote", QuoteCreateContent(data))
}

// QuoteViewData backs the quote detail page.
type QuoteViewData struct {
	ID          string
	Label       string
	QuoteType   string
	CreatedDate string
	Locked      bool
	Breakdown   BreakdownView
}

// QuoteViewContent renders the quote detail fragment.
func QuoteViewContent(data QuoteViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div id="quote-view"><h2>%s</h2>`, esc(data.Label))
		fmt.Fprintf(w, `<p class="meta">%s quote · created %s</p>`, esc(data.QuoteType), esc(data.CreatedDate))
		if data.Locked {
			io.WriteString(w, `<p class="locked-note">This quote is locked and cannot be edited.</p>`)
		}
		if err := BreakdownPanel(data.Breakdown).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprintf(w,
			`<p class="actions"><a href="/quotes/%s/edit">Edit</a> <a href="/quotes/%s/compare">Compare</a> `+
				`<a href="/quotes/%s/export/pdf">PDF</a> <a href="/quotes/%s/export/excel">Excel</a></p>`,
			esc(data.ID), esc(data.ID), esc(data.ID), esc(data.ID))
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// QuoteViewPage renders the full quote detail page.
func QuoteViewPage(data QuoteViewData) templ.Component {
	return Page(data.Label, QuoteViewContent(data))
}

// EditAddOn is one configurable catalog row on the edit page.
type EditAddOn struct {
	ID           string
	Name         string
	DisplayPrice string
	Selected     bool
	Included     bool
	ValueSummary string // current count/value/choice, preformatted
}

// EditTier groups the edit rows of one tier.
type EditTier struct {
	Name   string
	AddOns []EditAddOn
}

// QuoteEditData backs the quote edit page.
type QuoteEditData struct {
	ID             string
	Label          string
	QuoteType      string
	ProductionDays int
	Tiers          []EditTier
	Breakdown      BreakdownView
	Errors         map[string]string
}

// QuoteEditContent renders the edit page fragment: configurable add-on rows
// beside the live breakdown panel. Every control patches a single field and
// swaps the recomputed breakdown back in.
func QuoteEditContent(data QuoteEditData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div id="quote-edit"><h2>%s</h2>`, esc(data.Label))
		fmt.Fprintf(w, `<form class="days" hx-post="/quotes/%s/fields" hx-target="#breakdown" hx-swap="outerHTML">`, esc(data.ID))
		fmt.Fprintf(w, `<label>Production Days <input type="number" name="production_days" min="1" value="%d"></label>`, data.ProductionDays)
		io.WriteString(w, `<button type="submit">Apply</button></form>`)

		io.WriteString(w, `<div class="edit-columns"><div class="addon-rows">`)
		for _, tier := range data.Tiers {
			fmt.Fprintf(w, `<section class="edit-tier"><h3>%s</h3>`, esc(tier.Name))
			for _, addon := range tier.AddOns {
				state := ""
				if addon.Selected {
					state = " selected"
				}
				if addon.Included {
					state = " included"
				}
				fmt.Fprintf(w, `<div class="addon-row%s" data-addon="%s"><span class="name">%s</span><span class="price">%s</span>`,
					state, esc(addon.ID), esc(addon.Name), esc(addon.DisplayPrice))
				if addon.ValueSummary != "" {
					fmt.Fprintf(w, `<span class="value">%s</span>`, esc(addon.ValueSummary))
				}
				if !addon.Included {
					action := "select"
					label := "Add"
					if addon.Selected {
						action = "deselect"
						label = "Remove"
					}
					fmt.Fprintf(w,
						`<button hx-post="/quotes/%s/fields" hx-vals='{"field":"%s","addon":"%s"}' hx-target="#breakdown" hx-swap="outerHTML">%s</button>`,
						esc(data.ID), action, esc(addon.ID), label)
				}
				io.WriteString(w, `</div>`)
			}
			io.WriteString(w, `</section>`)
		}
		io.WriteString(w, `</div><div class="breakdown-col">`)
		if err := BreakdownPanel(data.Breakdown).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></div></div>`)
		return err
	})
}

// QuoteEditPage renders the full edit page.
func QuoteEditPage(data QuoteEditData) templ.Component {
	return Page("Edit "+data.Label, QuoteEditContent(data))
}
