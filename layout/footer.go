package layout

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IntentURL is the target of the copyright link.
const IntentURL = "https://tryintent.com"

// FooterColumn is a heading with its entries.
type FooterColumn struct {
	Heading string
	Entries []string
}

var footerColumns = []FooterColumn{
	{Heading: "Features", Entries: []string{"Home", "Docs", "Blog"}},
	{Heading: "Support", Entries: []string{"tryhanalabs.com"}},
	{Heading: "Support", Entries: []string{"tryhanalabs.com"}},
	{Heading: "Social Link", Entries: []string{"Github", "Twitter", "LinkedIn"}},
}

// FooterColumns returns a copy of the footer columns in display order.
func FooterColumns() []FooterColumn {
	r := make([]FooterColumn, len(footerColumns))
	for i, c := range footerColumns {
		r[i] = FooterColumn{Heading: c.Heading, Entries: append([]string(nil), c.Entries...)}
	}
	return r
}

// Copyright returns the copyright line for the year of now.
func Copyright(now time.Time) string {
	return fmt.Sprintf("%d © Intent", now.Year())
}

// Footer renders the page footer. The copyright year is taken from now.
func Footer(now time.Time) g.Node {
	return h.Footer(
		h.Class("flex flex-col w-full px-10"),
		h.Div(
			h.Class("flex flex-col w-full"),
			h.Div(
				h.Class("grid grid-cols-1 grid-rows-4 md:grid-cols-2 md:grid-rows-2 xl:grid-cols-4 xl:grid-rows-1 mt-5 gap-5"),
				g.Map(footerColumns, footerColumn),
			),
		),
		h.Div(
			h.Class("flex justify-center mt-10"),
			h.Span(
				h.Class("copyright font-semibold"),
				g.Textf("%d © ", now.Year()),
				h.A(outbound(IntentURL), g.Text("Intent")),
			),
		),
	)
}

func footerColumn(c FooterColumn) g.Node {
	return h.Div(
		h.Class("footer-column flex flex-col"),
		h.Span(h.Class("text-lg font-semibold"), g.Text(c.Heading)),
		g.Map(c.Entries, func(e string) g.Node {
			return h.Span(h.Class("mt-2 text-sm"), g.Text(e))
		}),
	)
}
