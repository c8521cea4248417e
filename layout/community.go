package layout

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// EnterpriseURL is where the enterprise card leads.
const EnterpriseURL = "https://tryhanalabs.com/"

// DefaultEnterpriseBanner is the image shown on the enterprise card when none is configured.
const DefaultEnterpriseBanner = "/static/enterprise.svg"

const (
	headingClass = "nx-mb-3.5 nx-font-semibold nx-tracking-tight"
	rowClass     = "nx-font-semibold nx-inline-block nx-text-gray-500 hover:nx-text-gray-900 dark:nx-text-gray-400 dark:hover:nx-text-gray-300 contrast-more:nx-text-gray-900 contrast-more:nx-underline contrast-more:dark:nx-text-gray-50 nx-w-full nx-break-words"
)

// CommunityItem is one row of the Community panel.
type CommunityItem struct {
	Icon       Glyph  // leading icon
	Label      string // text of the row
	ActionIcon Glyph  // trailing icon

	link func(CommunityLinks) string
}

// CommunityLinks holds the optional targets of the Community rows.
// A row without a link renders as an anchor with no href.
type CommunityLinks struct {
	Edit     string `toml:"edit"`     // base URL for editing page sources
	GitHub   string `toml:"github"`   // repository to star
	Discord  string `toml:"discord"`  // chat invite
	Sponsor  string `toml:"sponsor"`  // sponsorship page
	Feedback string `toml:"feedback"` // feedback form
	Banner   string `toml:"banner"`   // enterprise card image
}

var communityItems = []CommunityItem{
	{
		Icon:       GlyphPencilSimpleLine,
		Label:      "Edit this page",
		ActionIcon: GlyphArrowUpRight,
		link:       func(l CommunityLinks) string { return l.Edit },
	},
	{
		Icon:       GlyphShootingStar,
		Label:      "Star on GitHub",
		ActionIcon: GlyphArrowUpRight,
		link:       func(l CommunityLinks) string { return l.GitHub },
	},
	{
		Icon:       GlyphMessage,
		Label:      "Chat on Discord",
		ActionIcon: GlyphArrowUpRight,
		link:       func(l CommunityLinks) string { return l.Discord },
	},
	{
		Icon:       GlyphHandHeart,
		Label:      "Become a Sponsor",
		ActionIcon: GlyphArrowUpRight,
		link:       func(l CommunityLinks) string { return l.Sponsor },
	},
	{
		Icon:       GlyphNote,
		Label:      "Give us Feedback",
		ActionIcon: GlyphArrowUpRight,
		link:       func(l CommunityLinks) string { return l.Feedback },
	},
}

// CommunityItems returns a copy of the Community rows in display order.
func CommunityItems() []CommunityItem {
	r := make([]CommunityItem, len(communityItems))
	copy(r, communityItems)
	return r
}

// Href returns the row's target for the given links, or "" if there is none.
func (item CommunityItem) Href(l CommunityLinks) string {
	if item.link == nil {
		return ""
	}
	return item.link(l)
}

// ForPage returns a copy of l whose Edit link points at the source of the given page.
func (l CommunityLinks) ForPage(source string) CommunityLinks {
	l.Edit = EditURL(l.Edit, source)
	return l
}

// EditURL joins the edit base URL and the path of a page source.
// It returns "" when base is empty.
func EditURL(base, source string) string {
	if base == "" {
		return ""
	}
	source = strings.TrimPrefix(source, "/")
	if source == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + source
}

// Community renders the sidebar panel: the community rows followed by the enterprise card.
func Community(links CommunityLinks) g.Node {
	return h.Div(
		h.Class("community"),
		h.P(h.Class(headingClass), g.Text("Community")),
		h.Ul(
			g.Map(communityItems, func(item CommunityItem) g.Node {
				return communityRow(item, item.Href(links))
			}),
		),
		h.Div(
			h.Class("mt-3"),
			h.P(h.Class(headingClass), g.Text("Enterprise")),
			enterpriseCard(links.Banner),
		),
	)
}

func communityRow(item CommunityItem, href string) g.Node {
	return h.Li(
		h.Class("nx-my-2 nx-scroll-my-6 nx-scroll-py-6"),
		h.A(
			h.Class(rowClass),
			g.If(href != "", outbound(href)),
			h.Span(
				h.Class("flex flex-row items-center gap-2 cursor-pointer"),
				item.Icon.Node(),
				g.Text(item.Label),
				item.ActionIcon.Node(),
			),
		),
	)
}

func enterpriseCard(banner string) g.Node {
	if banner == "" {
		banner = DefaultEnterpriseBanner
	}
	return h.A(
		h.Class("enterprise-card"),
		outbound(EnterpriseURL),
		h.Div(
			h.Class("flex flex-col nx-my-2 bg-[#1d2429] border border-[#282829] rounded-md hover:border-primary cursor-pointer"),
			h.Img(h.Src(banner), h.Alt("Enterprise")),
			h.Div(
				h.Class("flex flex-col p-2 text-center"),
				h.Span(
					h.Class("nx-text-gray-400 text-md font-semibold"),
					g.Text("Need custom development or support? Contact us."),
				),
			),
		),
	)
}
