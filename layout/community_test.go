package layout

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	g "maragu.dev/gomponents"
)

// parse renders n and loads it into a goquery document.
func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCommunityRows(t *testing.T) {
	doc := parse(t, Community(CommunityLinks{}))
	rows := doc.Find("ul > li")
	if rows.Length() != 5 {
		t.Fatalf("Expected 5 rows but got %d", rows.Length())
	}
	var labels, icons []string
	rows.Each(func(i int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
		glyphs := s.Find("i[data-glyph]")
		if glyphs.Length() != 2 {
			t.Errorf("Row %d has %d icons", i, glyphs.Length())
			return
		}
		icons = append(icons, glyphs.First().AttrOr("data-glyph", ""))
		if a := glyphs.Last().AttrOr("data-glyph", ""); a != string(GlyphArrowUpRight) {
			t.Errorf("Row %d has action icon %q", i, a)
		}
		if _, ok := s.Find("a").Attr("href"); ok {
			t.Errorf("Row %d should not have a link", i)
		}
	})
	wantLabels := []string{"Edit this page", "Star on GitHub", "Chat on Discord", "Become a Sponsor", "Give us Feedback"}
	if diff := cmp.Diff(wantLabels, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	wantIcons := []string{"pencil-simple-line", "shooting-star", "message", "hand-heart", "note"}
	if diff := cmp.Diff(wantIcons, icons); diff != "" {
		t.Errorf("icons mismatch (-want +got):\n%s", diff)
	}
}

func TestCommunityEnterpriseCard(t *testing.T) {
	doc := parse(t, Community(CommunityLinks{}))
	cards := doc.Find("a.enterprise-card")
	if cards.Length() != 1 {
		t.Fatalf("Expected 1 enterprise card but got %d", cards.Length())
	}
	if href := cards.AttrOr("href", ""); href != EnterpriseURL {
		t.Errorf("Expected card to link to %q but got %q", EnterpriseURL, href)
	}
	if target := cards.AttrOr("target", ""); target != "_blank" {
		t.Errorf("Expected target _blank but got %q", target)
	}
	if src := cards.Find("img").AttrOr("src", ""); src != DefaultEnterpriseBanner {
		t.Errorf("Unexpected banner %q", src)
	}
	if n := doc.Find(`a[href="` + EnterpriseURL + `"]`).Length(); n != 1 {
		t.Errorf("Expected exactly one link to %q, got %d", EnterpriseURL, n)
	}
}

func TestCommunityLinks(t *testing.T) {
	links := CommunityLinks{
		Edit:    "https://github.com/intent/docs/edit/main/",
		GitHub:  "https://github.com/intent/intent",
		Discord: "https://discord.gg/intent",
		Banner:  "/img/banner.png",
	}
	doc := parse(t, Community(links.ForPage("/guide/install.md")))
	hrefs := doc.Find("ul > li a").Map(func(i int, s *goquery.Selection) string {
		return s.AttrOr("href", "")
	})
	want := []string{
		"https://github.com/intent/docs/edit/main/guide/install.md",
		"https://github.com/intent/intent",
		"https://discord.gg/intent",
		"",
		"",
	}
	if diff := cmp.Diff(want, hrefs); diff != "" {
		t.Errorf("hrefs mismatch (-want +got):\n%s", diff)
	}
	if src := doc.Find("a.enterprise-card img").AttrOr("src", ""); src != "/img/banner.png" {
		t.Errorf("Unexpected banner %q", src)
	}
}

func TestEditURL(t *testing.T) {
	tests := []struct {
		base, source, want string
	}{
		{"", "index.md", ""},
		{"https://example.com/edit", "index.md", "https://example.com/edit/index.md"},
		{"https://example.com/edit/", "/a/b.md", "https://example.com/edit/a/b.md"},
		{"https://example.com/edit/", "", "https://example.com/edit/"},
	}
	for _, tt := range tests {
		if got := EditURL(tt.base, tt.source); got != tt.want {
			t.Errorf("EditURL(%q, %q) = %q, expected %q", tt.base, tt.source, got, tt.want)
		}
	}
}

func TestCommunityItemsIsCopy(t *testing.T) {
	items := CommunityItems()
	items[0].Label = "changed"
	if CommunityItems()[0].Label != "Edit this page" {
		t.Error("CommunityItems exposes package data")
	}
}
