package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
)

func TestFooterColumns(t *testing.T) {
	doc := parse(t, Footer(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	cols := doc.Find(".footer-column")
	if cols.Length() != 4 {
		t.Fatalf("Expected 4 columns but got %d", cols.Length())
	}
	var got []FooterColumn
	cols.Each(func(i int, s *goquery.Selection) {
		spans := s.ChildrenFiltered("span")
		c := FooterColumn{Heading: spans.First().Text()}
		spans.Slice(1, spans.Length()).Each(func(_ int, e *goquery.Selection) {
			c.Entries = append(c.Entries, e.Text())
		})
		got = append(got, c)
	})
	want := []FooterColumn{
		{Heading: "Features", Entries: []string{"Home", "Docs", "Blog"}},
		{Heading: "Support", Entries: []string{"tryhanalabs.com"}},
		{Heading: "Support", Entries: []string{"tryhanalabs.com"}},
		{Heading: "Social Link", Entries: []string{"Github", "Twitter", "LinkedIn"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, FooterColumns()); diff != "" {
		t.Errorf("FooterColumns mismatch (-want +got):\n%s", diff)
	}
}

func TestFooterCopyright(t *testing.T) {
	now := time.Now()
	doc := parse(t, Footer(now))
	line := doc.Find(".copyright")
	if line.Length() != 1 {
		t.Fatalf("Expected one copyright line but got %d", line.Length())
	}
	if got, want := strings.TrimSpace(line.Text()), Copyright(now); got != want {
		t.Errorf("Expected %q but got %q", want, got)
	}
	link := line.Find("a")
	if href := link.AttrOr("href", ""); href != IntentURL {
		t.Errorf("Expected link to %q but got %q", IntentURL, href)
	}
	if target := link.AttrOr("target", ""); target != "_blank" {
		t.Errorf("Expected target _blank but got %q", target)
	}
}

func TestCopyright(t *testing.T) {
	if got := Copyright(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)); got != "2026 © Intent" {
		t.Errorf("Unexpected copyright %q", got)
	}
}

func TestFooterRerender(t *testing.T) {
	d1 := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	a, err := HTML(Footer(d1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := HTML(Footer(d2))
	if err != nil {
		t.Fatal(err)
	}
	c, err := HTML(Footer(d3))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Rendering within the same year should be identical")
	}
	if a == c {
		t.Error("Rendering in a different year should change the output")
	}
	if strings.Replace(string(a), "2025", "2026", 1) != string(c) {
		t.Error("Only the year should differ between renders")
	}
}

func TestFooterColumnsIsCopy(t *testing.T) {
	cols := FooterColumns()
	cols[0].Entries[0] = "changed"
	if FooterColumns()[0].Entries[0] != "Home" {
		t.Error("FooterColumns exposes package data")
	}
}
