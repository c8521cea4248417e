/*
Package site implements a virtual view over an fs.FS holding the sources of the
Intent documentation, making it suitable for serving with http.FileServer.

Markdown pages are presented as HTML. When "/guide/install.html" is requested and
does not exist, "guide/install.md" is rendered through a template that places the
Community panel in the sidebar and the Footer below the content. The Markdown
source itself is hidden from view, and directory listings show the ".html" name.

A special file "site.toml" at the root holds the configuration, and a special
folder "template" holds custom HTML templates. Both are hidden, as are files and
folders whose names begin with a period.

Front Matter

Markdown files may start with front matter in TOML format, delimited by "+++":

	+++
	title = "Installing Intent"
	date = 2026-01-05T00:00:00Z
	+++
	# Install
	...

A page whose date lies in the future does not exist until that time. A page
with a "redirect" sends the browser elsewhere with a meta refresh, and a page
with a "template" is rendered with that template instead of "default".

Templates

Templates receive the site configuration (.Site), the front matter
(.FrontMatter), page information (.Page), and the rendered Markdown (.Content),
Community panel (.Community) and Footer (.Footer). Helper functions include dir,
sortbyname, sortbytime, reverse, filter, match, join, ext, trimsuffix,
trimprefix, humanize, now and copyright.

Site Map

If "sitemap.txt" exists at the root it is executed as a text template that
receives the URL paths of all published pages as a slice of strings.
*/
package site
