// Package seo builds the metadata search engines read: canonical and
// hreflang links, the sitemap, robots.txt and the JSON-LD product card.
package seo

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/site"
)

// XDefault is the hreflang for visitors whose language has no version.
const XDefault = "x-default"

// Builder knows the public origin and the locale layout.
type Builder struct {
	baseURL       string
	siteName      string
	defaultLocale string
	locales       []string
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		baseURL:       strings.TrimRight(cfg.Site.BaseURL, "/"),
		siteName:      cfg.Site.SiteName,
		defaultLocale: cfg.Site.DefaultLocale,
		locales:       cfg.Site.Locales,
	}
}

func (b *Builder) BaseURL() string  { return b.baseURL }
func (b *Builder) SiteName() string { return b.siteName }

// URL is the absolute address of an unprefixed path in locale.
// The home page has no trailing slash.
func (b *Builder) URL(locale, path string) string {
	clean := path
	if clean == "/" {
		clean = ""
	}
	if locale != b.defaultLocale {
		clean = "/" + locale + clean
	}
	return b.baseURL + clean
}

// Alternate is one <link rel="alternate" hreflang=...>.
type Alternate struct {
	Hreflang string
	Href     string
}

// Alternates describes the canonical address of a page in one locale and
// every language version of it.
type Alternates struct {
	Canonical string
	// Languages holds one entry per locale, then x-default.
	Languages []Alternate
}

// Alternates builds the link set for path rendered in locale.
func (b *Builder) Alternates(path, locale string) Alternates {
	a := Alternates{Canonical: b.URL(locale, path)}
	for _, l := range b.locales {
		a.Languages = append(a.Languages, Alternate{Hreflang: l, Href: b.URL(l, path)})
	}
	a.Languages = append(a.Languages, Alternate{Hreflang: XDefault, Href: b.URL(b.defaultLocale, path)})
	return a
}

type urlset struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsXhtml string       `xml:"xmlns:xhtml,attr"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
	Links      []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap lists every page in every locale with its language alternates.
func (b *Builder) Sitemap(now time.Time) ([]byte, error) {
	set := urlset{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXhtml: "http://www.w3.org/1999/xhtml",
	}
	lastMod := now.UTC().Format("2006-01-02")

	for _, p := range site.Pages() {
		var links []xhtmlLink
		for _, l := range b.locales {
			links = append(links, xhtmlLink{Rel: "alternate", Hreflang: l, Href: b.URL(l, p.Path)})
		}
		for _, l := range b.locales {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        b.URL(l, p.Path),
				LastMod:    lastMod,
				ChangeFreq: string(p.ChangeFreq),
				Priority:   fmt.Sprintf("%.1f", p.Priority),
				Links:      links,
			})
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots allows everything and points crawlers at the sitemap.
func (b *Builder) Robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", b.baseURL)
}

// SoftwareApplication returns the JSON-LD describing the product. The
// descriptions are already localized.
func (b *Builder) SoftwareApplication(description, offersDescription string) (string, error) {
	doc := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                b.siteName,
		"url":                 b.baseURL,
		"applicationCategory": "BusinessApplication",
		"operatingSystem":     "Web, iOS, Android",
		"description":         description,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
			"description":   offersDescription,
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  b.siteName,
			"url":   b.baseURL,
			"logo":  b.baseURL + "/static/logo.svg",
		},
	}
	// json.Marshal escapes <, > and &, so the result is safe inside <script>.
	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal json-ld: %w", err)
	}
	return string(out), nil
}
