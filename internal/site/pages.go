// Package site is the catalog of public pages: which paths exist, which
// message namespace renders them and how search engines should crawl them.
package site

import "fmt"

// Feature is one product module with its own landing page.
type Feature struct {
	Slug string
	// Namespace holds the page's messages, e.g. FeatureTasks.title.
	Namespace string
	Icon      string
	Color     string
}

// Path is the unprefixed page path.
func (f Feature) Path() string { return "/features/" + f.Slug }

// Msg returns the message ID of key inside the feature's namespace.
func (f Feature) Msg(key string) string { return f.Namespace + "." + key }

// Features in the order the home page lists them.
var Features = []Feature{
	{Slug: "tasks", Namespace: "FeatureTasks", Icon: "lucide--list-checks", Color: "primary"},
	{Slug: "checklists", Namespace: "FeatureChecklists", Icon: "lucide--clipboard-check", Color: "secondary"},
	{Slug: "audits", Namespace: "FeatureAudits", Icon: "lucide--shield-check", Color: "accent"},
	{Slug: "campaigns", Namespace: "FeatureCampaigns", Icon: "lucide--megaphone", Color: "primary"},
	{Slug: "training", Namespace: "FeatureTraining", Icon: "lucide--graduation-cap", Color: "secondary"},
	{Slug: "corrective-actions", Namespace: "FeatureCorrectiveActions", Icon: "lucide--wrench", Color: "accent"},
	{Slug: "gamification", Namespace: "FeatureGamification", Icon: "lucide--trophy", Color: "primary"},
	{Slug: "visual-merchandising", Namespace: "FeatureVisualMerchandising", Icon: "lucide--layout-grid", Color: "secondary"},
	{Slug: "issue-tracking", Namespace: "FeatureIssueTracking", Icon: "lucide--alert-triangle", Color: "accent"},
}

// FeatureBySlug looks up a feature page.
func FeatureBySlug(slug string) (Feature, bool) {
	for _, f := range Features {
		if f.Slug == slug {
			return f, true
		}
	}
	return Feature{}, false
}

// CapabilityCount is the number of capN entries every feature namespace defines.
const CapabilityCount = 4

// Legal is a policy page made of numbered sections sN{Heading,Body}.
type Legal struct {
	Slug      string
	Namespace string
	Sections  int
}

func (l Legal) Path() string { return "/" + l.Slug }

func (l Legal) Msg(key string) string { return l.Namespace + "." + key }

// SectionMsg returns the heading and body IDs of section n, counting from 1.
func (l Legal) SectionMsg(n int) (heading, body string) {
	return l.Msg(fmt.Sprintf("s%dHeading", n)), l.Msg(fmt.Sprintf("s%dBody", n))
}

var LegalPages = []Legal{
	{Slug: "privacy", Namespace: "Privacy", Sections: 5},
	{Slug: "terms", Namespace: "Terms", Sections: 5},
	{Slug: "cookies", Namespace: "Cookies", Sections: 4},
}

func LegalBySlug(slug string) (Legal, bool) {
	for _, l := range LegalPages {
		if l.Slug == slug {
			return l, true
		}
	}
	return Legal{}, false
}

// ChangeFreq is the sitemap crawl hint.
type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

// Page is one indexable path.
type Page struct {
	Path       string
	ChangeFreq ChangeFreq
	Priority   float64
}

// Pages lists every indexable page in sitemap order.
func Pages() []Page {
	pages := []Page{
		{Path: "/", ChangeFreq: Weekly, Priority: 1.0},
		{Path: "/demo", ChangeFreq: Monthly, Priority: 0.9},
		{Path: "/roi-calculator", ChangeFreq: Monthly, Priority: 0.7},
	}
	for _, f := range Features {
		pages = append(pages, Page{Path: f.Path(), ChangeFreq: Monthly, Priority: 0.8})
	}
	for _, l := range LegalPages {
		pages = append(pages, Page{Path: l.Path(), ChangeFreq: Yearly, Priority: 0.3})
	}
	return pages
}
