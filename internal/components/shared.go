package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/malamapl09/plexo-marketing/internal/i18n"
)

func Logo(p *i18n.Printer) g.Node {
	return A(
		Href(p.Path("/")),
		Class("flex items-center gap-2"),
		g.Attr("aria-label", p.T("Nav.home")),
		Img(Src("/static/logo.svg"), Alt("Plexo"), Width("120"), Height("32")),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. "lucide--clock size-5" picks the icon and
// its size classes. An empty ariaLabel hides the icon from screen readers.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-12 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)
	iconName := convertIconName(icon)
	sizeClass := fmt.Sprintf("text-%s size-6", color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify %s", sizeClass)),
			g.Attr("data-icon", iconName),
			g.Attr("aria-hidden", "true"),
		),
	)
}

// Pill is the small uppercase label above section titles.
func Pill(text string) g.Node {
	return Span(
		Class("inline-block badge badge-primary badge-soft px-4 py-3 font-semibold text-xs uppercase tracking-wide"),
		g.Text(text),
	)
}

// SectionHeader is the centered badge, title and subtitle block.
func SectionHeader(id, badge, title, subtitle string) g.Node {
	return Div(
		Class("text-center max-w-2xl mx-auto"),
		g.If(badge != "", Pill(badge)),
		H2(
			g.If(id != "", ID(id)),
			Class("mt-4 font-extrabold text-3xl sm:text-4xl"),
			g.Text(title),
		),
		g.If(subtitle != "", P(Class("mt-4 text-lg text-base-content/70"), g.Text(subtitle))),
	)
}

// PrimaryLink is the main call-to-action button.
func PrimaryLink(href, text string) g.Node {
	return A(
		Href(href),
		Class("btn btn-primary shadow-primary/20 shadow-xl"),
		g.Text(text),
	)
}

func GhostLink(href, text string) g.Node {
	return A(
		Href(href),
		Class("btn btn-ghost"),
		g.Text(text),
		Icon("lucide--arrow-right size-4", ""),
	)
}
