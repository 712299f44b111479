package docrepo

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-docrepo/internal/markdown"
	"github.com/goliatone/go-docrepo/internal/runtimeconfig"
	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// buildNavigation materialises the static site map from configuration. Items
// resolve their href through go-urlkit when a route config is present,
// falling back to the literal href or a slug-rooted path. Items that cannot
// produce a link are dropped with a warning instead of failing construction.
func buildNavigation(cfg runtimeconfig.NavigationConfig, logger interfaces.Logger) []interfaces.NavGroup {
	var manager *urlkit.RouteManager
	if cfg.RouteConfig != nil {
		manager = urlkit.NewRouteManager(cfg.RouteConfig)
	}

	groups := make([]interfaces.NavGroup, 0, len(cfg.Groups))
	for _, group := range cfg.Groups {
		items := make([]interfaces.NavItem, 0, len(group.Items))
		for _, item := range group.Items {
			href := resolveNavHref(manager, cfg, item, logger)
			if href == "" {
				logger.Warn("navigation item dropped, no href", "group", group.Title, "label", item.Label)
				continue
			}

			label := strings.TrimSpace(item.Label)
			if label == "" {
				segments := strings.Split(item.Slug, "/")
				label = markdown.HumanizeSegment(segments[len(segments)-1])
			}

			items = append(items, interfaces.NavItem{
				Label: label,
				Href:  href,
				Icon:  item.Icon,
			})
		}

		if len(items) == 0 {
			continue
		}
		groups = append(groups, interfaces.NavGroup{
			Title: group.Title,
			Items: items,
		})
	}

	return groups
}

func resolveNavHref(manager *urlkit.RouteManager, cfg runtimeconfig.NavigationConfig, item runtimeconfig.NavItemConfig, logger interfaces.Logger) string {
	if href := strings.TrimSpace(item.Href); href != "" {
		return href
	}

	slug := strings.TrimSpace(item.Slug)
	if slug == "" {
		return ""
	}

	if manager != nil && cfg.Group != "" && cfg.Route != "" {
		url, err := buildRouteURL(manager, cfg, slug)
		if err != nil {
			logger.Warn("navigation route build failed", "slug", slug, "error", err)
		} else if url != "" {
			return url
		}
	}

	return "/" + slug
}

// buildRouteURL shields callers from go-urlkit panics on unknown groups or
// routes, mapping them onto errors the caller can log and recover from.
func buildRouteURL(manager *urlkit.RouteManager, cfg runtimeconfig.NavigationConfig, slug string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			url = ""
			err = fmt.Errorf("docrepo: navigation route %s.%s: %v", cfg.Group, cfg.Route, rec)
		}
	}()

	slugParam := cfg.SlugParam
	if slugParam == "" {
		slugParam = "slug"
	}

	group := manager.Group(cfg.Group)
	if group == nil {
		return "", fmt.Errorf("docrepo: navigation route group %q not found", cfg.Group)
	}

	builder := group.Builder(cfg.Route)
	if builder == nil {
		return "", fmt.Errorf("docrepo: navigation route %q not found in group %q", cfg.Route, cfg.Group)
	}
	builder.WithParam(slugParam, slug)
	return builder.Build()
}
