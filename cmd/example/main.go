package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	docrepo "github.com/goliatone/go-docrepo"
	urlkit "github.com/goliatone/go-urlkit"
)

func main() {
	ctx := context.Background()

	cfg := docrepo.DefaultConfig()
	if len(os.Args) > 1 {
		cfg.ContentDir = os.Args[1]
	}
	cfg.Logging.Level = "debug"

	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "docs",
				BaseURL: "",
				Paths: map[string]string{
					"doc": "/docs/:slug",
				},
			},
		},
	}
	cfg.Navigation.Group = "docs"
	cfg.Navigation.Route = "doc"
	cfg.Navigation.Groups = []docrepo.NavGroupConfig{
		{
			Title: "Guides",
			Items: []docrepo.NavItemConfig{
				{Slug: "getting-started/introduction"},
				{Label: "Layout", Slug: "getting-started/content-layout"},
			},
		},
	}

	repo, err := docrepo.New(cfg)
	if err != nil {
		log.Fatalf("docrepo: %v", err)
	}

	summaries := repo.GetAllContent(ctx)
	fmt.Printf("indexed %d documents\n", len(summaries))
	for _, summary := range summaries {
		fmt.Printf("  %-40s %-20s %s\n", summary.Slug, summary.Category, summary.Title)
	}

	for _, category := range repo.GetCategories(ctx) {
		fmt.Printf("category %s (%q) count=%d\n", category.Slug, category.Title, category.Count)
	}

	if len(summaries) > 0 {
		doc := repo.GetContentBySlug(ctx, summaries[0].Slug)
		if doc != nil {
			fmt.Printf("first document %s: %d TOC entries, %d related\n", doc.Slug, len(doc.TOC), len(doc.Related))
			if doc.Next != nil {
				fmt.Printf("  next: %s\n", *doc.Next)
			}
		}
	}

	nav, _ := json.MarshalIndent(repo.GetNavigation(), "", "  ")
	fmt.Printf("navigation:\n%s\n", nav)
}
