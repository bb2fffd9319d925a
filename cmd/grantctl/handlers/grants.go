package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/grantthrive/grantctl/internal/api"
)

// GrantsList prints one page of grants.
func GrantsList(ctx context.Context, opts api.ListOptions, jsonOutput bool) error {
	apiClient, _, err := client(ctx)
	if err != nil {
		return err
	}

	list, err := apiClient.ListGrants(ctx, opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(list)
	}
	printGrantList(list)
	return nil
}

// GrantsGet prints a single grant.
func GrantsGet(ctx context.Context, id string, jsonOutput bool) error {
	apiClient, _, err := client(ctx)
	if err != nil {
		return err
	}

	g, err := apiClient.GetGrant(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(g)
	}
	printGrant(g)
	return nil
}

// GrantsCategories prints the categories offered by the API.
func GrantsCategories(ctx context.Context) error {
	apiClient, _, err := client(ctx)
	if err != nil {
		return err
	}

	categories, err := apiClient.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Println(c)
	}
	return nil
}

func printGrantList(list *api.GrantList) {
	if len(list.Grants) == 0 {
		fmt.Println("No grants found.")
		return
	}

	fmt.Printf("%-8s %-40s %-16s %14s\n", "ID", "TITLE", "STATUS", "FUNDING")
	for _, g := range list.Grants {
		fmt.Printf("%-8s %-40s %-16s %14.2f\n", g.ID, truncate(g.Title, 40), g.Status, g.Funding())
	}
	if list.Pages > 1 {
		fmt.Printf("\nPage %d of %d (%d grants)\n", list.CurrentPage, list.Pages, list.Total)
	}
}

func printGrant(g *api.Grant) {
	fmt.Println(g.Title)
	fmt.Println(strings.Repeat("-", len(g.Title)))
	fmt.Printf("  ID:           %s\n", g.ID)
	fmt.Printf("  Status:       %s\n", g.Status)
	fmt.Printf("  Category:     %s\n", g.Category)
	fmt.Printf("  Funding:      %.2f\n", g.Funding())
	if g.OpensAt != "" || g.ClosesAt != "" {
		fmt.Printf("  Open:         %s to %s\n", g.OpensAt, g.ClosesAt)
	}
	fmt.Printf("  Applications: %d\n", g.ApplicationCount)
	if g.Description != "" {
		fmt.Println()
		fmt.Println(g.Description)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
