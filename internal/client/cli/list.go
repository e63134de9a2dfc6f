package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runList(ctx context.Context) error {
	c.io.Println("=== Cached Posts ===")
	c.io.Println()

	posts, err := c.controller.Search(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if len(posts) == 0 {
		c.io.Println("No posts found.")
		c.io.Println()
		c.io.Println("Use 'postkeeper load' to fetch posts or 'postkeeper add' to create one.")
		return nil
	}

	c.io.Printf("Found %d post(s):\n", len(posts))
	c.io.Println()

	return c.controller.DrawAll()
}

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("missing query. Usage: postkeeper search <query>")
	}

	c.io.Printf("=== Search: %q ===\n", query)
	c.io.Println()

	posts, err := c.controller.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to search posts: %w", err)
	}

	if len(posts) == 0 {
		c.io.Println("No posts match the query.")
		return nil
	}

	c.io.Printf("Found %d post(s):\n", len(posts))
	c.io.Println()

	return c.controller.DrawAll()
}
