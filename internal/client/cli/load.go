package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func (c *Cli) runLoad(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pages := fs.Int("pages", 1, "number of pages to fetch")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w. Usage: postkeeper load [-pages N]", err)
	}
	if *pages <= 0 {
		return fmt.Errorf("pages must be positive, got %d", *pages)
	}

	c.io.Println("=== Load Posts ===")
	c.io.Println()

	// Первая страница всегда с начала: курсор не сохраняется между запусками
	result, err := c.controller.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	fetched, added := result.Fetched, result.Added

	for page := 1; page < *pages && result.Cursor.HasMore; page++ {
		result, err = c.controller.LoadMore(ctx)
		if err != nil {
			return fmt.Errorf("failed to load page %d: %w", page+1, err)
		}
		fetched += result.Fetched
		added += result.Added
	}

	posts, err := c.posts.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}

	c.io.Printf("Fetched from server: %d post(s)\n", fetched)
	c.io.Printf("New in local cache:  %d post(s)\n", added)
	c.io.Printf("Cached total:        %d post(s)\n", len(posts))
	if !result.Cursor.HasMore {
		c.io.Println()
		c.io.Println("No more posts on the server.")
	}

	return nil
}
