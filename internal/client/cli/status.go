package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Cache Status ===")
	c.io.Println()

	posts, err := c.posts.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}

	c.io.Printf("Server:       %s\n", c.serverURL)
	c.io.Printf("Cached posts: %d\n", len(posts))

	lastFetch, err := c.metadata.GetLastFetchTimestamp(ctx)
	if err != nil {
		// Не прерываем выполнение
		c.io.Printf("\nWarning: Failed to get last fetch time: %v\n", err)
		return nil
	}

	if lastFetch == 0 {
		c.io.Println("Last fetch:   never")
		c.io.Println()
		c.io.Println("Run 'postkeeper load' to fetch posts from the server.")
		return nil
	}

	c.io.Printf("Last fetch:   %s\n", time.Unix(lastFetch, 0).Format(time.RFC3339))
	return nil
}
