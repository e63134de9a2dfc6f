package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func (c *Cli) runClear(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w. Usage: postkeeper clear [-y]", err)
	}

	if !*yes {
		answer, err := c.io.ReadInput("Drop all cached posts? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !isYes(answer) {
			c.io.Println("Clear cancelled.")
			return nil
		}
	}

	if err := c.posts.Clear(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Local cache cleared")
	return nil
}
