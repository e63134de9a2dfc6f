package cli

import (
	"context"
	"fmt"
)

// Run executes a single command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "load":
		return c.runLoad(ctx, args)
	case "list":
		return c.runList(ctx)
	case "search":
		return c.runSearch(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "clear":
		return c.runClear(ctx, args)
	case "browse":
		return c.runBrowse(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
