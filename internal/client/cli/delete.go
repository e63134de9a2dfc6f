package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/postkeeper/internal/models"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w. Usage: postkeeper delete [-y] <id>", err)
	}

	// Проверяем наличие ID
	if fs.NArg() == 0 {
		return fmt.Errorf("missing post ID. Usage: postkeeper delete [-y] <id>")
	}

	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	c.io.Println("=== Delete Post ===")
	c.io.Println()

	return c.deletePost(ctx, id, *yes)
}

func (c *Cli) deletePost(ctx context.Context, id int64, skipConfirm bool) error {
	// confirm вызывается только для записи, найденной в кэше
	found := false
	confirm := func(post models.Post) bool {
		found = true
		if skipConfirm {
			return true
		}
		return c.confirmDelete(post)
	}

	result, err := c.controller.Delete(ctx, id, confirm)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if !result.Applied {
		if !found {
			c.io.Printf("Post #%d is not in the local cache, nothing to delete.\n", id)
		} else {
			c.io.Println("Deletion cancelled.")
		}
		return nil
	}

	c.printMutation(result)
	return nil
}

// confirmDelete показывает запись и запрашивает подтверждение
func (c *Cli) confirmDelete(post models.Post) bool {
	c.io.Println("About to delete:")
	c.io.Printf("  #%d %s\n", post.ID, post.Title)
	c.io.Println()

	answer, err := c.io.ReadInput("Are you sure you want to delete this post? (yes/no): ")
	if err != nil {
		return false
	}
	return isYes(answer)
}
