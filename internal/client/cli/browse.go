package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (c *Cli) runBrowse(ctx context.Context) error {
	c.io.Println("=== PostKeeper Browser ===")
	c.io.Println("Type 'help' for commands, Enter scrolls down.")
	c.io.Println()

	// При ошибке сети показываем то, что уже есть в кэше
	if _, err := c.controller.Load(ctx); err != nil {
		c.io.Printf("Warning: failed to load posts: %v\n", err)
	}

	for {
		if err := c.controller.Draw(); err != nil {
			return fmt.Errorf("failed to draw posts: %w", err)
		}

		line, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		quit, err := c.browseCommand(ctx, line)
		if err != nil {
			c.io.Printf("Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// browseCommand выполняет одну команду браузера, true означает выход
func (c *Cli) browseCommand(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)

	// "/запрос" это поиск, "/" сбрасывает поиск
	if strings.HasPrefix(line, "/") {
		return false, c.browseSearch(ctx, strings.TrimPrefix(line, "/"))
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		fields = []string{"n"}
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "help", "?":
		c.printBrowseHelp()
		return false, nil
	case "n", "j", "down":
		return false, c.browseScroll(ctx, fields[1:], 1)
	case "p", "k", "up":
		return false, c.browseScroll(ctx, fields[1:], -1)
	case "top":
		_, err := c.controller.Scroll(ctx, -c.controller.Viewport().Offset)
		return false, err
	case "more":
		result, err := c.controller.LoadMore(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to load posts: %w", err)
		}
		switch {
		case result.Skipped:
			c.io.Println("No more posts on the server.")
		default:
			c.io.Printf("Loaded %d new post(s).\n", result.Added)
		}
		return false, nil
	case "reset":
		if _, err := c.controller.Load(ctx); err != nil {
			return false, fmt.Errorf("failed to reload posts: %w", err)
		}
		c.io.Println("Pagination reset.")
		return false, nil
	case "search":
		return false, c.browseSearch(ctx, strings.Join(fields[1:], " "))
	case "add", "a":
		return false, c.runAdd(ctx, nil)
	case "edit", "e":
		return false, c.runEdit(ctx, fields[1:])
	case "delete", "d":
		if len(fields) < 2 {
			return false, fmt.Errorf("missing post ID. Usage: d <id>")
		}
		id, err := parseID(fields[1])
		if err != nil {
			return false, err
		}
		return false, c.deletePost(ctx, id, false)
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", fields[0])
	}
}

// browseScroll прокручивает на N строк (по умолчанию на высоту окна)
func (c *Cli) browseScroll(ctx context.Context, args []string, direction int) error {
	lines := c.controller.Viewport().Height
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid line count: %q", args[0])
		}
		lines = n
	}

	loaded, err := c.controller.Scroll(ctx, direction*lines)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	if loaded {
		c.io.Println("(more posts loaded)")
	}
	return nil
}

func (c *Cli) browseSearch(ctx context.Context, query string) error {
	posts, err := c.controller.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return fmt.Errorf("failed to search posts: %w", err)
	}
	if strings.TrimSpace(query) != "" {
		c.io.Printf("%d post(s) match %q\n", len(posts), strings.TrimSpace(query))
	}
	return nil
}

func (c *Cli) printBrowseHelp() {
	c.io.Println("Commands:")
	c.io.Println("  Enter, n [N]     Scroll down a page (or N lines); loads more near the end")
	c.io.Println("  p [N]            Scroll up")
	c.io.Println("  top              Scroll to the first post")
	c.io.Println("  more             Load the next page")
	c.io.Println("  reset            Rewind pagination and reload the first page")
	c.io.Println("  /QUERY           Filter cached posts, '/' alone clears the filter")
	c.io.Println("  add              Create a post")
	c.io.Println("  e <id>           Edit a post")
	c.io.Println("  d <id>           Delete a post")
	c.io.Println("  q                Quit")
}
