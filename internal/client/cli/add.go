package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/postkeeper/internal/models"
)

var usage = "Usage: postkeeper add [-title TITLE -body BODY]"

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "post title")
	body := fs.String("body", "", "post body")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w. %s", err, usage)
	}

	c.io.Println("=== Add Post ===")
	c.io.Println()

	// Незаданные флагами поля спрашиваем интерактивно
	var err error
	if *title == "" {
		if *title, err = c.io.ReadInput("Title: "); err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}
	if *body == "" {
		if *body, err = c.io.ReadInput("Body: "); err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
	}

	// Создание, даже если в другой сессии осталась незавершенная правка
	c.controller.CancelEdit()

	result, err := c.controller.Save(ctx, *title, *body)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	c.io.Println()
	c.printMutation(result)

	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing post ID. Usage: postkeeper edit <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	post, err := c.controller.BeginEdit(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to edit post: %w", err)
	}

	c.io.Printf("=== Edit Post #%d ===\n", post.ID)
	c.io.Println()
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	title, body, err := c.readEdit(post)
	if err != nil {
		c.controller.CancelEdit()
		return err
	}

	result, err := c.controller.Save(ctx, title, body)
	if err != nil {
		c.controller.CancelEdit()
		return fmt.Errorf("failed to save post: %w", err)
	}

	c.io.Println()
	c.printMutation(result)

	return nil
}

// readEdit запрашивает новые значения; пустой ввод оставляет текущее
func (c *Cli) readEdit(post models.Post) (string, string, error) {
	title, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", post.Title))
	if err != nil {
		return "", "", fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		title = post.Title
	}

	body, err := c.io.ReadInput(fmt.Sprintf("Body [%s]: ", post.Body))
	if err != nil {
		return "", "", fmt.Errorf("failed to read body: %w", err)
	}
	if body == "" {
		body = post.Body
	}

	return title, body, nil
}
