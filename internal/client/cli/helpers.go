package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/controller"
)

// parseID разбирает ID записи из аргумента командной строки
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post ID: %q", arg)
	}
	return id, nil
}

func isYes(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y"
}

// printMutation печатает результат изменения и предупреждение, если сервер его не принял
func (c *Cli) printMutation(result *controller.MutationResult) {
	switch result.Op {
	case controller.OpCreate:
		c.io.Printf("✓ Post #%d created\n", result.Post.ID)
	case controller.OpUpdate:
		c.io.Printf("✓ Post #%d updated\n", result.Post.ID)
	case controller.OpDelete:
		c.io.Printf("✓ Post #%d deleted\n", result.Post.ID)
	}

	if result.RemoteErr != nil {
		c.io.Printf("⚠️  Saved locally, but the server rejected the change: %s\n", describeRemoteError(result.RemoteErr))
	}
}

func describeRemoteError(err error) string {
	var netErr *api.NetworkError
	switch {
	case errors.As(err, &netErr) && netErr.StatusCode == 0:
		return "server unreachable"
	case api.IsNotFound(err):
		return "post not found on the server"
	default:
		return err.Error()
	}
}
