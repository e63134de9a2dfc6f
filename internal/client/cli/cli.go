package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/postkeeper/internal/client/controller"
	"github.com/iudanet/postkeeper/internal/client/iocli"
	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

// PostCache читает и очищает закэшированные записи
type PostCache interface {
	Read(ctx context.Context) ([]models.Post, error)
	Clear(ctx context.Context) error
}

type Cli struct {
	io         iocli.IO
	controller *controller.Controller
	posts      PostCache
	metadata   storage.MetadataStorage
	serverURL  string
}

func New(io iocli.IO, ctrl *controller.Controller, posts PostCache, metadata storage.MetadataStorage, serverURL string) *Cli {
	return &Cli{
		io:         io,
		controller: ctrl,
		posts:      posts,
		metadata:   metadata,
		serverURL:  serverURL,
	}
}

func PrintUsage() {
	fmt.Println("PostKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  postkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version                    Show version information")
	fmt.Println("  --config FILE                Path to YAML config file")
	fmt.Println("  --server URL                 Server URL (default: https://dummyjson.com)")
	fmt.Println("  --db PATH                    Path to local database (default: postkeeper.db)")
	fmt.Println("  --limit N                    Posts per page (default: 30)")
	fmt.Println("  --log-level LEVEL            debug, info, warn or error (default: info)")
	fmt.Println()
	fmt.Println("Settings Priority (highest to lowest):")
	fmt.Println("  1. Command line options")
	fmt.Println("  2. POSTKEEPER_SERVER, POSTKEEPER_DB, POSTKEEPER_LIMIT, POSTKEEPER_LOG_LEVEL")
	fmt.Println("  3. Config file")
	fmt.Println("  4. Defaults")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  load [-pages N]         Fetch N pages from the server into the local cache")
	fmt.Println("  list                    Show cached posts")
	fmt.Println("  search <query>          Show cached posts matching the query")
	fmt.Println("  add [-title T -body B]  Create a post")
	fmt.Println("  edit <id>               Edit a cached post")
	fmt.Println("  delete [-y] <id>        Delete a post")
	fmt.Println("  status                  Show local cache status")
	fmt.Println("  clear [-y]              Drop all cached posts")
	fmt.Println("  browse                  Interactive browser with infinite scroll")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  postkeeper load -pages 3")
	fmt.Println("  postkeeper search love")
	fmt.Println("  postkeeper add -title 'Groceries' -body 'milk, bread'")
	fmt.Println("  postkeeper --server http://localhost:8080 browse")
}
