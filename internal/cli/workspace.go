// Package cli wires flags into a configured Workspace for the cobra
// commands.
package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/alcove"
	filestore "github.com/aretw0/alcove/internal/adapters/file"
	redisstore "github.com/aretw0/alcove/internal/adapters/redis"
	"github.com/aretw0/alcove/internal/logging"
	"github.com/aretw0/alcove/pkg/persistence/middleware"
	"github.com/aretw0/alcove/pkg/ports"
)

// EncryptionKeyEnv names the environment variable holding an optional
// base64-encoded 32-byte key. When set, the document is encrypted at rest.
const EncryptionKeyEnv = "ALCOVE_ENCRYPTION_KEY"

// NewWorkspace builds a Workspace from the command's persistent flags.
// The document lives in a local file unless --redis-addr selects the Redis
// backend, in which case --file doubles as the Redis key.
func NewWorkspace(cmd *cobra.Command) (*alcove.Workspace, error) {
	path, _ := cmd.Flags().GetString("file")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	debug, _ := cmd.Flags().GetBool("debug")

	logger := logging.NewNop()
	if debug {
		logger = logging.New(true)
	}

	var store ports.TreeStore
	if redisAddr != "" {
		store = redisstore.New(redisAddr, "", 0, redisstore.WithKey("alcove:"+path))
	} else {
		store = filestore.New(path)
	}

	if encoded := os.Getenv(EncryptionKeyEnv); encoded != "" {
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%s is not valid base64: %w", EncryptionKeyEnv, err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("%s must decode to 32 bytes, got %d", EncryptionKeyEnv, len(key))
		}
		store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(store)
	}

	return alcove.New(store, alcove.WithLogger(logger)), nil
}
