package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/supporthub/supporthub/internal/infrastructure/pubsub"
	"github.com/supporthub/supporthub/internal/interfaces/cli/bootstrap"
)

var (
	env    string
	groups []string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect realtime notifications",
	}

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print notifications as they are published",
		Long:  `Subscribe to the Redis notification channels and print each envelope as one JSON line.`,
		RunE:  runTail,
	}
	tail.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	tail.Flags().StringSliceVarP(&groups, "group", "g", nil, "Groups to follow, e.g. agent, supervisor, convo:12 (default: all)")

	cmd.AddCommand(tail)
	return cmd
}

func runTail(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Config(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	if !cfg.Redis.Enabled {
		return fmt.Errorf("redis is disabled; notifications are only logged")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := pubsub.NewRedisNotifier(client, log)
	err = notifier.Subscribe(ctx, PrintEnvelope(os.Stdout), groups...)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// PrintEnvelope returns a handler that writes each envelope to w as one JSON
// line. Handlers run concurrently, so writes are serialized.
func PrintEnvelope(w io.Writer) func(pubsub.Envelope) {
	var mu sync.Mutex
	return func(env pubsub.Envelope) {
		line, err := json.Marshal(env)
		if err != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, string(line))
	}
}
