package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sir_venger/questionnaire/pkg/versionclient"
)

const defaultServer = "http://localhost:8000"

// newRootCmd собирает CLI для работы с сервисом версий анкеты.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		server  string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:           "versionctl",
		Short:         "Inspect and edit questionnaire versions over HTTP",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&server, "server", envOr("QUESTIONNAIRE_SERVER", defaultServer), "questionnaire service base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	withClient := func(fn func(ctx context.Context, cli versionclient.Client, args []string) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := fn(ctx, versionclient.New(server), args)
			if err != nil {
				return err
			}
			return printJSON(out, res)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "latest",
			Short: "Show the latest saved version",
			Args:  cobra.NoArgs,
			RunE: withClient(func(ctx context.Context, cli versionclient.Client, _ []string) (any, error) {
				return cli.Latest(ctx)
			}),
		},
		&cobra.Command{
			Use:   "save FILE",
			Short: "Save a JSON file (or - for stdin) as the draft",
			Args:  cobra.ExactArgs(1),
			RunE: withClient(func(ctx context.Context, cli versionclient.Client, args []string) (any, error) {
				payload, err := readPayload(args[0])
				if err != nil {
					return nil, err
				}
				return cli.SaveDraft(ctx, payload)
			}),
		},
		&cobra.Command{
			Use:   "submit FILE",
			Short: "Finalize the draft with the given JSON file (or - for stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: withClient(func(ctx context.Context, cli versionclient.Client, args []string) (any, error) {
				payload, err := readPayload(args[0])
				if err != nil {
					return nil, err
				}
				return cli.Submit(ctx, payload)
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Discard the current draft",
			Args:  cobra.NoArgs,
			RunE: withClient(func(ctx context.Context, cli versionclient.Client, _ []string) (any, error) {
				return cli.Reset(ctx)
			}),
		},
		&cobra.Command{
			Use:   "health",
			Short: "Show service health",
			Args:  cobra.NoArgs,
			RunE: withClient(func(ctx context.Context, cli versionclient.Client, _ []string) (any, error) {
				return cli.Health(ctx)
			}),
		},
	)

	return root
}

func readPayload(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return b, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
