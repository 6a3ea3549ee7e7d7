package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yonasBSD/solidtime/internal/client"
	"github.com/yonasBSD/solidtime/internal/config"
	"github.com/yonasBSD/solidtime/internal/utils"
)

// app carries what every command needs once flags are parsed.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *logrus.Logger
	out    io.Writer
	asJSON bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:           "solidtime",
		Short:         "Command line client for the solidtime API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.String("base-url", "", "API base URL, e.g. https://app.solidtime.io/api")
	flags.String("token", "", "Personal access token")
	flags.StringP("organization", "o", "", "Organization id for organization scoped commands")
	flags.Duration("timeout", 0, "Request timeout")
	flags.BoolVar(&a.asJSON, "json", false, "Print raw JSON instead of tables")

	rootCmd.AddCommand(
		newEndpointsCmd(a),
		newSchemaCmd(a),
		newMeCmd(a),
		newMembershipsCmd(a),
		newActiveCmd(a),
		newClientsCmd(a),
		newProjectsCmd(a),
		newTagsCmd(a),
		newTasksCmd(a),
		newTimeEntriesCmd(a),
		newCallCmd(a),
	)
	return rootCmd
}

// flagKeys maps persistent flags onto the configuration keys they override.
var flagKeys = map[string]string{
	"base-url":     "SOLIDTIME_BASE_URL",
	"token":        "SOLIDTIME_API_TOKEN",
	"organization": "SOLIDTIME_ORGANIZATION",
	"timeout":      "SOLIDTIME_TIMEOUT",
}

func (a *app) load(cmd *cobra.Command) error {
	v, err := config.NewViper()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	a.v = v
	a.cfg = config.FromViper(v)
	a.logger = utils.New(a.cfg)
	return nil
}

func (a *app) client() (*client.Client, error) {
	opts := []client.Option{
		client.WithLogger(a.logger),
		client.WithMetrics(prometheus.NewRegistry()),
	}
	if a.cfg.APIToken != "" {
		opts = append(opts, client.WithToken(a.cfg.APIToken))
	}
	if a.cfg.Timeout > 0 {
		opts = append(opts, client.WithTimeout(a.cfg.Timeout))
	}
	if a.cfg.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(a.cfg.RateLimit, a.cfg.RateBurst))
	}
	return client.New(a.cfg.BaseURL, opts...)
}

func (a *app) organization() (string, error) {
	if a.cfg.Organization == "" {
		return "", fmt.Errorf("organization is required: pass --organization or set SOLIDTIME_ORGANIZATION")
	}
	return a.cfg.Organization, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
