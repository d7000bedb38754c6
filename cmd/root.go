package cmd

import (
	"fmt"
	"os"

	"github.com/pinpt/go-filterset/filter"
	"github.com/pinpt/go-filterset/log"
	pos "github.com/pinpt/go-filterset/os"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "filterset",
	Short: "filter json records with a filter set carried in a query string",
}

// Execute runs the command line
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		pos.Exit(1)
	}
	pos.Exit(0)
}

func init() {
	log.RegisterFlags(rootCmd)
	rootCmd.PersistentFlags().String("logic-key", pos.Getenv("FILTERSET_LOGIC_KEY", filter.DefaultLogicKey), "the query key holding the and/or logic")
	rootCmd.PersistentFlags().String("separator", pos.Getenv("FILTERSET_SEPARATOR", filter.DefaultSeparator), "the separator between a filter kind and its value")
	rootCmd.PersistentFlags().StringSlice("keys", pos.GetenvList("FILTERSET_KEYS"), "the known filter keys, when set any other key in a query is rejected")
}

func queryOptions(cmd *cobra.Command) filter.QueryOptions {
	opts := filter.DefaultQueryOptions()
	if v, _ := cmd.Flags().GetString("logic-key"); v != "" {
		opts.LogicKey = v
	}
	if v, _ := cmd.Flags().GetString("separator"); v != "" {
		opts.Separator = v
	}
	if keys, _ := cmd.Flags().GetStringSlice("keys"); len(keys) > 0 {
		opts.KeyFormat = filter.KeyFormatAtoms
		opts.Keys = keys
	}
	return opts
}

func newLogger(cmd *cobra.Command) log.LoggerCloser {
	logger, err := log.NewCommandLogger(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pos.Exit(1)
	}
	return logger
}
