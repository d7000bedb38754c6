package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pinpt/go-filterset/fileutil"
	"github.com/pinpt/go-filterset/filter"
	"github.com/pinpt/go-filterset/flatten"
	pjson "github.com/pinpt/go-filterset/json"
	"github.com/pinpt/go-filterset/log"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [file]",
	Short: "filter a json array of records read from a file (optionally gzipped) or stdin",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		defer logger.Close()
		query, _ := cmd.Flags().GetString("query")
		flat, _ := cmd.Flags().GetBool("flatten")
		var records []filter.Record
		var err error
		if len(args) > 0 {
			err = pjson.ReadFile(args[0], &records)
		} else {
			var r io.ReadCloser
			if r, err = fileutil.NewReader(os.Stdin); err == nil {
				records, err = readRecords(r)
			}
		}
		if err != nil {
			log.Fatal(logger, "error reading records", "err", err)
		}
		if err := filterRecords(logger, os.Stdout, records, query, queryOptions(cmd), flat); err != nil {
			log.Fatal(logger, "error filtering records", "err", err)
		}
	},
}

func readRecords(r io.Reader) ([]filter.Record, error) {
	var records []filter.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding records: %w", err)
	}
	return records, nil
}

// filterRecords applies the filter set encoded in query to records and writes the matches as json
func filterRecords(logger log.Logger, w io.Writer, records []filter.Record, query string, opts filter.QueryOptions, flat bool) error {
	set, err := filter.FromQuery(query, opts)
	if err != nil {
		return err
	}
	if flat {
		for i, r := range records {
			kv, err := flatten.Flatten(r, "")
			if err != nil {
				return err
			}
			records[i] = kv
		}
	}
	log.Debug(logger, "filtering records", "count", len(records), "logic", set.Logic(), "filters", set.Len(), "hash", set.Hash())
	res := filter.Apply(records, set)
	log.Info(logger, "filtered records", "matched", len(res), "total", len(records))
	_, err = fmt.Fprintln(w, pjson.Stringify(res, true))
	return err
}

func init() {
	filterCmd.Flags().String("query", "logic=and", "the encoded filter set")
	filterCmd.Flags().Bool("flatten", false, "flatten nested objects into parent_child keys before filtering")
	rootCmd.AddCommand(filterCmd)
}
