package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pinpt/go-filterset/filter"
	pjson "github.com/pinpt/go-filterset/json"
	"github.com/pinpt/go-filterset/log"
	"github.com/spf13/cobra"
)

// filterFlags maps the repeatable key=value flags of the query command to their filter kind, in
// the order they are added to the set
var filterFlags = []struct {
	name string
	kind filter.Kind
}{
	{"text", filter.Text},
	{"enum", filter.Enum},
	{"date-from", filter.DateFrom},
	{"date-to", filter.DateTo},
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "encode a filter set as a query string, or decode one with --decode",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		defer logger.Close()
		opts := queryOptions(cmd)
		if decode, _ := cmd.Flags().GetString("decode"); decode != "" {
			if err := decodeQuery(os.Stdout, decode, opts); err != nil {
				log.Fatal(logger, "error decoding query", "err", err)
			}
			return
		}
		logic, _ := cmd.Flags().GetString("logic")
		specs := make(map[filter.Kind][]string)
		for _, ff := range filterFlags {
			specs[ff.kind], _ = cmd.Flags().GetStringArray(ff.name)
		}
		set, err := buildSet(logic, specs)
		if err != nil {
			log.Fatal(logger, "error building filter set", "err", err)
		}
		log.Debug(logger, "built filter set", "filters", set.Len(), "hash", set.Hash())
		fmt.Fprintln(os.Stdout, filter.ToQuery(set, opts))
	},
}

// buildSet upserts a filter for every key=value spec, so a later spec for the same kind and key wins
func buildSet(logic string, specs map[filter.Kind][]string) (filter.Set, error) {
	l, err := filter.ParseLogic(logic)
	if err != nil {
		return filter.Set{}, err
	}
	set := filter.NewSet(l)
	for _, ff := range filterFlags {
		for _, spec := range specs[ff.kind] {
			kv := strings.SplitN(spec, "=", 2)
			if len(kv) != 2 || kv[0] == "" {
				return filter.Set{}, fmt.Errorf("invalid --%s value %q, expected key=value", ff.name, spec)
			}
			f, err := filter.New(ff.kind, kv[0], kv[1])
			if err != nil {
				return filter.Set{}, err
			}
			if set, err = set.AddOrUpdate(f); err != nil {
				return filter.Set{}, err
			}
		}
	}
	return set, nil
}

type filterView struct {
	Kind  string      `json:"kind"`
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

type setView struct {
	Logic   string       `json:"logic"`
	Hash    string       `json:"hash"`
	Filters []filterView `json:"filters"`
}

// decodeQuery writes the decoded filter set as json
func decodeQuery(w io.Writer, query string, opts filter.QueryOptions) error {
	set, err := filter.FromQuery(query, opts)
	if err != nil {
		return err
	}
	view := setView{
		Logic:   set.Logic().String(),
		Hash:    set.Hash(),
		Filters: make([]filterView, 0, set.Len()),
	}
	for _, f := range set.Filters() {
		view.Filters = append(view.Filters, filterView{f.Kind().String(), f.Key(), f.Value()})
	}
	_, err = fmt.Fprintln(w, pjson.Stringify(view, true))
	return err
}

func init() {
	queryCmd.Flags().String("logic", "and", "how the filters are combined (and, or)")
	queryCmd.Flags().String("decode", "", "decode this query and print the filter set as json")
	for _, ff := range filterFlags {
		queryCmd.Flags().StringArray(ff.name, nil, fmt.Sprintf("add a %s filter as key=value (repeatable)", ff.kind))
	}
	rootCmd.AddCommand(queryCmd)
}
