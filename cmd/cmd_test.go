package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pinpt/go-filterset/filter"
	"github.com/pinpt/go-filterset/log"
	"github.com/stretchr/testify/assert"
)

const records = `[
	{"type": "human", "is": "Philip J. Fry", "born": "1974-08-14"},
	{"type": "drink", "is": "Martini with an olive"},
	{"type": "robot", "is": "Bender Bending Rodriguez", "born": "2996-09-04", "ship": {"name": "Planet Express"}}
]`

func TestReadRecords(t *testing.T) {
	assert := assert.New(t)
	res, err := readRecords(strings.NewReader(records))
	assert.NoError(err)
	assert.Len(res, 3)
	assert.Equal("drink", res[1]["type"])
	_, err = readRecords(strings.NewReader(`{"type":`))
	assert.Error(err)
}

func TestFilterRecords(t *testing.T) {
	assert := assert.New(t)
	logger := log.NewNoOpTestLogger()
	res, err := readRecords(strings.NewReader(records))
	assert.NoError(err)

	var w bytes.Buffer
	assert.NoError(filterRecords(logger, &w, res, "logic=and&is=text%7Cliv", filter.DefaultQueryOptions(), false))
	assert.Equal("[\n\t{\n\t\t\"is\": \"Martini with an olive\",\n\t\t\"type\": \"drink\"\n\t}\n]\n", w.String())

	w.Reset()
	assert.NoError(filterRecords(logger, &w, res, "logic=or&type=enum%7Chuman&type=enum%7Crobot", filter.DefaultQueryOptions(), false))
	// both filters share kind and key, the set is trusted as given and the later records come first
	out := w.String()
	assert.True(strings.Index(out, "Bender") < strings.Index(out, "Fry"))
	assert.NotContains(out, "olive")

	w.Reset()
	assert.NoError(filterRecords(logger, &w, res, "logic=and&ship_name=text%7CExpress", filter.DefaultQueryOptions(), true))
	assert.Contains(w.String(), `"ship_name": "Planet Express"`)

	err = filterRecords(logger, &w, res, "logic=maybe", filter.DefaultQueryOptions(), false)
	assert.True(errors.Is(err, filter.ErrInvalidLogic))
}

func TestBuildSet(t *testing.T) {
	assert := assert.New(t)
	set, err := buildSet("or", map[filter.Kind][]string{
		filter.Text:     {"is=liv", "is=Fry"},
		filter.DateFrom: {"born=2042-11-12"},
	})
	assert.NoError(err)
	assert.Equal("logic=or&born=date_from%7C2042-11-12&is=text%7CFry", filter.ToQuery(set, filter.DefaultQueryOptions()))

	_, err = buildSet("xor", nil)
	assert.True(errors.Is(err, filter.ErrInvalidLogic))
	_, err = buildSet("and", map[filter.Kind][]string{filter.Enum: {"type"}})
	assert.EqualError(err, `invalid --enum value "type", expected key=value`)
	_, err = buildSet("and", map[filter.Kind][]string{filter.DateTo: {"born=someday"}})
	assert.True(errors.Is(err, filter.ErrInvalidDateFormat))
}

func TestDecodeQuery(t *testing.T) {
	assert := assert.New(t)
	var w bytes.Buffer
	assert.NoError(decodeQuery(&w, "logic=and&born=date_to%7C2042-11-12", filter.DefaultQueryOptions()))
	assert.Contains(w.String(), `"logic": "and"`)
	assert.Contains(w.String(), `"kind": "date_to"`)
	assert.Contains(w.String(), `"value": 26613`)

	opts := filter.DefaultQueryOptions()
	opts.KeyFormat = filter.KeyFormatAtoms
	opts.Keys = []string{"type"}
	err := decodeQuery(&w, "logic=and&born=date_to%7C2042-11-12", opts)
	assert.True(errors.Is(err, filter.ErrUnrecognizedKey))
}

func TestQueryOptions(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(rootCmd.ParseFlags([]string{"--separator", ":", "--keys", "type,is"}))
	opts := queryOptions(rootCmd)
	assert.Equal(":", opts.Separator)
	assert.Equal(filter.KeyFormatAtoms, opts.KeyFormat)
	assert.Equal([]string{"type", "is"}, opts.Keys)
}
