package json

import (
	"encoding/json"
	"fmt"

	"github.com/pinpt/go-filterset/fileutil"
)

// Stringify will return a JSON formatted string. pass an optional second argument to pretty print
func Stringify(v interface{}, opts ...interface{}) string {
	var buf []byte
	var err error
	if len(opts) > 0 {
		buf, err = json.MarshalIndent(v, "", "\t")
	} else {
		buf, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Sprintf("<error:%v>", err)
	}
	return string(buf)
}

// ReadFile Tries to open a file (optionally gzipped) from the file system and read it into an object
func ReadFile(f string, out interface{}) error {
	if !fileutil.FileExists(f) {
		return fmt.Errorf("file not found %v", f)
	}
	r, err := fileutil.OpenFile(f)
	if err != nil {
		return err
	}
	defer r.Close()
	return json.NewDecoder(r).Decode(out)
}
