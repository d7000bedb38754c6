package os

import (
	"os"
	"strings"
)

// Getenv will return an environment variable if exists or default if not
func Getenv(name, def string) string {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	return v
}

// GetenvList returns a comma separated environment variable as a list, skipping blank entries
func GetenvList(name string) []string {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	var res []string
	for _, tok := range strings.Split(v, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			res = append(res, tok)
		}
	}
	return res
}
