package log

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pinpt/go-filterset/term"
)

var (
	infoColor     = color.New(color.FgGreen)
	warnColor     = color.New(color.FgRed)
	errColor      = color.New(color.FgRed, color.Bold)
	debugColor    = color.New(color.FgBlue)
	pkgColor      = color.New(color.FgHiMagenta)
	msgColor      = color.New(color.FgWhite, color.Bold)
	msgLightColor = color.New(color.FgBlack, color.Bold)
	kvColor       = color.New(color.FgYellow)

	ansiStripper = regexp.MustCompile("\\x1b\\[[0-9;]*m")
)

// consoleLogger writes a single human readable line per event with the key/values right aligned
type consoleLogger struct {
	w     io.Writer
	pkg   string
	theme ColorTheme
	width int
}

func newConsoleLogger(w io.Writer, pkg string, theme ColorTheme) *consoleLogger {
	if !term.IsTerminal(w) {
		theme = NoColorTheme
	}
	return &consoleLogger{w, pkg, theme, int(term.GetTerminalWidth())}
}

func (l *consoleLogger) colors() bool {
	return !color.NoColor && l.theme != NoColorTheme
}

func (l *consoleLogger) Log(keyvals ...interface{}) error {
	m := make(map[string]interface{}, (len(keyvals)+1)/2)
	m[pkgKey] = l.pkg
	keys := make([]string, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		var v interface{} = ErrMissingValue
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		keys = append(keys, merge(m, keyvals[i], v))
	}
	hasColors := l.colors()
	lvl := fmt.Sprintf("%v", m[levelKey])
	c := infoColor
	switch lvl {
	case debugLevel:
		c = debugColor
	case warnLevel:
		c = warnColor
	case errLevel:
		c = errColor
	default:
		lvl = infoLevel
	}
	pkg := fmt.Sprintf("%v", m[pkgKey])
	if len(pkg) > 7 {
		pkg = pkg[0:7]
	}
	msg := ansiStripper.ReplaceAllString(fmt.Sprintf("%v", m[msgKey]), "")
	sort.Strings(keys)
	kv := make([]string, 0, len(keys))
	slen := 0
	for _, k := range keys {
		switch k {
		case levelKey, pkgKey, tsKey, msgKey:
			continue
		}
		val := ansiStripper.ReplaceAllString(strings.TrimSpace(fmt.Sprintf("%v", m[k])), "")
		k = ansiStripper.ReplaceAllString(k, "")
		slen += len(k) + len(val) + 1
		if hasColors {
			kv = append(kv, fmt.Sprintf("%s=%s", kvColor.Sprint(k), kvColor.Sprint(val)))
		} else {
			kv = append(kv, fmt.Sprintf("%s=%s", k, val))
		}
	}
	var kvs string
	if len(kv) > 0 {
		slen += len(kv) - 1
		// level (7) + pkg (9) + message + space
		pad := l.width - (len(msg) + 17) - slen
		var buf bytes.Buffer
		for i := 0; i < pad; i++ {
			buf.WriteByte(' ')
		}
		buf.WriteString(strings.Join(kv, " "))
		kvs = buf.String()
	}
	lvlstr := fmt.Sprintf("%-6s", strings.ToUpper(lvl))
	pkgstr := fmt.Sprintf("%-8s", pkg)
	if !hasColors {
		_, err := fmt.Fprintf(l.w, "%s %s %s %s\n", lvlstr, pkgstr, msg, kvs)
		return err
	}
	o := l.w
	if l.w == os.Stdout {
		// for windows, we must use the color.Output writer to get the escape codes properly output
		o = color.Output
	}
	mc := msgColor
	if l.theme == LightLogColorTheme {
		mc = msgLightColor
	}
	_, err := fmt.Fprintf(o, "%s %s %s %s\n", c.Sprint(lvlstr), pkgColor.Sprint(pkgstr), mc.Sprint(msg), kvs)
	return err
}

// merge stores v under the string form of k and returns that key
func merge(dst map[string]interface{}, k, v interface{}) string {
	var key string
	switch x := k.(type) {
	case string:
		key = x
	case fmt.Stringer:
		key = safeString(x)
	default:
		key = fmt.Sprint(x)
	}

	// json.Marshaler and encoding.TextMarshaler take priority over err.Error() and v.String()
	switch x := v.(type) {
	case json.Marshaler:
	case encoding.TextMarshaler:
	case error:
		v = safeError(x)
	case fmt.Stringer:
		v = safeString(x)
	}

	dst[key] = v
	return key
}

func safeString(str fmt.Stringer) (s string) {
	defer func() {
		if panicVal := recover(); panicVal != nil {
			if v := reflect.ValueOf(str); v.Kind() == reflect.Ptr && v.IsNil() {
				s = "NULL"
			} else {
				panic(panicVal)
			}
		}
	}()
	s = str.String()
	return
}

func safeError(err error) (s interface{}) {
	defer func() {
		if panicVal := recover(); panicVal != nil {
			if v := reflect.ValueOf(err); v.Kind() == reflect.Ptr && v.IsNil() {
				s = nil
			} else {
				panic(panicVal)
			}
		}
	}()
	s = err.Error()
	return
}
