package fileutil

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Resolve returns the absolute path of filename and an error if it does not exist
func Resolve(filename string) (string, error) {
	if filename == "" {
		return filename, fmt.Errorf("filename was not supplied")
	}
	f, err := filepath.Abs(filename)
	if err != nil {
		return filename, err
	}
	_, err = os.Stat(f)
	return f, err
}

// FileExists returns true if the path components exist
func FileExists(filename ...string) bool {
	_, err := Resolve(filepath.Join(filename...))
	return err == nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *readCloser) Close() error {
	var err error
	for _, cl := range c.closers {
		if cerr := cl.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenFile opens fn for reading. Gzipped content is detected from its header and transparently
// decompressed, whatever the file extension. Close releases every underlying stream.
func OpenFile(fn string) (io.ReadCloser, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error opening %s: %w", fn, err)
	}
	return r, nil
}

// NewReader wraps rc, decompressing it when it starts with a gzip header. Closing the result closes rc.
func NewReader(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(head, gzipMagic) {
		return &readCloser{br, []io.Closer{rc}}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &readCloser{gz, []io.Closer{gz, rc}}, nil
}
