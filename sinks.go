package filelist

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error
// status is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// CountLines returns the number of lines of input, or an error.
func (p *Pipe) CountLines() (int, error) {
	var lines int
	p.EachLine(func(string, *strings.Builder) {
		lines++
	})
	return lines, p.Error()
}

// Slice returns the input as a slice of strings, one element per line, or an
// error.
func (p *Pipe) Slice() ([]string, error) {
	result := []string{}
	p.EachLine(func(line string, out *strings.Builder) {
		result = append(result, line)
	})
	return result, p.Error()
}

// Stdout copies the pipe's contents to its configured standard output (see
// [Pipe.WithStdout]), and returns the number of bytes successfully written,
// together with any error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	n64, err := io.Copy(p.output(), p.Reader)
	if err != nil {
		p.SetError(err)
		return int(n64), err
	}
	return int(n64), nil
}

// WriteFile writes the pipe's contents to the file path, creating it if it
// doesn't exist and truncating it if it does, and returns the number of bytes
// successfully written, or an error. The file is closed on every path; a
// failure to close it is reported like a failed write. If the pipe already has
// an error status, WriteFile does nothing, and in particular does not create
// the file.
func (p *Pipe) WriteFile(path string) (int64, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	out, err := create(path)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	return p.writeTo(out)
}

func create(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
}

// writeTo copies the pipe's contents to f and closes both.
func (p *Pipe) writeTo(f *os.File) (wrote int64, err error) {
	defer p.Close()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", f.Name(), cerr)
			p.SetError(err)
		}
	}()
	wrote, err = io.Copy(f, p.Reader)
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}
