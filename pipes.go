// Package filelist writes the names of the entries in a directory to a text
// file, one per line, and reports what happened.
//
// The simplest use is:
//
//	r := filelist.SaveList("")
//	fmt.Println(r.Message())
//
// which writes the current directory's listing to "file_list.txt". The
// listing itself is built from a small set of pipe operations, which are also
// exported: sources such as [ListEntries] produce a [Pipe] of lines, and sinks
// such as [Pipe.WriteFile] consume it.
//
// If any pipe operation results in an error, the pipe's Error method will
// return that error, and all further pipe operations will be no-ops. Thus you
// can chain operations without checking the error status at each stage:
//
//	n, err := filelist.ListEntries("doesnt_exist").WriteFile("out.txt")
//	fmt.Println(n, err)
//	// Output: 0 open doesnt_exist: no such file or directory
package filelist

import (
	"io"
	"os"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do, because
// pipes created from a non-closable source will have an [io.NopCloser] to
// call.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a nil
// pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error. A non-nil
// error also closes the pipe's reader.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithReader takes an io.Reader, and associates the pipe with that reader. If
// necessary, the reader will be automatically closed once it has been
// completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout sets the pipe's standard output to the writer w, instead of the
// default os.Stdout.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError sets the pipe's error status to the specified error and returns the
// modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

func (p *Pipe) output() io.Writer {
	if p.stdout == nil {
		return os.Stdout
	}
	return p.stdout
}
