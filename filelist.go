package filelist

import (
	"fmt"
	"io"
)

// DefaultFilename is the file SaveList writes to when given an empty name.
const DefaultFilename = "file_list.txt"

// Result is the outcome of one SaveList run.
type Result struct {
	// Filename is the file the listing was (or would have been) written to.
	Filename string
	// Entries is the number of names written. It is zero when Err is set.
	Entries int
	// Err is the first error encountered opening the file, reading the
	// directory, or writing the names, if any.
	Err error
}

// OK reports whether the listing was written successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the one-line, human-readable form of r.
func (r Result) Message() string {
	if r.Err != nil {
		return fmt.Sprintf("An error occurred: %v", r.Err)
	}
	return fmt.Sprintf("File list saved to '%s'", r.Filename)
}

// SaveList writes the name of every entry in the current directory to the
// file filename, one per line, in directory order. If filename is empty,
// DefaultFilename is used. The file is created, or truncated if it exists,
// before the directory is read, so a target inside the current directory
// appears in its own listing.
//
// SaveList never panics on I/O failure; the failure is returned in the
// Result. A partially written file may be left behind.
func SaveList(filename string) Result {
	return saveList(".", filename)
}

// Report calls SaveList and writes the result's message, followed by a
// newline, to w.
func Report(w io.Writer, filename string) Result {
	r := SaveList(filename)
	fmt.Fprintln(w, r.Message())
	return r
}

func saveList(dir, filename string) Result {
	if filename == "" {
		filename = DefaultFilename
	}
	r := Result{Filename: filename}
	out, err := create(filename)
	if err != nil {
		r.Err = err
		return r
	}
	names, err := readNames(dir)
	if err != nil {
		out.Close()
		r.Err = err
		return r
	}
	if _, err := Slice(names).writeTo(out); err != nil {
		r.Err = err
		return r
	}
	r.Entries = len(names)
	return r
}
