package filelist

import (
	"os"
	"strings"
)

// Echo creates a pipe containing the string s.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File creates a pipe that reads from the file path.
func File(path string) *Pipe {
	f, err := os.Open(path)
	if err != nil {
		return NewPipe().WithError(err)
	}
	return NewPipe().WithReader(f)
}

// ListEntries creates a pipe containing the name of every entry in the
// directory dir, one per line. Names are bare, with no directory prefix, and
// appear in whatever order the operating system returns them. Nothing is
// excluded: files, subdirectories, hidden entries, symlinks and special files
// are all listed. Subdirectories are not descended into.
//
// If dir cannot be opened or read, the pipe's error status is set.
func ListEntries(dir string) *Pipe {
	names, err := readNames(dir)
	if err != nil {
		return NewPipe().WithError(err)
	}
	return Slice(names)
}

// Slice creates a pipe containing each element of lines, each followed by a
// newline.
func Slice(lines []string) *Pipe {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return Echo(b.String())
}

// readNames returns the entry names of dir in directory order. os.ReadDir
// would sort them.
func readNames(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.Readdirnames(-1)
}
