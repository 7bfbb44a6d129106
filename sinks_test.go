package filelist

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteFile_CreatesFileWithPipeContents(t *testing.T) {
	t.Parallel()
	want := "Hello, world\n"
	path := filepath.Join(t.TempDir(), "out.txt")
	wrote, err := Echo(want).WriteFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if int(wrote) != len(want) {
		t.Errorf("want %d bytes written, got %d", len(want), wrote)
	}
	got, err := File(path).String()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestWriteFile_TruncatesExistingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a much longer original content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Echo("short\n").WriteFile(path); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short\n" {
		t.Errorf("want %q, got %q", "short\n", got)
	}
}

func TestWriteFile_DoesNotCreateFileWhenPipeHasError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	want := errors.New("oh no")
	_, err := Echo("hello").WithError(want).WriteFile(path)
	if err != want {
		t.Errorf("want %v, got %v", want, err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want %s not to exist, got %v", path, err)
	}
}

func TestWriteFile_SetsErrorStatusWhenFileCannotBeCreated(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "doesntexist", "out.txt")
	p := Echo("hello")
	_, err := p.WriteFile(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", err)
	}
	if p.Error() != err {
		t.Errorf("returned %v but pipe error status was %v", err, p.Error())
	}
}

func TestStdout_WritesToConfiguredWriter(t *testing.T) {
	t.Parallel()
	buf := new(bytes.Buffer)
	want := "hello\nworld\n"
	wrote, err := Echo(want).WithStdout(buf).Stdout()
	if err != nil {
		t.Fatal(err)
	}
	if wrote != len(want) {
		t.Errorf("want %d bytes written, got %d", len(want), wrote)
	}
	if !cmp.Equal(want, buf.String()) {
		t.Error(cmp.Diff(want, buf.String()))
	}
}

func TestCountLines(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"a\n", 1},
		{"a\nb\nc\n", 3},
		{"a\nb", 2},
	}
	for _, tc := range tcs {
		got, err := Echo(tc.input).CountLines()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%q: want %d lines, got %d", tc.input, tc.want, got)
		}
	}
}

func TestSliceSink_ReturnsLines(t *testing.T) {
	t.Parallel()
	got, err := Echo("a\nb\nc\n").Slice()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}
