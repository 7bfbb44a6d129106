package filelist

import (
	"bufio"
	"strings"
)

// EachLine calls the function process on each line of input, passing it the
// line as a string, and a *strings.Builder to write its output to. If there
// is an error reading the pipe, the pipe's error status is also set.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := bufio.NewScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
	}
	if err := scanner.Err(); err != nil {
		return p.WithError(err)
	}
	return Echo(output.String())
}
