package token

import (
	"fmt"
	"os"
)

type File struct {
	Name  string
	Src   []byte // File source
	Lines []int  // Offsets of beginning of each line, starting at 0.
	Err   error  // Error set on creation. Not returned by contructor for convenience.
}

// NewFile reads the named file, or uses src if it is a string or []byte.
func NewFile(filename string, src any) *File {
	file := &File{
		Name: filename,
	}

	srcBytes, err := readSource(filename, src)
	if err != nil {
		srcBytes = []byte{}
		file.Err = err
	}

	file.Src = srcBytes
	file.Lines = getLines(srcBytes)
	return file
}

func readSource(filename string, src any) ([]byte, error) {
	if src != nil {
		switch src := src.(type) {
		case string:
			return []byte(src), nil

		case []byte:
			return src, nil

		default:
			return nil, fmt.Errorf("invalid src type %T", src)
		}
	}

	return os.ReadFile(filename)
}

// Line returns the source on the given line, without the trailing newline.
// Lines are numbered from 1 like Pos.Line. Out of range lines are empty.
func (f *File) Line(line int) string {
	if line < 1 || line > len(f.Lines) {
		return ""
	}

	offset := f.Lines[line-1]
	end := findEndOfLine(f.Src, offset)
	return string(f.Src[offset:end])
}

// Returns offset of the newline ending the current line, or len(src).
func findEndOfLine(src []byte, offset int) int {
	for i := offset; i < len(src); i++ {
		if src[i] == '\n' {
			return i
		}
	}

	return len(src)
}

func getLines(src []byte) []int {
	i := 0
	lines := []int{}
	for i < len(src) {
		lines = append(lines, i)
		i = findEndOfLine(src, i) + 1 // Skip newline
	}

	return lines
}
