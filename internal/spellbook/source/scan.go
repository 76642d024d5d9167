package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

const (
	blockPrefix = "### "
	setPrefix   = "## "
	fieldPrefix = "* **"
	fieldSep    = "**:"
	breakLine   = "BREAK"
)

// Field is one labelled value inside a block.
type Field struct {
	Label string
	Value string
	Line  int
}

// Block is one "### Name:" entry with its fields.
type Block struct {
	Name string
	// Set is the most recent "## " heading seen before the block, or "".
	Set    string
	Line   int
	fields map[string]Field
}

// Scan reads r to the end (or to a BREAK line) and returns the blocks in
// declaration order.
func Scan(r io.Reader) ([]Block, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		blocks     []Block
		current    *Block
		currentSet string
		lineNo     int
	)
	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == breakLine:
			flush()
			return blocks, nil
		case strings.HasPrefix(line, blockPrefix):
			flush()
			heading := strings.TrimSpace(strings.TrimPrefix(line, blockPrefix))
			name, ok := strings.CutSuffix(heading, ":")
			if !ok {
				return nil, apperrors.WithMetadata(apperrors.CodeParseMalformedHeading,
					fmt.Sprintf("line %d: heading %q must end with a colon", lineNo, heading),
					map[string]string{"Heading": heading, "Line": fmt.Sprint(lineNo)})
			}
			current = &Block{
				Name:   strings.TrimSpace(name),
				Set:    currentSet,
				Line:   lineNo,
				fields: map[string]Field{},
			}
		case strings.HasPrefix(line, setPrefix):
			currentSet = strings.TrimSpace(strings.TrimPrefix(line, setPrefix))
		case strings.HasPrefix(line, fieldPrefix):
			if current == nil {
				continue
			}
			label, value, ok := strings.Cut(strings.TrimPrefix(line, fieldPrefix), fieldSep)
			if !ok {
				continue
			}
			label = strings.TrimSpace(label)
			current.fields[fieldKey(label)] = Field{
				Label: label,
				Value: strings.TrimSpace(value),
				Line:  lineNo,
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan source: %w", err)
	}
	flush()
	return blocks, nil
}

// ScanString is Scan over an in-memory document.
func ScanString(text string) ([]Block, error) {
	return Scan(strings.NewReader(text))
}

func fieldKey(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
