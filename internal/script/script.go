package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// defaultFormat is the ASS v4+ event layout assumed when [Events] has no
// Format line.
var defaultFormat = []string{"Layer", "Start", "End", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "Text"}

const maxLineBytes = 1 << 20

// Dialogue is one Dialogue: line of the [Events] section.
type Dialogue struct {
	Line  int     `json:"line" yaml:"line"`
	Layer int     `json:"layer" yaml:"layer"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Style string  `json:"style" yaml:"style"`
	Name  string  `json:"name" yaml:"name"`
	Text  string  `json:"text" yaml:"text"`
}

// Duration returns the on-screen time of the line in seconds.
func (d Dialogue) Duration() float64 {
	return d.End - d.Start
}

// Script holds the dialogue lines of a script in file order.
type Script struct {
	Dialogues []Dialogue
	// Skipped lists the line numbers of Dialogue lines that could not be read.
	Skipped []int
}

// Load reads the script at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return s, nil
}

// Read decodes a script from r. UTF-8 is assumed unless a byte order mark
// selects UTF-16.
func Read(r io.Reader) (*Script, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	fold := cases.Fold()
	s := &Script{}
	format := defaultFormat
	inEvents := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inEvents = fold.String(line) == fold.String("[Events]")
			continue
		}
		if !inEvents {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch fold.String(strings.TrimSpace(key)) {
		case "format":
			format = splitFormat(value)
		case "dialogue":
			d, err := parseDialogue(format, value)
			if err != nil {
				s.Skipped = append(s.Skipped, lineNo)
				continue
			}
			d.Line = lineNo
			s.Dialogues = append(s.Dialogues, d)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func splitFormat(value string) []string {
	fields := strings.Split(value, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

// parseDialogue splits value into len(format) fields. The last field is the
// text and keeps any commas it contains.
func parseDialogue(format []string, value string) (Dialogue, error) {
	fields := strings.SplitN(strings.TrimLeft(value, " "), ",", len(format))
	if len(fields) != len(format) {
		return Dialogue{}, fmt.Errorf("expected %d fields, got %d", len(format), len(fields))
	}

	fold := cases.Fold()
	var d Dialogue
	for i, name := range format {
		field := fields[i]
		if i < len(format)-1 {
			field = strings.TrimSpace(field)
		}

		var err error
		switch fold.String(name) {
		case "layer":
			d.Layer, err = strconv.Atoi(field)
		case "start":
			d.Start, err = ParseTimestamp(field)
		case "end":
			d.End, err = ParseTimestamp(field)
		case "style":
			d.Style = field
		case "name", "actor":
			d.Name = field
		case "text":
			d.Text = field
		}
		if err != nil {
			return Dialogue{}, fmt.Errorf("field %s: %w", name, err)
		}
	}
	return d, nil
}

// ParseTimestamp converts an H:MM:SS.CC timestamp to seconds.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	hms := strings.Split(value, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.ParseFloat(hms[2], 64)
	if errH != nil || errM != nil || errS != nil || hours < 0 || minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60) + seconds, nil
}
