package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompt prints label and reads one trimmed line. A final line without a
// newline is accepted.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptDefault is prompt where an empty answer keeps def.
func (a *App) promptDefault(label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	v, err := a.prompt(label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

func (a *App) promptInt(label string, def int64) (int64, error) {
	v, err := a.promptDefault(label, strconv.FormatInt(def, 10))
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", label, v)
	}
	return n, nil
}

// promptMultiline reads lines until an empty one.
func (a *App) promptMultiline(label string) (string, error) {
	a.printf("%s (empty line to finish):\n", label)

	var lines []string
	for {
		line, err := a.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// confirm asks a yes/no question; only "y" and "yes" agree.
func (a *App) confirm(question string) (bool, error) {
	v, err := a.prompt(question + " (y/N)")
	if err != nil {
		return false, err
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes", nil
}

// parseIDs reads a comma or space separated list of numeric ids.
func parseIDs(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", f)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
