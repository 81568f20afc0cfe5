package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

var errNoAnswer = errors.New("no answer given")

// readDocument collects lines until the first blank line or EOF. Blank lines
// before any content are skipped.
func readDocument(r *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 || errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		lines = append(lines, line)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// askYesNo reads one answer. 1, y and yes accept; 2, n and no reject.
func askYesNo(r *bufio.Reader) (bool, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	switch answer {
	case "1", "y", "yes":
		return true, nil
	case "2", "n", "no":
		return false, nil
	case "":
		return false, errNoAnswer
	default:
		return false, fmt.Errorf("invalid selection %q", answer)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
