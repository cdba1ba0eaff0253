package store

import (
	"bufio"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/t-rethnee/restaurant-console/models"
)

// readLines loads a backing file. A missing file yields no rows and no
// error. Rows the decode function rejects are logged and skipped; a partial
// file is usable data, not a failure.
func readLines(path string, row func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &models.PersistenceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if err := row(line); err != nil {
			log.WithFields(log.Fields{"file": path, "line": lineNo}).
				WithError(err).Warn("Skipping malformed row")
		}
	}
	if err := scanner.Err(); err != nil {
		return &models.PersistenceError{Op: "read", Path: path, Err: err}
	}
	return nil
}

// appendLine durably appends a single record line.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &models.PersistenceError{Op: "open", Path: path, Err: err}
	}
	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()
	if werr != nil {
		return &models.PersistenceError{Op: "append", Path: path, Err: werr}
	}
	if cerr != nil {
		return &models.PersistenceError{Op: "close", Path: path, Err: cerr}
	}
	return nil
}

// rewriteFile replaces the whole file with the given lines. The write is
// in place; a crash mid-rewrite can leave a truncated file. The format has
// no recovery markers, so that window is an accepted limitation.
func rewriteFile(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &models.PersistenceError{Op: "open", Path: path, Err: err}
	}
	var werr error
	for _, line := range lines {
		if _, werr = f.WriteString(line + "\n"); werr != nil {
			break
		}
	}
	cerr := f.Close()
	if werr != nil {
		return &models.PersistenceError{Op: "write", Path: path, Err: werr}
	}
	if cerr != nil {
		return &models.PersistenceError{Op: "close", Path: path, Err: cerr}
	}
	return nil
}
