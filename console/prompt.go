package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/ansiterm"
)

var (
	errorColor   = ansiterm.Foreground(ansiterm.BrightRed)
	successColor = ansiterm.Foreground(ansiterm.BrightGreen)
	warnColor    = ansiterm.Foreground(ansiterm.Yellow)
	infoColor    = ansiterm.Foreground(ansiterm.BrightBlue)
	headerColor  = ansiterm.Foreground(ansiterm.BrightCyan)
)

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) errorf(format string, args ...interface{}) {
	errorColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) successf(format string, args ...interface{}) {
	successColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) warnf(format string, args ...interface{}) {
	warnColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) infof(format string, args ...interface{}) {
	infoColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) headerf(format string, args ...interface{}) {
	headerColor.Fprintf(c.out, format+"\n", args...)
}

// promptLine prints the prompt and reads one trimmed line.
func (c *Console) promptLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt keeps asking until the operator enters an integer inside
// [min, max]. Read failures end the prompt loop.
func (c *Console) promptInt(min, max int, prompt string) (int, error) {
	for {
		line, err := c.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(line)
		if convErr == nil && value >= min && value <= max {
			return value, nil
		}
		c.errorf("Invalid input! Please enter a number between %d and %d.", min, max)
	}
}

// promptFloat keeps asking until the operator enters a non-negative number.
func (c *Console) promptFloat(prompt string) (float64, error) {
	for {
		line, err := c.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseFloat(line, 64)
		if convErr == nil && value >= 0 {
			return value, nil
		}
		c.errorf("Invalid input! Please enter a non-negative number.")
	}
}

// readSecret reads sensitive input through the secret reader, falling back
// to a plain echoed line when none is wired.
func (c *Console) readSecret(prompt string) (string, error) {
	if c.secret == nil {
		return c.promptLine(prompt)
	}
	return c.secret.ReadSecret(prompt)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
