package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

// statusLine renders "  label:  [TAG] message", coloured when colorize is set.
func statusLine(label, tag, color, message string, colorize bool) string {
	line := fmt.Sprintf("  %-16s [%s]", label+":", tag)
	if message != "" {
		line += " " + message
	}
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func checkLine(label string, passed bool, message string, colorize bool) string {
	if passed {
		return statusLine(label, "OK", ansiGreen, message, colorize)
	}
	return statusLine(label, "FAIL", ansiRed, message, colorize)
}

func infoLine(label, message string, colorize bool) string {
	return statusLine(label, "INFO", ansiBlue, message, colorize)
}

func sectionHeader(title string, colorize bool) string {
	line := "== " + title + " =="
	if colorize {
		return ansiBlue + line + ansiReset
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
