package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TopicPrompt is shown before reading the topic
const TopicPrompt = "Enter your video content prompt: "

// ErrNoInput is returned when stdin closes before a line is read
var ErrNoInput = errors.New("no input")

// ReadTopic prints the prompt to out and reads one line from in
func ReadTopic(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, TitleStyle.Render(strings.TrimSpace(TopicPrompt))+" ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read topic: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}

	return strings.TrimSpace(line), nil
}

// Success prints a green status line
func Success(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Failure prints a red status line
func Failure(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a dimmed status line
func Info(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(out, InfoStyle.Render(fmt.Sprintf(format, args...)))
}
