package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// Prompt texts shared by the reader and the menu
const (
	InvalidInputMsg = "Invalid input. Please try again."
	ChoicePrompt    = "Enter your choice: "
	PauseMsg        = "Press enter to continue..."
)

// Reader reads lines from the user and keeps asking until they are valid.
type Reader struct {
	in    *bufio.Reader
	out   io.Writer
	clear Clearer
}

// NewReader creates a reader prompting on out and reading from in
func NewReader(in io.Reader, out io.Writer, clearer Clearer) *Reader {
	if clearer == nil {
		clearer = NopClearer{}
	}
	return &Reader{in: bufio.NewReader(in), out: out, clear: clearer}
}

// ReadValidated prompts until a line fully matches p and returns it.
// There is no retry limit; the only error is domain.ErrInputClosed (or a read
// failure) once input runs out.
func (r *Reader) ReadValidated(prompt string, p domain.Pattern) (string, error) {
	for {
		fmt.Fprint(r.out, prompt)

		line, err := r.readLine()
		if err != nil {
			return "", err
		}

		if p.Match(line) {
			return line, nil
		}

		r.clear.Clear()
		fmt.Fprintln(r.out, InvalidInputMsg)
	}
}

// ReadChoice prompts for a menu number in [1, n]. On a non-numeric or
// out-of-range answer it clears the screen, calls redraw and reports the
// error before asking again.
func (r *Reader) ReadChoice(n int, redraw func()) (int, error) {
	for {
		fmt.Fprint(r.out, ChoicePrompt)

		line, err := r.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= n {
			return choice, nil
		}

		r.clear.Clear()
		if redraw != nil {
			redraw()
		}
		fmt.Fprintln(r.out, InvalidInputMsg)
	}
}

// Pause blocks until the user presses enter
func (r *Reader) Pause() error {
	fmt.Fprintln(r.out, PauseMsg)
	_, err := r.readLine()
	return err
}

// readLine returns the next line without its terminator. A final line without
// a newline is still returned; after that domain.ErrInputClosed is reported.
func (r *Reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", domain.ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
