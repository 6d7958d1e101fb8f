// Package collector runs the interactive prompt loop that gathers tasks.
package collector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xolan/homework/internal/cli"
	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/task"
)

const (
	// Banner is printed once before the first prompt
	Banner = "=== Homework JSON Generator ==="
	// InvalidDayMessage is printed when the day input matches no label
	InvalidDayMessage = "Invalid day, please try again."
)

// Collector prompts for tasks until the user enters an empty day.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	styles cli.Styles
	now    func() time.Time
	err    error
}

// New creates a Collector reading lines from in and writing prompts to out.
// now stamps each task; nil means time.Now.
func New(in io.Reader, out io.Writer, styles cli.Styles, now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
		now:    now,
	}
}

// Run prompts until an empty day, or end of input, and returns the tasks in
// entry order. On a read error the tasks gathered so far are returned along
// with the error.
func (c *Collector) Run() ([]task.Task, error) {
	tasks := []task.Task{}

	c.println(c.styles.Banner.Render(Banner))

	for {
		d, typed, ok := c.promptDay()
		if !ok {
			break
		}

		c.prompt(c.styles.TitlePrompt.Render("Enter the task title:"))
		title, ok := c.readLine()
		if !ok {
			break
		}

		c.println(c.styles.DescriptionPrompt.Render("Enter task description (empty line to finish):"))
		lines := c.readDescription()
		if c.err != nil {
			break
		}

		tasks = append(tasks, task.New(d, title, lines, c.now()))
		c.println(c.styles.Success.Render(fmt.Sprintf("Task for %s added!", typed)))
		c.println("")
	}

	return tasks, c.err
}

// promptDay asks for a day until a known label is entered and returns it
// together with the text as typed. ok is false when the user finished with
// an empty line or input ended.
func (c *Collector) promptDay() (day.Day, string, bool) {
	prompt := fmt.Sprintf("Enter the day (%s), or press Enter to finish:", cli.DayChoices())
	for {
		c.prompt(c.styles.DayPrompt.Render(prompt))
		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return 0, "", false
		}

		d, err := day.Parse(line)
		if err != nil {
			c.println(c.styles.Error.Render(InvalidDayMessage))
			continue
		}
		return d, line, true
	}
}

// readDescription collects lines up to the first blank line or end of input.
func (c *Collector) readDescription() []string {
	var lines []string
	for {
		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

// readLine returns the next line without its line ending. Lines have no
// length limit. A final line without a newline is still returned.
func (c *Collector) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			c.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (c *Collector) prompt(text string) {
	_, _ = fmt.Fprint(c.out, text+" ")
}

func (c *Collector) println(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}
