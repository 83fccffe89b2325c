package cmdutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter дозапрашивает пустые поля формы, если ввод идет с терминала
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// StdPrompter работает со stdin/stdout и спрашивает только в терминале
func StdPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// Fill спрашивает значение, если оно пустое. Пустой ответ оставляет поле пустым.
func (p *Prompter) Fill(value *string, label string) error {
	if *value != "" || !p.interactive {
		return nil
	}

	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("ошибка чтения ввода: %w", err)
	}

	*value = strings.TrimSpace(line)
	return nil
}
