package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
)

// Shell is the numbered interactive menu over a Session.
type Shell struct {
	session *Session
	in      *bufio.Scanner
	out     io.Writer
	prompt  bool
}

// NewShell creates a Shell reading choices from in. When prompt is false
// the menu and prompts are not printed, which suits piped input.
func NewShell(session *Session, in io.Reader, out io.Writer, prompt bool) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Shell{
		session: session,
		in:      scanner,
		out:     out,
		prompt:  prompt,
	}
}

// Run loops until option 0 or end of input.
func (sh *Shell) Run() error {
	for {
		sh.printMenu()

		choice, ok := sh.read(l10n.T("Option: "))
		if !ok {
			return sh.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = sh.create()
		case "2":
			err = sh.remove()
		case "3":
			_, err = sh.session.Apply(Step{Op: OpDirectory})
		case "4":
			_, err = sh.session.Apply(Step{Op: OpTable})
		case "5":
			_, err = sh.session.Apply(Step{Op: OpStats})
		case "6":
			_, err = sh.session.Apply(Step{Op: OpReset})
		case "7":
			_, err = sh.session.Apply(Step{Op: OpCheck})
		case "0":
			fmt.Fprintln(sh.out, l10n.T("Exiting..."))
			return nil
		default:
			fmt.Fprintln(sh.out, l10n.T("Invalid option."))
		}
		if err != nil {
			return err
		}
	}
}

func (sh *Shell) create() error {
	name, ok := sh.read(l10n.T("File name: "))
	if !ok {
		return sh.in.Err()
	}
	raw, ok := sh.read(l10n.T("Size (bytes): "))
	if !ok {
		return sh.in.Err()
	}

	size, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(sh.out, l10n.F("Invalid size: %s", raw))
		return nil
	}

	_, err = sh.session.Apply(Step{Op: OpAllocate, Name: name, Size: size})
	return err
}

func (sh *Shell) remove() error {
	name, ok := sh.read(l10n.T("File name to delete: "))
	if !ok {
		return sh.in.Err()
	}
	_, err := sh.session.Apply(Step{Op: OpDelete, Name: name})
	return err
}

func (sh *Shell) read(prompt string) (string, bool) {
	if sh.prompt {
		fmt.Fprint(sh.out, prompt)
	}
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *Shell) printMenu() {
	if !sh.prompt {
		return
	}
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "========== "+l10n.T("FAT SYSTEM")+" ==========")
	fmt.Fprintln(sh.out, "1. "+l10n.T("Create file"))
	fmt.Fprintln(sh.out, "2. "+l10n.T("Delete file"))
	fmt.Fprintln(sh.out, "3. "+l10n.T("Show directory"))
	fmt.Fprintln(sh.out, "4. "+l10n.T("Show FAT table"))
	fmt.Fprintln(sh.out, "5. "+l10n.T("Show statistics"))
	fmt.Fprintln(sh.out, "6. "+l10n.T("Reinitialize system"))
	fmt.Fprintln(sh.out, "7. "+l10n.T("Check consistency"))
	fmt.Fprintln(sh.out, "0. "+l10n.T("Exit"))
	fmt.Fprintln(sh.out, strings.Repeat("=", 33))
}
