package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/seaward/marina"
	"github.com/seaward/marina/renderer"
)

// session is one interactive run over a fleet file: load, prompt loop,
// save on exit. It is single-threaded; every command runs to completion
// before the next prompt.
type session struct {
	path   string
	fleet  *marina.Fleet
	in     *bufio.Reader
	out    io.Writer
	render func(md string)
	watch  *fileWatch
}

func newSession(path string, in io.Reader, out io.Writer) *session {
	s := &session{path: path, in: bufio.NewReader(in), out: out}
	s.render = func(md string) { fmt.Fprint(out, glamourize(md)) }
	return s
}

// RunSession runs the interactive session on the fleet file at path and
// returns the process exit code.
func RunSession(path string) int {
	return newSession(path, os.Stdin, os.Stdout).run()
}

func (s *session) run() int {
	fleet, err := marina.LoadFleet(s.path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn().Str("file", s.path).Msg("fleet file does not exist, starting with an empty fleet")
		fleet = marina.NewFleet()
	default:
		logger.Error().Err(err).Msg("could not load fleet, starting with an empty fleet")
		fleet = marina.NewFleet()
	}
	s.fleet = fleet

	if w, err := newFileWatch(s.path); err == nil {
		s.watch = w
		defer w.Close()
	}

	fmt.Fprint(s.out, "\nWelcome to the Marina Boat Management System\n")
	fmt.Fprint(s.out, "--------------------------------------------\n\n")

	for {
		fmt.Fprint(s.out, "(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : ")
		line, ok := s.readLine()
		if !ok {
			break // EOF behaves like exit
		}
		if line == "" {
			continue
		}

		switch unicode.ToUpper(rune(line[0])) {
		case 'I':
			s.render(renderer.Fleet(s.fleet))
		case 'A':
			s.add()
		case 'R':
			s.remove()
		case 'P':
			s.payment()
		case 'M':
			s.month()
		case 'X':
			s.save()
			fmt.Fprint(s.out, "\nExiting the Boat Management System\n")
			return 0
		default:
			fmt.Fprintf(s.out, "Invalid option %c\n\n", unicode.ToUpper(rune(line[0])))
		}
	}

	s.save()
	return 0
}

func (s *session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *session) add() {
	line, ok := s.prompt("Please enter the boat data in CSV format                 : ")
	if !ok {
		return
	}
	v, err := marina.ParseVessel(line)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n\n", err)
		return
	}
	if err := s.fleet.Insert(v); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n\n", err)
	}
}

func (s *session) remove() {
	name, ok := s.prompt("Please enter the boat name                               : ")
	if !ok {
		return
	}
	if err := s.fleet.Remove(name); err != nil {
		fmt.Fprint(s.out, "No boat with that name\n\n")
	}
}

func (s *session) payment() {
	name, ok := s.prompt("Please enter the boat name: ")
	if !ok {
		return
	}
	if _, err := s.fleet.Find(name); err != nil {
		fmt.Fprint(s.out, "No boat with that name\n\n")
		return
	}
	text, ok := s.prompt("Please enter the amount to be paid: ")
	if !ok {
		return
	}

	amount := marina.ParseMoney(text, marina.DefaultCurrency)
	err := s.fleet.RecordPayment(name, amount)
	switch {
	case errors.Is(err, marina.ErrExceedsBalance):
		v, _ := s.fleet.Find(name)
		fmt.Fprintf(s.out, "That is more than the amount owed, %s\n\n", v.Fees)
	case err != nil:
		fmt.Fprint(s.out, "No boat with that name\n\n")
	default:
		v, _ := s.fleet.Find(name)
		s.render(renderer.Receipt(v, amount))
	}
}

func (s *session) month() {
	total := s.fleet.ApplyMonthlyFees()
	s.render(renderer.BillingSummary(s.fleet.Len(), total))
}

func (s *session) save() {
	if s.watch != nil && s.watch.Changed() {
		logger.Warn().Str("file", s.path).Msg("fleet file changed on disk during the session, overwriting")
	}
	if err := marina.SaveFleet(s.path, s.fleet); err != nil {
		logger.Error().Err(err).Msg("could not save fleet")
	}
}
