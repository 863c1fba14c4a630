package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptSession runs one interactive session over scripted input and returns
// the terminal output. Rendering is raw markdown so assertions are stable.
func scriptSession(t *testing.T, path string, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	s := newSession(path, strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	s.render = func(md string) { fmt.Fprint(&out, md) }
	if code := s.run(); code != 0 {
		t.Fatalf("session exit code = %d, want 0", code)
	}
	return out.String()
}

func writeFleetFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("writing fleet file: %v", err)
	}
	return path
}

func TestSession_FullScript(t *testing.T) {
	path := writeFleetFile(t,
		"Alpha,20,slip,5,100.00",
		"beta,10,land,B,0.00",
	)

	out := scriptSession(t, path,
		"I",
		"A", "Gamma,15,trailor,TOW,0.00",
		"R", "beta",
		"P", "Alpha", "40.25",
		"Z",
		"M",
		"X",
	)

	for _, want := range []string{
		"| Alpha | 20 ft | slip | 5 | $100.00 |",
		"| beta | 10 ft | land | B | $0.00 |",
		`Received $40.25 for "Alpha"`,
		"Invalid option Z",
		"Charged 2 vessels",
		"Exiting the Boat Management System",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output missing %q:\n%s", want, out)
		}
	}

	// Alpha: 100.00 - 40.25 + 20*12.50 = 309.75; Gamma: 15*25.00 = 375.00.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back the fleet file: %v", err)
	}
	want := "Alpha,20,slip,5,309.75\nGamma,15,trailor,TOW,375.00\n"
	if string(data) != want {
		t.Errorf("fleet file after session = %q, want %q", string(data), want)
	}
}

func TestSession_RejectedAddLeavesFleetUnchanged(t *testing.T) {
	path := writeFleetFile(t, "Alpha,20,slip,5,100.00")

	out := scriptSession(t, path,
		"A", "X,10,dock,1,0",
		"X",
	)

	if !strings.Contains(out, "unknown location category") {
		t.Errorf("session output missing the rejection message:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back the fleet file: %v", err)
	}
	if want := "Alpha,20,slip,5,100.00\n"; string(data) != want {
		t.Errorf("fleet file after rejected add = %q, want %q", string(data), want)
	}
}

func TestSession_ExactPaymentRejected(t *testing.T) {
	path := writeFleetFile(t, "Alpha,20,slip,5,100.00")

	out := scriptSession(t, path,
		"P", "alpha", "100.00",
		"X",
	)

	if !strings.Contains(out, "That is more than the amount owed, $100.00") {
		t.Errorf("session output missing the exceeds-balance message:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back the fleet file: %v", err)
	}
	if want := "Alpha,20,slip,5,100.00\n"; string(data) != want {
		t.Errorf("balance changed on a rejected payment: %q, want %q", string(data), want)
	}
}

func TestSession_UnknownName(t *testing.T) {
	path := writeFleetFile(t, "Alpha,20,slip,5,100.00")

	out := scriptSession(t, path,
		"R", "Bravo",
		"P", "Bravo",
		"X",
	)

	if got := strings.Count(out, "No boat with that name"); got != 2 {
		t.Errorf("expected 2 not-found messages, got %d:\n%s", got, out)
	}
}

func TestSession_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.csv")

	out := scriptSession(t, path,
		"I",
		"X",
	)
	if !strings.Contains(out, "The fleet is empty.") {
		t.Errorf("session output missing the empty inventory:\n%s", out)
	}

	// Exiting creates the file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("the fleet file was not created on exit: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("fleet file = %q, want empty", string(data))
	}
}

func TestSession_EOFSaves(t *testing.T) {
	path := writeFleetFile(t, "Alpha,20,slip,5,100.00")

	// No X: the input just ends.
	scriptSession(t, path, "M")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back the fleet file: %v", err)
	}
	if want := "Alpha,20,slip,5,350.00\n"; string(data) != want {
		t.Errorf("fleet file after EOF = %q, want %q", string(data), want)
	}
}
