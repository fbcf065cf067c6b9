// pkg/status/parser.go
package status

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Stanza is one blank-line-delimited block of "Field: value" lines
// from a dpkg or apt database
type Stanza map[string]string

// stanzaScanner walks a control-format stream one stanza at a time so
// a multi-megabyte status database never has to be held in memory
type stanzaScanner struct {
	scanner *bufio.Scanner
	stanza  Stanza
	last    string // most recently seen field, for continuation lines
}

func newStanzaScanner(r io.Reader) *stanzaScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // Handle large descriptions
	return &stanzaScanner{scanner: scanner}
}

// Scan advances to the next stanza. It returns false once the input
// is exhausted; check Err afterwards.
func (s *stanzaScanner) Scan() bool {
	s.stanza = nil
	s.last = ""

	for s.scanner.Scan() {
		line := s.scanner.Text()

		// Empty line indicates end of stanza
		if line == "" {
			if len(s.stanza) > 0 {
				return true
			}
			continue
		}

		// Continuation line (starts with space or tab)
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if s.stanza != nil && s.last != "" {
				s.stanza[s.last] += "\n" + strings.TrimSpace(line)
			}
			continue
		}

		// Parse field: value
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		if s.stanza == nil {
			s.stanza = make(Stanza)
		}
		field := strings.TrimSpace(parts[0])
		s.stanza[field] = strings.TrimSpace(parts[1])
		s.last = field
	}

	// Don't forget the last stanza
	return len(s.stanza) > 0
}

// Stanza returns the stanza read by the last call to Scan
func (s *stanzaScanner) Stanza() Stanza { return s.stanza }

// Err returns the first error hit by the underlying scanner
func (s *stanzaScanner) Err() error { return s.scanner.Err() }

// ParseStatus parses a dpkg status database and returns a record for
// every currently installed package. filename only labels diagnostics.
//
// Stanzas that lack a Package or a well-formed Status field are logged
// and skipped rather than failing the whole parse, the same way dpkg
// tolerates damaged entries.
func ParseStatus(r io.Reader, filename string) (Records, error) {
	records := make(Records)

	sc := newStanzaScanner(r)
	for sc.Scan() {
		stanza := sc.Stanza()

		name, ok := stanza[fieldPackage]
		if !ok {
			slog.Warn("found stanza without Package field, skipping", "path", filename)
			continue
		}

		state, ok := installState(stanza[fieldStatus])
		if !ok {
			slog.Warn("package has missing or malformed Status field, skipping",
				"package", name, "path", filename)
			continue
		}
		if state != installedState {
			continue
		}

		records[name] = Record{
			Name:         name,
			Architecture: stanza[fieldArchitecture],
			Version:      stanza[fieldVersion],
			Priority:     ParsePriority(stanza[fieldPriority]),
			Section:      stanza[fieldSection],
			Essential:    strings.EqualFold(stanza[fieldEssential], "yes"),
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning status database: %w", err)
	}

	return records, nil
}

// installState extracts the state word from a Status value. dpkg
// writes exactly three words ("want flag state", e.g. "install ok
// installed"); anything else is malformed.
func installState(status string) (string, bool) {
	words := strings.Fields(status)
	if len(words) != 3 {
		return "", false
	}
	return words[2], true
}

// ParseExtendedStates parses an apt extended_states database and
// returns the Auto-Installed flag table. filename only labels
// diagnostics.
func ParseExtendedStates(r io.Reader, filename string) (AutoFlags, error) {
	flags := make(AutoFlags)

	sc := newStanzaScanner(r)
	for sc.Scan() {
		stanza := sc.Stanza()

		name, ok := stanza[fieldPackage]
		if !ok {
			slog.Warn("found stanza without Package field, skipping", "path", filename)
			continue
		}

		value, ok := stanza[fieldAutoInstalled]
		if !ok {
			// apt keeps other markers here too; only the auto flag matters
			continue
		}
		switch value {
		case "0":
			flags[name] = false
		case "1":
			flags[name] = true
		default:
			slog.Warn("ignoring invalid Auto-Installed value",
				"package", name, "value", value, "path", filename)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning extended states: %w", err)
	}

	return flags, nil
}
