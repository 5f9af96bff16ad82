package makeinfo

import "regexp"

var (
	blankLine = regexp.MustCompile(`^\s*$`)
	// plainEnd is a line starting with a letter or hyphen and ending on a
	// word character, i.e. the last entry of a block with no trailing
	// backslash.
	plainEnd = regexp.MustCompile(`(?i)^-?[a-z].*\b$`)
	// continuationMarker is a trailing " \" or any single trailing
	// character preceded by whitespace.
	continuationMarker = regexp.MustCompile(`\s\\$|\s.$`)
)

// BlockState is the state of a continuation block scan.
type BlockState uint8

const (
	// Searching has not yet seen the "KEY =" line.
	Searching BlockState = iota
	// Collecting appends each following line to the block.
	Collecting
	// Terminated has seen the end of the block; later lines are ignored.
	Terminated
)

func (s BlockState) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Terminated:
		return "terminated"
	default:
		return "searching"
	}
}

// Block is the result of scanning for a continuation block.
type Block struct {
	// Entries are the collected lines with continuation markers removed,
	// in source order. Never nil.
	Entries []string
	// State is Searching if the key never matched, Collecting if the
	// input ended inside the block and Terminated otherwise.
	State BlockState
	// Start is the index of the "KEY =" line and End the index of the
	// line that ended the block. Both are -1 when not reached.
	Start, End int
}

// Found reports whether the block's "KEY =" line was seen.
func (b Block) Found() bool { return b.State != Searching }

// Unterminated reports whether the input ended inside the block.
func (b Block) Unterminated() bool { return b.State == Collecting }

type blockScanner struct {
	start *regexp.Regexp
	block Block
}

func newBlockScanner(key string) *blockScanner {
	return &blockScanner{
		start: assignmentPattern(key),
		block: Block{Entries: []string{}, Start: -1, End: -1},
	}
}

// step feeds line number index to the scanner.
func (s *blockScanner) step(index int, line string) {
	switch s.block.State {
	case Searching:
		if m := s.start.FindStringSubmatch(line); m != nil && hasContinuation(m[1]) {
			s.block.State = Collecting
			s.block.Start = index
		}
	case Collecting:
		if blankLine.MatchString(line) {
			s.terminate(index)
			return
		}
		s.block.Entries = append(s.block.Entries, stripContinuation(line))
		if plainEnd.MatchString(line) {
			s.terminate(index)
		}
	case Terminated:
	}
}

func (s *blockScanner) terminate(index int) {
	s.block.State = Terminated
	s.block.End = index
}

func stripContinuation(line string) string {
	return continuationMarker.ReplaceAllString(line, "")
}

// ScanBlock scans makefile for the continuation block assigned to key.
// Only a "KEY =" line whose value carries a backslash starts a block; a
// plain scalar assignment of the same key is skipped. The whole input is
// always scanned.
func ScanBlock(key, makefile string) Block {
	s := newBlockScanner(key)
	for i, line := range splitLines(makefile) {
		s.step(i, line)
	}
	return s.block
}

// ExtractMultiLine returns the entries of the continuation block assigned
// to key. The result is empty, not nil, when the key is missing or the
// block has no entries. An unterminated block yields what was collected
// before the input ended. When key has several continuation blocks the
// first one is returned, unlike ExtractSingleLine where the last
// assignment wins.
func ExtractMultiLine(key, makefile string) []string {
	return ScanBlock(key, makefile).Entries
}
