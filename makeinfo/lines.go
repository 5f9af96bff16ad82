package makeinfo

import "regexp"

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// splitLines splits text on any of \r\n, \r or \n.
func splitLines(text string) []string {
	return lineBreak.Split(text, -1)
}
