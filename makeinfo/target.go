package makeinfo

import "regexp"

// halMspFile matches <family>x_hal_msp.c, optionally behind a directory,
// and captures the family including its trailing x characters.
var halMspFile = regexp.MustCompile(`(?i)^(?:.*[/\\])?([^/\\]*x)_hal_msp\.c$`)

// TargetMCU derives the MCU family from C source files:
// Src/stm32h7xx_hal_msp.c yields stm32h7xx. When several files match the
// last one wins. It returns "" and false when none matches.
func TargetMCU(cSources []string) (string, bool) {
	family, found := "", false
	for _, name := range cSources {
		if m := halMspFile.FindStringSubmatch(name); m != nil {
			family, found = m[1], true
		}
	}
	return family, found
}
