package makeinfo

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// floatABIKey is the one Makefile key written with a hyphen.
const floatABIKey = "float-abi"

// MakefileKey transcodes a camel-case field identifier to the key
// spelling used in the Makefile: cSources becomes c_sources, targetMCU
// becomes target_mcu. floatAbi is the exception and becomes float-abi.
func MakefileKey(field string) string {
	key := strings.ReplaceAll(strcase.ToKebab(field), "-", "_")
	if key == "float_abi" {
		return floatABIKey
	}
	return key
}
