/*
Mkinfo reads the Makefile generated by STM32CubeMX and prints the build
configuration it describes: target name, CPU, FPU and float-abi flags,
source lists, definitions, include paths, linker script and the MCU
family derived from the *_hal_msp.c source.

The output is meant for tools configuring a debugger or build invoker,
so it is available as JSON, YAML and HCL.

# Commands

  - extract: print every field. Flags: --format json|yaml|hcl,
    --fields cpu,cSources to restrict the output, --strict to fail on an
    unterminated continuation block.
  - get <field>: print one field, a list one entry per line. Any camel
    case identifier works: "get buildDir" reads BUILD_DIR.
  - target: print the MCU family, e.g. stm32h7xx.
  - fields: list the known fields with their Makefile keys.

Each command takes an optional Makefile location. A directory is
completed with "Makefile"; $VAR, ${VAR} and $cwd are expanded.

Usage examples:

	mkinfo extract --format yaml ./firmware
	mkinfo get cSources
	mkinfo target $HOME/projects/blinky/Makefile

# Configuration

An optional mkinfo.yaml in the working directory (or the file given with
--config) sets defaults. Flags take precedence.

	makefile: ./firmware/Makefile
	format: json
	strict: false
	log:
	  level: info
	  format: text

# Exit status

0 on success, 2 when the Makefile cannot be read, 3 for an invalid
configuration file, 4 for an unterminated block in strict mode and 1 for
anything else.

The parsing itself lives in package makeinfo and has no I/O.
*/
package main
