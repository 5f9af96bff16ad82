/*
Package makeinfo extracts structured build configuration from the flat
Makefiles generated by STM32CubeMX.

Only the assignment subset those Makefiles use is understood:

	CPU = -mcpu=cortex-m7
	FLOAT-ABI = -mfloat-abi=hard

	C_SOURCES =  \
	Core/Src/main.c \
	Core/Src/stm32h7xx_it.c \
	Core/Src/stm32h7xx_hal_msp.c

A field is looked up by its camel-case identifier (cSources), which is
transcoded to the on-disk key spelling (c_sources). Whether a field ends
up a scalar or a list is decided from the matched text: a value carrying
a backslash is re-read as a continuation block.

The MCU family (targetMCU) is never read from the Makefile. It is derived
from the *_hal_msp.c file listed in C_SOURCES.

All functions are pure. Extract takes a schema of defaults and the raw
text and returns a new, populated schema; it does not touch its input and
keeps no state between calls, so concurrent use needs no coordination.
*/
package makeinfo
