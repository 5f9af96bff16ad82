package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

const testMakefile = `TARGET = blinky
CPU = -mcpu=cortex-m4
FPU = -mfpu=fpv4-sp-d16
FLOAT-ABI = -mfloat-abi=hard
LDSCRIPT = STM32F407VGTx_FLASH.ld
OPT = -Og

C_SOURCES =  \
Src/main.c \
Src/stm32f4xx_it.c \
Src/stm32f4xx_hal_msp.c

C_DEFS =  \
-DUSE_HAL_DRIVER \
-DSTM32F407xx

`

func testEnv(t *testing.T, cfg Config) (*runtimeEnv, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &runtimeEnv{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		out:    &out,
	}, &out
}

// writeMakefile writes content to dir/Makefile and returns its path.
func writeMakefile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write Makefile: %v", err)
	}
	return path
}
