// Package pioasm implements the pre-build hook that compiles PIO source
// assets into generated C headers.
//
// For each configured rule the hook lists the rule's source directory once,
// and for every entry whose name ends with the source suffix runs the
// external assembler synchronously:
//
//	pioasm -o c-header <dir>/pwm.pio <dir>/pwm.pio.h
//
// Every match is recompiled on every run. Assembler failures are logged and
// recorded but never stop the loop; only a failure to list the directory is
// returned as an error.
package pioasm
