// Package logx configures ddeventwrap's structured diagnostics.
//
// The tool's user-facing output (event printouts, usage text) goes to stdout
// as plain text. Everything else goes through a small wrapper (logx.Logger)
// on top of zerolog that keeps:
//   - Console output readable (short timestamp + short caller) on stderr
//   - Optional file output JSON-structured
package logx
