// Package logx is a small structured-logging facade on top of zerolog.
//
// The zero value of Logger is a safe no-op, so library types can hold a
// Logger without forcing a logging setup on callers. Construct a real one
// with NewConsole (human-readable) or NewWriter (JSON lines, handy in
// tests), and attach fixed fields with With.
package logx
