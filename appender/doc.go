// Package appender provides the Appender interface and its built-in
// destinations.
//
// Every appender embeds Base, which holds an optional formatter and an
// ordered list of filters. A record is written only when all filters pass
// it. Appenders without a formatter receive the logger's default formatter
// when they are attached.
//
// Built-in appenders:
//
//   - Console writes formatted lines to any io.Writer (default: stdout).
//   - ColoredConsole wraps each line in ANSI color codes, either a fixed
//     color or one per level.
//   - File appends lines to a file opened at construction.
//   - SQLite and MySQL insert one row per record into a "logs" table,
//     connecting and creating the schema on first use.
//   - Composite forwards each record to child appenders in order. A
//     failing child does not stop the others.
//
// Appenders count processed, filtered and failed records in a Stats value.
package appender
