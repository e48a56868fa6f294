// Package filter provides predicates that gate which records reach an
// appender. An appender writes a record only when all of its filters pass;
// filters are evaluated in the order they were added and evaluation stops
// at the first rejection.
package filter
