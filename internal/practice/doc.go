// Package practice groups questions by topic and derives per-user progress from answer counters.
//
// Every topic comparison goes through Resolve. Raw topic values are never compared directly.
package practice
