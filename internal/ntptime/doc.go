// Package ntptime provides the time source for all report tools.
//
// It wraps a single bounded NTP query with a local-clock fallback: the
// returned Result always carries a usable UTC instant, and FromNTP tells
// downstream formatters whether to append the fallback notice. The client
// never retries and never returns an error.
package ntptime
