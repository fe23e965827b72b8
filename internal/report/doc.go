// Package report composes the text results returned by the time tools.
//
// Builder pulls the current instant from the time source, resolves the
// requested location, and renders the fixed-order report blocks. Network
// failures never surface as errors here; they degrade to notices inside
// the text. The only errors returned are usage faults in the distance
// calculation (unparseable endpoints, identical endpoints, unknown unit).
package report
