// Package location resolves tool location parameters (explicit timezone,
// city, country) into a concrete timezone.
//
// The result is a tagged union: no location, a fixed UTC offset, or a
// named IANA zone. Resolution failures degrade to a warning embedded in
// the result; no error crosses this package's boundary.
package location
