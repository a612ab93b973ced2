package metrics

import "fmt"

// UnsupportedUnitError reports a length value whose unit suffix is outside
// the supported set (px, pt, em, rem). It is fatal: no internal fallback
// recovers it.
type UnsupportedUnitError struct {
	Unit  string
	Value string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("textmeter: unsupported unit %q in length %q", e.Unit, e.Value)
}

// MissingCapabilityError reports that a host capability (provider, style
// source, text source) was not configured. It surfaces at the point of first
// use, not at construction.
type MissingCapabilityError struct {
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("textmeter: no %s configured", e.Capability)
}

// DidNotConvergeError reports that the font size search exhausted its probe
// budget without settling, which only happens when the width function is not
// monotonic in the font size.
type DidNotConvergeError struct {
	Probes int
}

func (e *DidNotConvergeError) Error() string {
	return fmt.Sprintf("textmeter: font size search did not converge after %d probes", e.Probes)
}
