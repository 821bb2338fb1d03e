// Package kernel holds the value types shared by every aggregate of the
// meatmanager domain: identifiers and the lenient decimal parsing used for
// quantities, prices and distances typed in by staff.
package kernel
