// Package round models a delivery cycle: a date, the kilometres driven for it
// and whether it is the round staff are currently working on.
//
// At most one round is active at a time. The aggregate only flips its own
// flag; the repository enforces the "single active round" rule across rows
// inside one transaction.
package round
