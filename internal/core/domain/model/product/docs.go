// Package product models the goods staff sell by weight or piece.
//
// A product carries the current sell and buy price. Order items copy both
// prices when they are created (see the order package), so editing a price
// here never rewrites the history of past rounds.
package product
