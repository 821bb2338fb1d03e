// Package order models a customer's order within a round.
//
// The package includes:
//   - Order: the aggregate root (customer, round, source, comment, paid and picked-up flags)
//   - Item: an order line holding a quantity and a frozen copy of the product's prices
//   - Source: the channel an order came in through
//
// Key business rules:
//   - an item copies the product's sell and buy price when it is created and
//     never reads them from the product again
//   - changing a quantity never refreshes the copied prices
//   - a quantity that is not positive removes the line
//   - an order without items must not be persisted (see Order.IsEmpty)
package order
