// Package services holds domain logic that spans aggregates.
//
// The package includes:
//   - ProfitCalculator: turns a round's revenue, cost and driven kilometres into its profit
package services
