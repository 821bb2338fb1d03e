// Package customer models the people who place orders. Customers are edited
// by staff and deactivated rather than deleted.
package customer
