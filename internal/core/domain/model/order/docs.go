// Package order contains the Order aggregate and its lifecycle model.
//
// An order is created already bound to the seller chosen by the assignment
// flow; the binding is immutable for the rest of the order's life. From that
// point the aggregate only changes through status transitions, which are
// validated against a fixed table and gated by the role of the acting
// identity (the owning buyer or the assigned seller).
package order
