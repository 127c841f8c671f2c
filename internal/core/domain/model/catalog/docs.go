// Package catalog provides domain entities and business logic for the item
// catalog in the shop system. It implements the Catalog aggregate root and the
// Item entity with a strict command/fact separation.
//
// The package includes:
//   - Catalog: The aggregate root that owns the item entity store
//   - Item: A purchasable entry with name, price, description and stock
//   - Typed facts: Immutable records produced by validated commands
//
// Key business rules:
//   - Item names must not be blank, prices must be positive, stock non-negative
//   - Creating an item with an id already in use fails
//   - Deleting an item cascades into every order cart referencing it
//     (executed by the order book, which consumes the ItemDeleted fact)
//   - State mutates only through Apply; replay never re-validates
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package catalog
