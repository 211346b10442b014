// Package kernel provides core domain primitives for the ride-hailing system.
// It implements the fundamental building blocks used throughout the domain model:
//
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Location: a geographic coordinate pair with haversine distance calculation
//   - Address: a street address bound to a location
//   - Money: a currency-aware amount with safe arithmetic
//   - Rating: a bounded score with incremental running-average updates
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
