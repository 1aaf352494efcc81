// Package repository implements data access for daypact entities.
//
// Each repository wraps the database.Database interface and translates
// between SurrealDB's wire representation (record IDs, CBOR datetimes,
// response wrappers) and the domain models. Repositories never apply business
// rules; they expose exactly the operations the service layer needs,
// including the conditional single-statement writes the concurrency model
// relies on (append-if-absent on challenge rosters, update-if-owner on
// projects, unique-index backed check-in creation).
//
// References between entities are stored as SurrealDB record links, which
// lets read projections resolve display fields (creator.username,
// challenge.title) in a single query.
package repository
