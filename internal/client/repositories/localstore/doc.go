// Package localstore is the console's persistent key/value storage, the
// terminal counterpart of browser local storage. Values live in a single
// SQLite table created by the embedded goose migrations.
//
// Get returns (nil, nil) for a missing key; Delete and Clear are idempotent.
// Repositories accept a dbx.DBTX so the same code runs on a *sql.DB or
// inside dbx.WithTx.
package localstore
