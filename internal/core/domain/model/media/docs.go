// Package media holds the append-only photo records that document package
// handling stages. Records reference object-storage keys; photo bytes are
// never stored in the database. Departure and arrival records serve as the
// evidence the lifecycle gates check before the Shipped and HandedOut
// transitions.
package media
