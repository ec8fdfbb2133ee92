// Package services implements the core of the repeater registry: the
// session store (login/register/logout), the repeater registry
// (add/update/delete/search) and the append-only audit log. All three
// share one key-value substrate; every collection is read and written as
// a whole JSON blob under its key.
//
// Operations are synchronous read-modify-write with no locking: one
// writer per process is assumed, and concurrent writers from other
// processes follow last-write-wins with no merge.
package services
