// Package cli implements the interactive shell of repeatermap: a small
// REPL over the session store and the repeater registry. It is view glue;
// all rules live in the services.
package cli
