// Package cli provides the interactive proofpost command-line client.
//
// It wires configuration, the API gateway, and the workflow session into a
// REPL that walks the user through the review flow: pick a project, load or
// create an item, find and upload a local file, post an annotated comment.
//
// Commands:
//   - project [id]   — select (or list) project ids; triggers an item fetch
//   - items          — refetch and list items for the current project
//   - create <jobID> — create a new item named jobID (always creates)
//   - ensure <jobID> — check-then-create variant
//   - select <sel>   — select an item by "<id>: <name>" string or bare id
//   - match          — find files whose stem equals the selected item's name
//   - upload <path>  — read a local file and upload it
//   - uuid [value]   — show or override the pending upload handle
//   - post           — prompt for comment text and post
//   - steps          — ad-hoc: list step groups
//   - testitem       — ad-hoc: create the fixed test item
//   - status         — show session state
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Each command handler prints its own errors; one failed step never ends the
// session, the user simply re-triggers it.
package cli
