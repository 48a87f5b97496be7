package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	SelectProject(ctx context.Context, id string) error
	FetchItems(ctx context.Context) error
	CreateItem(ctx context.Context, jobID string) error
	EnsureItem(ctx context.Context, jobID string) error
	SelectItem(ctx context.Context, selection string) error
	MatchFiles(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	SetUUID(ctx context.Context, value string) error
	PostComment(ctx context.Context) error
	ListStepGroups(ctx context.Context) error
	CreateTestItem(ctx context.Context) error
	Status(ctx context.Context) error
}

const helpText = `Available commands:
  project [id]   select (or list) project ids
  items          refetch and list items
  create <jobID> create a new item
  ensure <jobID> select the item named jobID, creating it if missing
  select <sel>   select an item ("<id>: <name>" or bare id)
  match          find files matching the selected item's name
  upload <path>  upload a local file
  uuid [value]   show or override the upload handle
  post           post a comment with the pending upload
  steps          list step groups
  testitem       create the fixed test item
  status         show session state
  exit | quit    leave the program`

// runREPL starts a simple read–eval–print loop for the proofpost CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command and keeps the remainder verbatim as the argument (selections like
// "12345: Report A" contain spaces). Unknown commands are reported back to
// the user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pp %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if err != nil {
				return
			}
			continue
		}

		cmd, arg, _ := strings.Cut(trimmed, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "project":
			_ = a.SelectProject(ctx, arg)

		case "l", "list", "items":
			_ = a.FetchItems(ctx)

		case "create":
			_ = a.CreateItem(ctx, arg)

		case "ensure":
			_ = a.EnsureItem(ctx, arg)

		case "select":
			_ = a.SelectItem(ctx, arg)

		case "match":
			_ = a.MatchFiles(ctx)

		case "upload":
			_ = a.Upload(ctx, arg)

		case "uuid":
			_ = a.SetUUID(ctx, arg)

		case "post":
			_ = a.PostComment(ctx)

		case "steps":
			_ = a.ListStepGroups(ctx)

		case "testitem":
			_ = a.CreateTestItem(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
