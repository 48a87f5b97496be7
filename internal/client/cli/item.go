package cli

import (
	"context"
	"strings"
)

// ParseSelection extracts the item id from a display string such as
// "12345: Report A": the content before the first colon, trimmed. A bare id
// without a colon is returned as-is.
func ParseSelection(s string) string {
	id, _, _ := strings.Cut(s, ":")
	return strings.TrimSpace(id)
}

// CreateItem creates a new item named jobID and refreshes the item list so
// the new item becomes visible. Creation is never deduplicated; running it
// twice with the same jobID yields two items sharing a name.
func (a *App) CreateItem(ctx context.Context, jobID string) error {
	if jobID == "" {
		printlnFn("Usage: create <jobID>")
		return nil
	}

	item, err := a.workflow.CreateItem(ctx, a.session, jobID)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn("Created item " + item.DisplayString())

	return a.FetchItems(ctx)
}

// EnsureItem selects the cached item named jobID, creating it only when no
// match exists.
func (a *App) EnsureItem(ctx context.Context, jobID string) error {
	if jobID == "" {
		printlnFn("Usage: ensure <jobID>")
		return nil
	}

	item, err := a.workflow.EnsureItem(ctx, a.session, jobID)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn("Selected item " + item.DisplayString())

	if a.session.RefreshPending {
		return a.FetchItems(ctx)
	}
	return nil
}

// SelectItem selects an item by its display string or bare id.
func (a *App) SelectItem(ctx context.Context, selection string) error {
	if selection == "" {
		printlnFn("Usage: select <id> (or the \"<id>: <name>\" line shown by 'items')")
		return nil
	}

	id := ParseSelection(selection)
	if err := a.session.SelectItem(id); err != nil {
		a.printError(err)
		return err
	}
	printlnFn("Selected item " + id)
	return nil
}
