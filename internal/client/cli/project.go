package cli

import (
	"context"
	"fmt"
)

// SelectProject sets the active project and loads its items. Without an
// argument the configured project ids are listed instead. Ids outside the
// configured set are accepted as-is; the service is the authority on whether
// they exist.
func (a *App) SelectProject(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Configured projects:")
		for _, p := range a.config.Projects {
			printlnFn("  " + p)
		}
		return nil
	}

	a.session.SelectProject(id)
	return a.FetchItems(ctx)
}

// FetchItems reloads and lists the current project's items. A pending
// post-create refresh is announced once it lands.
func (a *App) FetchItems(ctx context.Context) error {
	if a.session.ProjectID == "" {
		printlnFn("Select a project first (project <id>).")
		return nil
	}

	wasPending := a.session.RefreshPending
	items, err := a.workflow.FetchItems(ctx, a.session)
	if err != nil {
		a.printError(err)
		return err
	}
	if wasPending {
		printlnFn("Item list refreshed.")
	}

	if len(items) == 0 {
		printlnFn("No items found.")
		return nil
	}
	for _, it := range items {
		printlnFn("  " + it.DisplayString())
	}
	return nil
}

// Status prints the session state.
func (a *App) Status(ctx context.Context) error {
	s := a.session
	printlnFn("Stage:   " + s.Stage().String())
	printlnFn("Project: " + orDash(s.ProjectID))
	printlnFn(fmt.Sprintf("Items:   %d cached", len(s.Items)))
	printlnFn("Item:    " + orDash(s.SelectedItemID))
	printlnFn("Upload:  " + orDash(s.UploadedUUID))
	if s.RefreshPending {
		printlnFn("Refresh pending (run 'items')")
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
