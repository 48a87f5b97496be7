package cli

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/proofpost/internal/client/api"
)

// ListStepGroups executes the ad-hoc step-groups listing and prints the raw
// response.
func (a *App) ListStepGroups(ctx context.Context) error {
	payload, err := a.workflow.ListStepGroups(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	printPayload(payload)
	return nil
}

// CreateTestItem executes the ad-hoc fixed test-item creation in the current
// project.
func (a *App) CreateTestItem(ctx context.Context) error {
	item, err := a.workflow.CreateTestItem(ctx, a.session)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn("Created test item " + item.DisplayString())
	return a.FetchItems(ctx)
}

// printPayload renders a normalized response for the user: indented JSON for
// parsed bodies, verbatim text otherwise.
func printPayload(p api.Payload) {
	switch p.Kind {
	case api.KindText:
		printlnFn(p.Text)
	case api.KindList:
		data, err := json.MarshalIndent(p.List, "", "  ")
		if err != nil {
			printlnFn(err.Error())
			return
		}
		printlnFn(string(data))
	default:
		data, err := json.MarshalIndent(p.Record, "", "  ")
		if err != nil {
			printlnFn(err.Error())
			return
		}
		printlnFn(string(data))
	}
}
