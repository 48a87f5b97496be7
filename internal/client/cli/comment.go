package cli

import (
	"context"
	"os"
)

// PostComment prompts for comment text and posts it to the selected item
// with the pending upload handle attached. Empty text posts the attachment
// alone.
func (a *App) PostComment(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Enter comment text (double Enter to finish):", os.Stdout)
	if err != nil {
		a.printError(err)
		return err
	}

	payload, err := a.workflow.PostComment(ctx, a.session, text)
	if err != nil {
		a.printError(err)
		return err
	}

	printlnFn("Comment posted.")
	printPayload(payload)
	return nil
}
