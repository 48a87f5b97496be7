package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// MatchFiles searches the configured directory for files whose stem equals
// the selected item's name. A single candidate is uploaded right away (the
// command itself is the explicit trigger); several candidates are listed for
// an explicit numbered choice, never guessed.
func (a *App) MatchFiles(ctx context.Context) error {
	matches, err := a.workflow.LocateForItem(ctx, a.session)
	if err != nil {
		a.printError(err)
		return err
	}

	if len(matches) == 0 {
		printlnFn(fmt.Sprintf("No files matching %q in %s; use upload <path>.",
			a.session.SelectedItemName(), a.config.FilesDir))
		return nil
	}

	if len(matches) == 1 {
		return a.uploadPath(ctx, a.workflow.Locator().Path(matches[0]))
	}

	printlnFn("Matching files:")
	for i, name := range matches {
		printlnFn(fmt.Sprintf("  %d) %s", i+1, name))
	}
	choice, err := GetSimpleText(a.reader, "Enter number to upload (empty to cancel)", os.Stdout)
	if err != nil {
		a.printError(err)
		return err
	}
	if choice == "" {
		return nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(matches) {
		printlnFn("Invalid choice: " + choice)
		return nil
	}

	return a.uploadPath(ctx, a.workflow.Locator().Path(matches[n-1]))
}

// Upload reads a local file given by path and uploads it.
func (a *App) Upload(ctx context.Context, path string) error {
	if path == "" {
		printlnFn("Usage: upload <path>")
		return nil
	}
	return a.uploadPath(ctx, path)
}

func (a *App) uploadPath(ctx context.Context, path string) error {
	uploaded, err := a.workflow.UploadFile(ctx, a.session, path)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Uploaded %s (%d bytes), handle %s",
		uploaded.Name, uploaded.SizeBytes, uploaded.UUID))
	return nil
}

// SetUUID shows or overrides the pending upload handle. The override is
// accepted even when it is not a canonical UUID, the token is opaque to us,
// but the user is warned since a typo here silently breaks the next post.
func (a *App) SetUUID(ctx context.Context, value string) error {
	if value == "" {
		if a.session.UploadedUUID == "" {
			printlnFn("No upload handle set.")
		} else {
			printlnFn("Upload handle: " + a.session.UploadedUUID)
		}
		return nil
	}

	if _, err := uuid.Parse(value); err != nil {
		printlnFn("Warning: value is not a canonical UUID, using it anyway.")
	}
	a.session.SetUploadUUID(value)
	printlnFn("Upload handle set to " + value)
	return nil
}
