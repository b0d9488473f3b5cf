// Package cli provides the command-line interface for the statsguru application.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/law-makers/statsguru/internal/app"
)

// ctxKey is used for storing the application in cobra command contexts
type ctxKey string

const appKey ctxKey = "app"

// SetApp stores the Application in the command's context
func SetApp(cmd *cobra.Command, a *app.Application) {
	if cmd == nil {
		return
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey, a))
}

// GetAppFromCmd retrieves the Application from the command's context
func GetAppFromCmd(cmd *cobra.Command) *app.Application {
	if cmd == nil || cmd.Context() == nil {
		return nil
	}
	a, _ := cmd.Context().Value(appKey).(*app.Application)
	return a
}
