package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveItemID accepts a full item UUID or an unambiguous prefix of one.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Items.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, it := range items {
		if it.ID() == input {
			return it.ID(), nil
		}
		if strings.HasPrefix(it.ID(), input) {
			matches = append(matches, it.ID())
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
