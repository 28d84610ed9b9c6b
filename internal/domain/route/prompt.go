package route

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the driver-facing summary of r.
func BuildPrompt(origin, destination string, r Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As a driver going from %s to %s, here are important points along your route:\n", origin, destination)

	for _, leg := range r.Legs {
		fmt.Fprintf(&b, "\nTotal distance: %s\nEstimated duration: %s\n", leg.Distance, leg.Duration.String())
		for _, step := range leg.Steps {
			if step.Instructions == "" {
				continue
			}
			fmt.Fprintf(&b, "- %s\n", step.Instructions)
		}
	}

	return b.String()
}
