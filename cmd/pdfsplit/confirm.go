package main

import (
	"bufio"
	"fmt"
	"strings"
)

// confirmFiles asks the user about each candidate and returns the accepted
// ones. Anything other than "y" or "yes" declines, including EOF.
func confirmFiles(candidates []string, deps *Dependencies) []string {
	if len(candidates) == 0 {
		return nil
	}

	reader := bufio.NewReader(deps.Stdin)
	var accepted []string
	for _, path := range candidates {
		fmt.Fprintf(deps.Stdout, "Process %s? (y/N): ", path)
		line, err := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "y" || answer == "yes" {
			accepted = append(accepted, path)
		}
		if err != nil {
			break
		}
	}
	return accepted
}
