package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the built-in board variants",
	Long:  `Shows every board variant that can be passed to --variant.`,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, v.ID, maxTitleLen, v.Title, v.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'connectx new <save> --variant <id>' to start a game.")
}
