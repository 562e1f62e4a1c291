package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/tagsync/internal/directive"
	"github.com/pkordes/tagsync/internal/domain"
	"github.com/pkordes/tagsync/internal/tagset"
)

func init() {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what reconciliation would do for a note and tag list",
		Long:  "Run date extraction, note stripping, and tag normalization locally and print the result. No service or order store is contacted.",
		Run:   runPreview,
	}

	cmd.Flags().String("note", "", "Order note text to inspect")
	cmd.Flags().String("tags", "", "Comma-separated tag list")
	cmd.Flags().String("format", string(domain.FormatDayFirst), "Canonical date tag format (DD-MM-YYYY or YYYY-MM-DD)")
	cmd.MarkFlagRequired("note")

	RootCmd.AddCommand(cmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	note, _ := cmd.Flags().GetString("note")
	tags, _ := cmd.Flags().GetString("tags")
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := domain.ParseTagFormat(formatFlag)
	if err != nil {
		exitErr("preview", err)
	}

	out := cmd.OutOrStdout()

	target, ok := directive.Extract(note)
	if !ok {
		fmt.Fprintln(out, "no directive found; nothing would change")
		return
	}

	cleaned, changed := directive.Strip(note)
	normalized := tagset.Normalize(domain.SplitTags(tags), target, format)

	fmt.Fprintf(out, "target date: %s\n", format.Render(target))
	fmt.Fprintf(out, "note changed: %t\n", changed)
	fmt.Fprintf(out, "note: %q\n", cleaned)
	fmt.Fprintf(out, "tags: %s\n", domain.JoinTags(normalized))
}
