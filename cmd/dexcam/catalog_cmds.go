package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/dexcam/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the first page of the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show the full catalog entry for a Pokémon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := current.catalog.FetchDetail(cmd.Context(), args[0])
		if entry == nil {
			return fmt.Errorf("no catalog entry for %q", args[0])
		}
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), entry)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "#%03d %s\n", entry.ID, entry.Name)
		fmt.Fprintf(out, "  types:     %s\n", strings.Join(entry.Types, ", "))
		fmt.Fprintf(out, "  abilities: %s\n", strings.Join(entry.Abilities, ", "))
		fmt.Fprintf(out, "  height:    %g\n", entry.Height)
		fmt.Fprintf(out, "  weight:    %g\n", entry.Weight)
		if entry.SpriteURL != nil {
			fmt.Fprintf(out, "  sprite:    %s\n", *entry.SpriteURL)
		}
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <id-or-name>",
	Short: "Fetch the uncached overlay lookup for a Pokémon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lookup := current.catalog.FetchBasicLookup(cmd.Context(), args[0])
		if lookup == nil {
			return fmt.Errorf("lookup failed for %q", args[0])
		}
		return writeJSON(cmd.OutOrStdout(), lookup)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the cached catalog by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := current.queries.Search(strings.Join(args, " "))
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), results)
		}
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches (run `dexcam list` to fill the cache).")
			return nil
		}
		printEntries(cmd.OutOrStdout(), results)
		return nil
	},
}

func runList(cmd *cobra.Command, args []string) error {
	entries := current.catalog.FetchList(cmd.Context())
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No Pokémon available.")
		return nil
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}

func printEntries(w io.Writer, entries []domain.CatalogEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "#%03d %-12s %s\n", e.ID, e.Name, strings.Join(e.Types, "/"))
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
