package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/dexcam/internal/adapter"
	"github.com/mmcdole/dexcam/internal/capture"
)

var (
	flagCaptureID      int
	flagCaptureName    string
	flagCaptureGallery bool
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Take a photo and record it against a Pokémon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		screen := current.newScreen(writerNotifier{out}, galleryPrinter{out})

		if screen.Mount(cmd.Context()) != capture.StateReady {
			return fmt.Errorf("no access to camera")
		}

		name := flagCaptureName
		if flagCaptureID != 0 && name == "" {
			if entry := current.catalog.FetchDetail(cmd.Context(), strconv.Itoa(flagCaptureID)); entry != nil {
				name = entry.Name
			}
		}
		if screen.Select(flagCaptureID, name) {
			screen.RefreshOverlay(cmd.Context())
		}

		rec, err := screen.Capture(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			if err := writeJSON(out, rec); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "saved %s\n", rec.PhotoURI)
		}
		if flagCaptureGallery {
			return screen.OpenGallery()
		}
		return nil
	},
}

var capturesCmd = &cobra.Command{
	Use:   "captures",
	Short: "List recorded captures (the gallery)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := current.captures.List()
		if err != nil {
			return err
		}
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), records)
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No captures yet.")
			return nil
		}
		for _, r := range records {
			when := time.UnixMilli(r.Timestamp).Format(time.RFC3339)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  #%03d %-12s %s\n", when, r.ID, r.Name, r.PhotoURI)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default config file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"skipApp": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := adapter.SaveConfig(adapter.DefaultConfig())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"skipApp": "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dexcam %s\n", Version)
	},
}

func init() {
	captureCmd.Flags().IntVar(&flagCaptureID, "id", 0, "catalog id to record the capture against")
	captureCmd.Flags().StringVar(&flagCaptureName, "name", "", "display name (looked up from the catalog when omitted)")
	captureCmd.Flags().BoolVar(&flagCaptureGallery, "gallery", false, "show the gallery after capturing")
}

// writerNotifier prints capture notices
type writerNotifier struct{ w io.Writer }

func (n writerNotifier) Notify(title, message string) {
	fmt.Fprintf(n.w, "%s %s\n", title, message)
}

// galleryPrinter treats the gallery route as "print the capture list"
type galleryPrinter struct{ w io.Writer }

func (g galleryPrinter) Navigate(route string) error {
	if route != capture.RouteGallery {
		return fmt.Errorf("unknown route: %s", route)
	}
	records, err := current.captures.List()
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Fprintf(g.w, "#%03d %s %s\n", r.ID, r.Name, r.PhotoURI)
	}
	return nil
}
