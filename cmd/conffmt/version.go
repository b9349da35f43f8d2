package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"conffmt/internal/version"
)

var (
	versionJSON    bool
	versionHash    bool
	versionMessage bool
	versionDate    bool
	versionFull    bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			out := struct {
				Version    string `json:"version"`
				GitCommit  string `json:"git_commit,omitempty"`
				GitMessage string `json:"git_message,omitempty"`
				BuildDate  string `json:"build_date,omitempty"`
			}{
				Version:    version.Plain(),
				GitCommit:  version.GitCommit,
				GitMessage: version.GitMessage,
				BuildDate:  version.BuildDate,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "conffmt %s\n", version.Version)
		if (versionHash || versionFull) && version.GitCommit != "" {
			fmt.Fprintf(w, "commit: %s\n", version.GitCommit)
		}
		if (versionMessage || versionFull) && version.GitMessage != "" {
			fmt.Fprintf(w, "message: %s\n", version.GitMessage)
		}
		if (versionDate || versionFull) && version.BuildDate != "" {
			fmt.Fprintf(w, "built: %s\n", version.BuildDate)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print version info as JSON")
	versionCmd.Flags().BoolVar(&versionHash, "hash", false, "include the git commit hash")
	versionCmd.Flags().BoolVar(&versionMessage, "message", false, "include the git commit message")
	versionCmd.Flags().BoolVar(&versionDate, "date", false, "include the build date")
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "include all build details")
}
