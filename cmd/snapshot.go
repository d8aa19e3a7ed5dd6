package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"airbnb-dashboard/snapshot"
)

var (
	snapshotBaseURL string
	snapshotGroups  []string
	snapshotViews   []string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save PNG screenshots of a running dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		for _, g := range snapshotGroups {
			q.Add("group", g)
		}

		capturer := snapshot.New(cfg, logger, snapshotBaseURL, q.Encode())
		paths, err := capturer.Capture(cmd.Context(), snapshotViews)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVar(&snapshotBaseURL, "url", "http://localhost:8501", "base URL of the running dashboard")
	f.StringSliceVar(&snapshotGroups, "group", nil, "neighbourhood groups to select before capturing")
	f.StringSliceVar(&snapshotViews, "views", snapshot.Views, "views to capture")
	rootCmd.AddCommand(snapshotCmd)
}
