package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"airbnb-dashboard/models"
	"airbnb-dashboard/services"
)

var (
	reportGroups         []string
	reportNeighbourhoods []string
	reportRoomTypes      []string
	reportNeighbourhood  string
	reportRoomType       string
	reportNights         int
	reportNoColor        bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard views to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		listings, err := loadListings(cmd.Context())
		if err != nil {
			return err
		}
		dash := newDashboard(listings)

		params := dash.DefaultFilter()
		f := cmd.Flags()
		if f.Changed("group") {
			params.NeighbourhoodGroups = reportGroups
		}
		if f.Changed("neighbourhood") {
			params.Neighbourhoods = reportNeighbourhoods
		}
		if f.Changed("room-type") {
			params.RoomTypes = reportRoomTypes
		}

		var est *models.EstimatorView
		if reportNights != 0 || reportNeighbourhood != "" || reportRoomType != "" {
			nights := reportNights
			if nights == 0 {
				nights = 1
			}
			est, err = dash.Estimator(reportNeighbourhood, reportRoomType, nights)
			if err != nil {
				return err
			}
		}

		printer := services.NewReportPrinter(os.Stdout, dash.Money(), !reportNoColor)
		printer.Print(dash.Summary(), dash.Explorer(params), dash.Insights(params), est)
		return nil
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringSliceVar(&reportGroups, "group", nil, "neighbourhood groups to keep (default all)")
	f.StringSliceVar(&reportNeighbourhoods, "neighbourhood", nil, "neighbourhoods to keep (default all)")
	f.StringSliceVar(&reportRoomTypes, "room-type", nil, "room types to keep (default all)")
	f.StringVar(&reportNeighbourhood, "estimate-neighbourhood", "", "neighbourhood for the price estimate")
	f.StringVar(&reportRoomType, "estimate-room-type", "", "room type for the price estimate")
	f.IntVar(&reportNights, "nights", 0, "nights for the price estimate")
	f.BoolVar(&reportNoColor, "no-color", false, "disable ANSI colors")
	rootCmd.AddCommand(reportCmd)
}
