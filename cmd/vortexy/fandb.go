package main

import (
	"fmt"
	"os"

	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/fandb"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/spf13/cobra"
)

var (
	fandbOutput string
	queryFilter fandb.Filter
	querySort   string
)

func newFanDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fandb",
		Short: "Build and query the fan specification database",
	}

	buildCmd := &cobra.Command{
		Use:   "build [fan_data_base.xlsx]",
		Short: "Convert the fan specification table to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runFanDBBuild,
	}
	buildCmd.Flags().StringVarP(&fandbOutput, "output", "o", "fans_database.json", "Output file path")

	queryCmd := &cobra.Command{
		Use:   "query [fans_database.json]",
		Short: "Filter and sort fan database records",
		Args:  cobra.ExactArgs(1),
		RunE:  runFanDBQuery,
	}
	flags := queryCmd.Flags()
	flags.Float64SliceVar(&queryFilter.Thickness, "thickness", nil, "Thickness values to include (mm)")
	flags.StringSliceVar(&queryFilter.Bearing, "bearing", nil, "Bearing types to include")
	flags.Float64SliceVar(&queryFilter.Size, "size", nil, "Sizes to include (mm)")
	flags.StringSliceVar(&queryFilter.Brand, "brand", nil, "Brands to include")
	flags.StringVar(&queryFilter.Search, "search", "", "Case-insensitive name substring")
	flags.StringVar(&querySort, "sort", "name-asc", "Sort order: name|thickness|size|brand with -asc or -desc")

	cmd.AddCommand(buildCmd, queryCmd)
	return cmd
}

func runFanDBBuild(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	_, err = vortexy.BuildFanDatabase(args[0], fandbOutput, opts)
	return err
}

func runFanDBQuery(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	order, err := fandb.ParseOrder(querySort)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fan database: %w", err)
	}
	db, err := output.ParseFanDatabase(data)
	if err != nil {
		return err
	}

	specs := fandb.Sort(queryFilter.Apply(db.Fans), order)
	log.WithField("matches", len(specs)).Debug("Filtered fan database")

	result := &models.FanDatabase{
		Fans: specs,
		Metadata: models.FanDatabaseMetadata{
			Total:       len(specs),
			LastUpdated: db.Metadata.LastUpdated,
		},
	}
	jsonData, err := output.FanDatabaseToJSON(result, opts.Pretty)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(jsonData)
	return err
}
