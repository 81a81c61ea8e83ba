package cli

import (
	"os"

	router "travelplanner/internal/http"
	"travelplanner/internal/openapi"

	"github.com/spf13/cobra"
)

var (
	openapiFormat string
	openapiOut    string
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Write the API description (JSON or YAML)",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := openapi.Encode(router.OpenAPIDocument(), openapiFormat)
		if err != nil {
			return err
		}
		if openapiOut == "" || openapiOut == "-" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		return os.WriteFile(openapiOut, out, 0o644)
	},
}

func init() {
	openapiCmd.Flags().StringVarP(&openapiFormat, "format", "f", "json", "Output format: json or yaml")
	openapiCmd.Flags().StringVarP(&openapiOut, "output", "o", "", "Output file (default stdout)")
}
