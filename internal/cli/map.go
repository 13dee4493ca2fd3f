package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/junioryono/beca"
	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/mapper"
)

func mapCmd(a *app) *cobra.Command {
	var (
		payloadFile string
		template    string
	)

	cmd := &cobra.Command{
		Use:   "map [mappingID]",
		Short: "Render a mapping against a JSON payload",
		Long: "Render the template of a stored mapping against a JSON payload.\n" +
			"With --template the given template is rendered instead and no database is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 0) == (template == "") {
				return fmt.Errorf("give either a mapping id or --template")
			}

			payload, err := readPayload(payloadFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if template != "" {
				return render(cmd.OutOrStdout(), mapper.New(), template, payload)
			}

			return a.withDependencies(cmd.Context(), func(deps *beca.Dependencies) error {
				r := deps.Select(beca.MappingsService, beca.MapperService)

				mapping, err := r.MappingsService().GetByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if mapping == nil {
					return fmt.Errorf("mapping %q: %w", args[0], ErrNotFound)
				}
				return render(cmd.OutOrStdout(), r.Mapper(), mapping.Template, payload)
			})
		},
	}

	cmd.Flags().StringVarP(&payloadFile, "file", "f", "-", "JSON payload, - for stdin")
	cmd.Flags().StringVarP(&template, "template", "t", "", "Template to render instead of a stored mapping")
	return cmd
}

func readPayload(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fault.Tag(fault.SourceFormat, err)
		}
		return data, nil
	}
	return os.ReadFile(path)
}

func render(w io.Writer, fn mapper.Func, template string, payload []byte) error {
	out, err := fn(template, payload)
	if err != nil {
		return err
	}
	writeLine(w, "%s", out)
	return nil
}
