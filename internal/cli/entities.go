package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/junioryono/beca"
	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/record"
	"github.com/junioryono/beca/service"
)

// ErrNotFound is returned by get when no record has the given id.
var ErrNotFound = errors.New("not found")

// entity describes one entity command. Read-only entities have no insert.
type entity struct {
	name     string
	resource beca.ResourceName
	format   fault.Kind
	writable bool
}

var (
	sourcesEntity   = entity{name: "sources", resource: beca.SourcesService, format: fault.SourceFormat, writable: true}
	targetsEntity   = entity{name: "targets", resource: beca.TargetsService, format: fault.TargetFormat, writable: true}
	responsesEntity = entity{name: "responses", resource: beca.ResponsesService, format: fault.ResponseFormat, writable: true}
	mappingsEntity  = entity{name: "mappings", resource: beca.MappingsService, format: fault.MappingFormat}
)

func entityCmd(a *app, e entity) *cobra.Command {
	switch e.resource {
	case beca.SourcesService:
		return newEntityCmd[record.Source](a, e)
	case beca.TargetsService:
		return newEntityCmd[record.Target](a, e)
	case beca.ResponsesService:
		return newEntityCmd[record.Response](a, e)
	default:
		return newEntityCmd[record.Mapping](a, e)
	}
}

func newEntityCmd[T any](a *app, e entity) *cobra.Command {
	c := &cobra.Command{
		Use:   e.name,
		Short: fmt.Sprintf("Read %s", e.name),
	}

	c.AddCommand(entityListCmd[T](a, e), entityGetCmd[T](a, e))
	if e.writable {
		c.Short = fmt.Sprintf("Read and insert %s", e.name)
		c.AddCommand(entityInsertCmd[T](a, e))
	}
	return c
}

func entityListCmd[T any](a *app, e entity) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List every record in %s", e.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDependencies(cmd.Context(), func(deps *beca.Dependencies) error {
				svc, err := reader[T](deps, e)
				if err != nil {
					return err
				}

				docs, err := svc.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), docs)
			})
		},
	}
}

func entityGetCmd[T any](a *app, e entity) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Print one record of %s", e.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDependencies(cmd.Context(), func(deps *beca.Dependencies) error {
				svc, err := reader[T](deps, e)
				if err != nil {
					return err
				}

				doc, err := svc.GetByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if doc == nil {
					return fmt.Errorf("%s %q: %w", e.name, args[0], ErrNotFound)
				}
				return printJSON(cmd.OutOrStdout(), doc)
			})
		},
	}
}

func entityInsertCmd[T any](a *app, e entity) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "insert",
		Short: fmt.Sprintf("Insert a record into %s from a YAML file", e.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := readRecord[T](file, cmd.InOrStdin(), e.format)
			if err != nil {
				return err
			}

			return a.withDependencies(cmd.Context(), func(deps *beca.Dependencies) error {
				svc, ok := beca.Get[service.Store[T]](deps.Select(e.resource), e.resource)
				if !ok {
					return fmt.Errorf("%s: %w", e.resource, beca.ErrResourceNotBuilt)
				}

				stored, err := svc.Insert(cmd.Context(), rec)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stored)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML record to insert, - for stdin (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func reader[T any](deps *beca.Dependencies, e entity) (service.Reader[T], error) {
	svc, ok := beca.Get[service.Reader[T]](deps.Select(e.resource), e.resource)
	if !ok {
		return nil, fmt.Errorf("%s: %w", e.resource, beca.ErrResourceNotBuilt)
	}
	return svc, nil
}

// readRecord decodes one YAML record from path, or from stdin when path is
// "-". Unknown fields and empty input are rejected with kind.
func readRecord[T any](path string, stdin io.Reader, kind fault.Kind) (*T, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)

	var rec T
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fault.Newf(kind, "%s is empty", path)
		}
		return nil, fault.Tag(kind, fmt.Errorf("decode %s: %w", path, err))
	}
	return &rec, nil
}
