package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "schema",
		Short:        "Print the JSON schema of .backtool.yaml",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := ConfigSchema()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if err != nil {
				return fmt.Errorf("print schema: %w", err)
			}

			return nil
		},
	}
}

// ConfigSchema returns the indented JSON schema of the config file.
func ConfigSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    enumTypeMapper,
	}

	schema := reflector.Reflect(&v1alpha1.Input{})
	schema.ID = ""
	schema.Title = "backtool configuration"
	schema.Description = "JSON schema for the backtool config file (.backtool.yaml)"
	schema.Required = nil

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return out, nil
}

// enumTypeMapper publishes the valid values of EnumValuer types as JSON schema enums.
func enumTypeMapper(t reflect.Type) *jsonschema.Schema {
	enumValuerType := reflect.TypeFor[v1alpha1.EnumValuer]()
	if !reflect.PointerTo(t).Implements(enumValuerType) {
		return nil
	}

	valuer, ok := reflect.New(t).Interface().(v1alpha1.EnumValuer)
	if !ok {
		return nil
	}

	values := valuer.ValidValues()

	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}

	return &jsonschema.Schema{Type: "string", Enum: enum}
}
