package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sievekit/sieve/pkg/config"
	"github.com/sievekit/sieve/pkg/rules"
	"github.com/sievekit/sieve/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a document against a schema registry",
	Long: `Reads a YAML or JSON document (from the given file or stdin) and validates
it against the schema registry in the --schema file. On success the
sanitized document is printed as YAML. Exit code 1 means the document is
invalid; exit code 2 means the schema itself is broken.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if code := runValidate(cmd, args); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	validateCmd.Flags().StringP("schema", "s", "", "Schema registry file (YAML)")
	validateCmd.Flags().String("mode", "", "Undeclared-key mode: ignore, strict or cleanup")
	validateCmd.Flags().Bool("fail-early", false, "Stop at the first failing field")
	validateCmd.Flags().String("charset", "", "Validate string encodings against this charset")
	validateCmd.Flags().Int("max-depth", 0, "Bound sequence nesting (0 = unbounded)")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) int {
	logger := newLogger(cmd)

	settings, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("loading settings")
		return 2
	}
	// Flags override the environment.
	if flag, _ := cmd.Flags().GetString("mode"); flag != "" {
		settings.Mode = flag
	}
	if set, _ := cmd.Flags().GetBool("fail-early"); set {
		settings.FailEarly = true
	}
	if flag, _ := cmd.Flags().GetString("charset"); flag != "" {
		settings.Charset = flag
	}
	if flag, _ := cmd.Flags().GetInt("max-depth"); flag != 0 {
		settings.MaxDepth = flag
	}

	opts, err := settings.Options()
	if err != nil {
		logger.Error().Err(err).Msg("bad settings")
		return 2
	}
	opts = append(opts, schema.WithRules(rules.Default()))

	schemaPath, _ := cmd.Flags().GetString("schema")
	schemaDoc, err := os.ReadFile(schemaPath)
	if err != nil {
		logger.Error().Err(err).Str("file", schemaPath).Msg("reading schema")
		return 2
	}
	registry, err := schema.ParseYAML(schemaDoc)
	if err != nil {
		logger.Error().Err(err).Str("file", schemaPath).Msg("parsing schema")
		return 2
	}

	doc, err := readDocument(args)
	if err != nil {
		logger.Error().Err(err).Msg("reading document")
		return 2
	}

	logger.Debug().
		Str("mode", settings.Mode).
		Bool("fail_early", settings.FailEarly).
		Str("charset", settings.Charset).
		Int("max_depth", settings.MaxDepth).
		Msg("validating")

	v := schema.New(registry, opts...)
	out, err := v.Validate(doc)
	if err != nil {
		if schema.IsDefinitionError(err) {
			logger.Error().Err(err).Msg("schema definition error")
			return 2
		}
		for _, token := range v.Errors() {
			fmt.Fprintln(os.Stderr, token)
		}
		return 1
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		logger.Error().Err(err).Msg("encoding sanitized document")
		return 2
	}
	fmt.Print(string(encoded))
	return 0
}

// readDocument loads the input document from the named file or stdin. YAML
// is a superset of JSON, so both formats decode the same way.
func readDocument(args []string) (any, error) {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return normalize(doc), nil
}

// normalize rewrites yaml.v3's map[string]any documents recursively and
// coerces non-string map keys, so the engine always sees map[string]any and
// []any.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = normalize(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalize(item)
		}
		return v
	default:
		return value
	}
}
