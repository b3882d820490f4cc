package cmd

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Construct an instance of a declared type",
		Long: `Construct an instance of a declared type and print its own members.

Each key=value argument is collected into a single map passed to the
constructor; types with fields use it to override field values. Values are
parsed as YAML scalars, so 1 is a number, true a bool and null empty.

Examples:
  declare new CalendarWidget
  declare new CalendarWidget date=2015-05-01 weekFirstDay=0`,
		Usage: "declare new <type> [key=value...]",
		Run:   runNew,
	})
}

func runNew(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("type is required\n\nUsage: declare new <type> [key=value...]")
	}

	cfg, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	t, ok := reg.Type(args[0])
	if !ok {
		return fmt.Errorf("unknown type %q in %s", args[0], cfg.Manifest)
	}

	overrides, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	var ctorArgs []any
	if len(overrides) > 0 {
		ctorArgs = append(ctorArgs, overrides)
	}

	inst, err := t.New(ctorArgs...)
	if err != nil {
		return fmt.Errorf("constructing %s: %w", t.Name(), err)
	}
	writeInstance(os.Stdout, inst)
	return nil
}

// parseAssignments turns key=value arguments into a map. Values that do not
// parse as YAML are kept as strings.
func parseAssignments(args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected key=value)", arg)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%s assigned more than once", key)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		out[key] = v
	}
	return out, nil
}
