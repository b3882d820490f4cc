package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-drift/declare/pkg/class"
	"github.com/go-drift/declare/pkg/manifest"
	"github.com/go-drift/declare/pkg/object"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "List the types a manifest declares",
		Long: `List the types declared by the manifest.

For each type this prints its ancestry, the traits merged into it in order,
the members of its instance contract and its statics. Pass type names to
limit the output.

Examples:
  declare inspect
  declare inspect CalendarWidget
  declare --manifest ui/declare.yaml inspect`,
		Usage: "declare inspect [type...]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	cfg, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	types := reg.Types()
	if len(args) > 0 {
		types = types[:0]
		for _, name := range args {
			t, ok := reg.Type(name)
			if !ok {
				return fmt.Errorf("unknown type %q in %s", name, cfg.Manifest)
			}
			types = append(types, t)
		}
	}

	fmt.Printf("Manifest: %s\n", cfg.Manifest)
	writeInspect(os.Stdout, reg, types)
	return nil
}

func writeInspect(w io.Writer, reg *manifest.Registry, types []*class.Type) {
	fmt.Fprintf(w, "Namespace: %s\n", reg.Namespace)
	for _, t := range types {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", t.Name())

		var chain []string
		for _, a := range t.Ancestry()[1:] {
			chain = append(chain, a.Name())
		}
		fmt.Fprintf(w, "  %-10s %s\n", "ancestry:", listOrNone(chain))

		var mixins []string
		for _, m := range t.Mixins() {
			mixins = append(mixins, m.String())
		}
		fmt.Fprintf(w, "  %-10s %s\n", "mixins:", listOrNone(mixins))
		fmt.Fprintf(w, "  %-10s %s\n", "contract:", listOrNone(t.Prototype().OwnKeys()))

		var statics []string
		for _, k := range t.Statics().Keys() {
			statics = append(statics, k+"="+formatValue(t.Static(k)))
		}
		fmt.Fprintf(w, "  %-10s %s\n", "statics:", listOrNone(statics))
	}
}

// writeInstance prints the enumerable own members of o, sorted by name.
func writeInstance(w io.Writer, o *object.Object) {
	name := class.DefaultName
	if t := class.TypeOf(o); t != nil {
		name = t.Name()
	}
	fmt.Fprintf(w, "%s instance\n", name)

	keys := o.Keys()
	sort.Strings(keys)
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}
	for _, k := range keys {
		fmt.Fprintf(w, "  %-*s = %s\n", width, k, formatValue(o.Get(k)))
	}
}

func formatValue(v any) string {
	if _, ok := object.AsFunc(v); ok {
		return "<func>"
	}
	switch v := v.(type) {
	case nil:
		return "null"
	case *class.Type:
		return "type " + v.Name()
	case *object.Object:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
