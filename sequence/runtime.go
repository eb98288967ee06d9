package sequence

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shapeshift/prefabs"
)

// Stats is what the script sees about the run so far.
type Stats struct {
	Current      string
	Shapes       []string
	Count        int
	ArrivedTotal int
}

// Runtime runs a compiled choreography script. Scripts define
// `next := func(engine) { ... }` and return the name of the shape to build
// once the current one has assembled.
type Runtime struct {
	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

const dispatchScript = `
__result = next(__engine)
`

// Load compiles a script from the prefab scripts directory.
func Load(name string) (*Runtime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("sequence: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds a runtime from script source. A script without a next
// function fails here with an unresolved reference.
func Compile(name string, src []byte) (*Runtime, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__result", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sequence: compile %s: %w", name, err)
	}

	return &Runtime{
		path:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Path returns the script name the runtime was built from.
func (rt *Runtime) Path() string {
	if rt == nil {
		return ""
	}
	return rt.path
}

// Next asks the script which shape follows st.Current.
func (rt *Runtime) Next(st Stats) (string, error) {
	if rt == nil || rt.compiled == nil {
		return "", fmt.Errorf("sequence: nil runtime")
	}
	if err := rt.compiled.Set("__engine", buildEngine(st, rt.state)); err != nil {
		return "", err
	}
	if err := rt.compiled.Set("__result", ""); err != nil {
		return "", err
	}
	if err := rt.compiled.Run(); err != nil {
		return "", fmt.Errorf("sequence: run %s: %w", rt.path, err)
	}

	name := strings.TrimSpace(objectAsString(rt.compiled.Get("__result").Object()))
	if name == "" {
		return "", fmt.Errorf("sequence: %s returned no shape", rt.path)
	}
	return name, nil
}

func buildEngine(st Stats, state *tengo.Map) *tengo.ImmutableMap {
	shapes := make([]tengo.Object, 0, len(st.Shapes))
	for _, s := range st.Shapes {
		shapes = append(shapes, &tengo.String{Value: s})
	}

	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"current":       &tengo.String{Value: st.Current},
		"shapes":        &tengo.ImmutableArray{Value: shapes},
		"count":         &tengo.Int{Value: int64(st.Count)},
		"arrived_total": &tengo.Int{Value: int64(st.ArrivedTotal)},
		"state":         state,
	}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Undefined:
		return ""
	default:
		return strings.Trim(v.String(), "\"")
	}
}
