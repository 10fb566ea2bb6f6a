package credbind

// Environment is the set of variables a binding exports, in insertion
// order. It is built during bind and read-only afterwards.
type Environment struct {
	names  []string
	values map[string]string
}

func newEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// set records a variable. Names are validated before any environment is
// built, so a duplicate here is a bug in the binding itself.
func (e *Environment) set(name, value string) {
	if _, ok := e.values[name]; ok {
		panic("credbind: duplicate environment variable " + name)
	}
	e.names = append(e.names, name)
	e.values[name] = value
}

// Get returns the value of name and whether it is present.
func (e *Environment) Get(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Names returns the variable names in insertion order.
func (e *Environment) Names() []string {
	return append([]string(nil), e.names...)
}

// Map returns the variables as a plain map.
func (e *Environment) Map() map[string]string {
	m := make(map[string]string, len(e.values))
	for k, v := range e.values {
		m[k] = v
	}
	return m
}

// Strings renders the variables as NAME=value pairs in insertion order,
// ready to append to an os/exec command environment.
func (e *Environment) Strings() []string {
	pairs := make([]string, 0, len(e.names))
	for _, name := range e.names {
		pairs = append(pairs, name+"="+e.values[name])
	}
	return pairs
}

// Len returns the number of variables.
func (e *Environment) Len() int {
	return len(e.names)
}
