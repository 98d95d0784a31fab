package values

// Module is a loaded source file or native module: a flat by-name map of
// exported members (spec §4.5/§4.6). DefiningEnv is non-nil for source
// modules (so module-bound functions close over the module's top-level
// scope, spec §4.3 Get-on-module); it is the zero value for native modules.
type Module struct {
	Name        string
	Members     map[string]Value
	DefiningEnv any // *environment.Environment; any to avoid an import cycle
	Native      bool
}

func NewModule(name string) *Module {
	return &Module{Name: name, Members: map[string]Value{}}
}

func (m *Module) Type() Type      { return ModuleType }
func (m *Module) String() string  { return "<module " + m.Name + ">" }
func (m *Module) Inspect() string { return m.String() }

func (m *Module) Get(name string) (Value, bool) {
	v, ok := m.Members[name]
	return v, ok
}
