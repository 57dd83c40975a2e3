package linker

type ContextArgs struct {
	Output       string
	Emulation    MachineType
	LibraryPaths []string
}

type Context struct {
	Args  ContextArgs
	Diags DiagnosticSink

	Objs    []*ObjectFile
	Scripts []*LdScript

	Visited map[string]bool
}

func NewContext(diags DiagnosticSink) *Context {
	return &Context{
		Args: ContextArgs{
			Output:    "a.out",
			Emulation: MachineTypeNone,
		},
		Diags:   diags,
		Visited: make(map[string]bool),
	}
}
