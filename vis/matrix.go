package vis

// Row is one line of the visibility decision table: a concrete
// configuration and the bindings it resolves to.
type Row struct {
	Config   Config
	Bindings Bindings
}

// Table enumerates the full visibility table, every build mode ×
// platform × role. Compiler is held unrecognized so the deprecation
// columns stay no-ops; DeprecationTable covers that axis.
func Table() []Row {
	rows := make([]Row, 0, len(BuildModes())*len(Platforms())*len(Roles()))
	for _, b := range BuildModes() {
		for _, p := range Platforms() {
			for _, r := range Roles() {
				cfg := Config{Build: b, Platform: p, Role: r}
				rows = append(rows, Row{Config: cfg, Bindings: Resolve(cfg)})
			}
		}
	}
	return rows
}

// DeprecationRow pairs a compiler family with its annotation text.
type DeprecationRow struct {
	Compiler   Compiler
	Annotation string
}

// DeprecationTable enumerates the compiler axis, including the
// unrecognized-family fallthrough that yields no annotation.
func DeprecationTable() []DeprecationRow {
	rows := make([]DeprecationRow, 0, len(Compilers()))
	for _, c := range Compilers() {
		b := Resolve(Config{Build: BuildShared, Compiler: c})
		rows = append(rows, DeprecationRow{Compiler: c, Annotation: b.Deprecated})
	}
	return rows
}
