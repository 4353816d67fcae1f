package vis

import "testing"

func TestTableEnumeratesEveryConfiguration(t *testing.T) {
	rows := Table()
	if want := len(BuildModes()) * len(Platforms()) * len(Roles()); len(rows) != want {
		t.Fatalf("Table() has %d rows, want %d", len(rows), want)
	}

	seen := make(map[Config]bool, len(rows))
	for _, row := range rows {
		if seen[row.Config] {
			t.Errorf("duplicate row for %+v", row.Config)
		}
		seen[row.Config] = true
		if row.Bindings != Resolve(row.Config) {
			t.Errorf("row %+v disagrees with Resolve", row.Config)
		}
	}
}

func TestTableStaticRowsCollapse(t *testing.T) {
	for _, row := range Table() {
		if row.Config.Build != BuildStatic {
			continue
		}
		if row.Bindings.Export != "" || row.Bindings.NoExport != "" {
			t.Errorf("static row %+v carries attributes: %+v", row.Config, row.Bindings)
		}
	}
}

func TestDeprecationTableCoversEveryFamily(t *testing.T) {
	rows := DeprecationTable()
	if len(rows) != len(Compilers()) {
		t.Fatalf("DeprecationTable() has %d rows, want %d", len(rows), len(Compilers()))
	}
	want := map[Compiler]string{
		CompilerGNU:  AttrDeprecatedGNU,
		CompilerMSVC: AttrDeprecatedMSVC,
		CompilerNone: "",
	}
	for _, row := range rows {
		if row.Annotation != want[row.Compiler] {
			t.Errorf("compiler %q: annotation = %q, want %q", row.Compiler, row.Annotation, want[row.Compiler])
		}
	}
}
