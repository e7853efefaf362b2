package tool

import "testing"

func TestDefinitionsMatchOperations(t *testing.T) {
	t.Parallel()

	defs := Definitions()
	ops := Ops()
	if len(defs) != len(ops) {
		t.Fatalf("expected %d definitions, got %d", len(ops), len(defs))
	}
	for i, op := range ops {
		if defs[i].Name != string(op) {
			t.Fatalf("definition[%d] = %s, want %s", i, defs[i].Name, op)
		}
		if defs[i].Description == "" {
			t.Fatalf("definition %s has no description", defs[i].Name)
		}
		if defs[i].InputSchema["type"] != "object" {
			t.Fatalf("definition %s schema is not an object", defs[i].Name)
		}
	}
}

func TestParseOp(t *testing.T) {
	t.Parallel()

	for _, op := range Ops() {
		got, ok := ParseOp(string(op))
		if !ok || got != op {
			t.Fatalf("ParseOp(%s) = %v, %v", op, got, ok)
		}
	}
	if _, ok := ParseOp("search_menu"); ok {
		t.Fatal("aliases are not part of the catalog")
	}
}
