package parser_test

import (
	"testing"

	"squill/internal/diag"
	"squill/internal/parser"
	"squill/internal/segment"
	"squill/internal/source"
	"squill/internal/testkit"
)

func parseString(t *testing.T, input string) (*segment.Segment, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sql", []byte(input)))
	bag := diag.NewBag(100)
	p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return p.ParseFile(), bag
}

func findFirst(root *segment.Segment, kind segment.Kind) *segment.Segment {
	var found *segment.Segment
	segment.Walk(root, func(node *segment.Segment, _ []*segment.Segment) bool {
		if found == nil && node.Kind == kind {
			found = node
		}
		return found == nil
	})
	return found
}

func childKinds(node *segment.Segment) []segment.Kind {
	kinds := make([]segment.Kind, 0, len(node.Children))
	for _, c := range node.Children {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func expectKinds(t *testing.T, node *segment.Segment, want []segment.Kind) {
	t.Helper()
	got := childKinds(node)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRawRoundTrip(t *testing.T) {
	inputs := []string{
		"select a, b from t;\n",
		"select 1",
		"select a,\n  b -- two\nfrom t",
		"SELECT * FROM t WHERE x = 'it''s' AND y <> 2;",
		"insert into t (a, b) values (1, 2);",
		"select (select max(x) from u) as m, b from t;",
		"/* header */\nselect a from t\n",
		"",
	}
	for _, input := range inputs {
		root, _ := parseString(t, input)
		if got := root.Raw(); got != input {
			t.Errorf("tree must reconstruct the source\nwant: %q\ngot:  %q", input, got)
		}
	}
}

func TestTreeInvariants(t *testing.T) {
	inputs := []string{
		"select a, b from t;\n",
		"select (select max(x) from u) as m, b from t;",
		"select a,\n  b -- two\nfrom t",
		"insert into t (a, b) values (1, 2);",
	}
	for _, input := range inputs {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("test.sql", []byte(input)))
		bag := diag.NewBag(100)
		p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
		root := p.ParseFile()

		if err := testkit.CheckTreeInvariants(root, file); err != nil {
			t.Errorf("%q: %v", input, err)
		}
		if err := testkit.CheckRawRoundTrip(root, file); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
}

func TestSelectClauseShape(t *testing.T) {
	root, bag := parseString(t, "select a, b from t")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	clause := findFirst(root, segment.KindSelectClause)
	if clause == nil {
		t.Fatal("no select_clause in tree")
	}
	expectKinds(t, clause, []segment.Kind{
		segment.KindKeyword,      // select
		segment.KindWhitespace,   // " "
		segment.KindSelectTarget, // a
		segment.KindComma,
		segment.KindWhitespace,
		segment.KindSelectTarget, // b
		segment.KindWhitespace,   // before FROM, stays in clause
	})
	if clause.Raw() != "select a, b " {
		t.Errorf("clause raw: got %q", clause.Raw())
	}
}

func TestNewlineNodesInClause(t *testing.T) {
	root, _ := parseString(t, "select\n  a,\n  b\nfrom t")
	clause := findFirst(root, segment.KindSelectClause)
	expectKinds(t, clause, []segment.Kind{
		segment.KindKeyword,
		segment.KindNewline,
		segment.KindWhitespace,
		segment.KindSelectTarget,
		segment.KindComma,
		segment.KindNewline,
		segment.KindWhitespace,
		segment.KindSelectTarget,
		segment.KindNewline,
	})
}

func TestTargetClassification(t *testing.T) {
	cases := []struct {
		input string
		want  segment.Kind
	}{
		{"select * from t", segment.KindWildcard},
		{"select t.* from t", segment.KindWildcard},
		{"select a from t", segment.KindColumnRef},
		{"select t.a from t", segment.KindColumnRef},
		{"select a + 1 from t", segment.KindExpression},
		{"select count(*) from t", segment.KindExpression},
		{"select 'lit' from t", segment.KindExpression},
	}
	for _, c := range cases {
		root, _ := parseString(t, c.input)
		target := findFirst(root, segment.KindSelectTarget)
		if target == nil {
			t.Fatalf("%q: no select target", c.input)
		}
		if len(target.Children) != 1 || target.Children[0].Kind != c.want {
			t.Errorf("%q: expected direct child %v, got %v", c.input, c.want, childKinds(target))
		}
	}
}

func TestTargetOwnsInternalTrivia(t *testing.T) {
	root, _ := parseString(t, "select a as alias from t")
	clause := findFirst(root, segment.KindSelectClause)
	// one target; the spaces inside "a as alias" belong to it
	targets := clause.ChildrenOf(segment.KindSelectTarget)
	if len(targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(targets))
	}
	if targets[0].Raw() != "a as alias" {
		t.Errorf("target raw: got %q", targets[0].Raw())
	}
}

func TestDistinctStaysOutsideTargets(t *testing.T) {
	root, _ := parseString(t, "select distinct a from t")
	clause := findFirst(root, segment.KindSelectClause)
	targets := clause.ChildrenOf(segment.KindSelectTarget)
	if len(targets) != 1 || targets[0].Raw() != "a" {
		t.Fatalf("expected single target 'a', got %v", targets)
	}
}

func TestFromClauseGrouping(t *testing.T) {
	root, _ := parseString(t, "select a from t where x = 1;")
	stmt := findFirst(root, segment.KindStatement)
	kinds := childKinds(stmt)
	want := []segment.Kind{segment.KindSelectClause, segment.KindFromClause, segment.KindSemicolon}
	if len(kinds) != len(want) {
		t.Fatalf("statement children: expected %v, got %v", want, kinds)
	}
	from := stmt.FirstChild(segment.KindFromClause)
	if from.Raw() != "from t where x = 1" {
		t.Errorf("from clause raw: got %q", from.Raw())
	}
}

func TestNestedSubquerySelectClause(t *testing.T) {
	root, _ := parseString(t, "select (select x from u) as m from t")
	var clauses []*segment.Segment
	segment.Walk(root, func(node *segment.Segment, _ []*segment.Segment) bool {
		if node.Kind == segment.KindSelectClause {
			clauses = append(clauses, node)
		}
		return true
	})
	if len(clauses) != 2 {
		t.Fatalf("expected outer and inner select clauses, got %d", len(clauses))
	}
	if clauses[1].Raw() != "select x " {
		t.Errorf("inner clause raw: got %q", clauses[1].Raw())
	}
}

func TestMultipleStatements(t *testing.T) {
	root, _ := parseString(t, "select a from t;\nselect b from u;\n")
	var stmts int
	for _, c := range root.Children {
		if c.Kind == segment.KindStatement {
			stmts++
		}
	}
	if stmts != 2 {
		t.Errorf("expected 2 statements, got %d", stmts)
	}
}

func TestNonSelectStatementDegradesGracefully(t *testing.T) {
	root, bag := parseString(t, "update t set a = 1 where b = 2;")
	if bag.HasErrors() {
		t.Fatalf("loose statements must not error: %v", bag.Items())
	}
	if findFirst(root, segment.KindSelectClause) != nil {
		t.Error("update statement must not produce a select clause")
	}
	if root.Raw() != "update t set a = 1 where b = 2;" {
		t.Errorf("raw round trip failed: %q", root.Raw())
	}
}

func TestEmptySelectListReported(t *testing.T) {
	_, bag := parseString(t, "select from t")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynEmptySelectList {
			found = true
		}
	}
	if !found {
		t.Error("expected SynEmptySelectList diagnostic")
	}
}

func TestUnclosedParenReported(t *testing.T) {
	_, bag := parseString(t, "select count( from t")
	if !bag.HasErrors() {
		t.Error("expected SynUnclosedParen diagnostic")
	}
}

func TestFunctionArgsDoNotSplitTargets(t *testing.T) {
	root, _ := parseString(t, "select coalesce(a, b), c from t")
	clause := findFirst(root, segment.KindSelectClause)
	targets := clause.ChildrenOf(segment.KindSelectTarget)
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}
	if targets[0].Raw() != "coalesce(a, b)" {
		t.Errorf("first target raw: got %q", targets[0].Raw())
	}
}
