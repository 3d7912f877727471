package predict

import "testing"

func testTree() tree {
	return tree{Nodes: []treeNode{
		{Feature: 0, Threshold: 2, Left: 1, Right: 2},
		{Leaf: true, Value: 0.5},
		{Feature: 1, Threshold: 0.5, Left: 3, Right: 4},
		{Leaf: true, Value: -0.25},
		{Leaf: true, Value: 1.5},
	}}
}

func TestTreeEval(t *testing.T) {
	tr := testTree()

	cases := []struct {
		name     string
		features []float64
		want     float64
	}{
		{"left branch", []float64{1, 9}, 0.5},
		{"boundary goes left", []float64{2, 9}, 0.5},
		{"right then left", []float64{3, 0.5}, -0.25},
		{"right then right", []float64{3, 0.75}, 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.eval(tc.features); got != tc.want {
				t.Fatalf("eval(%v) = %v, want %v", tc.features, got, tc.want)
			}
		})
	}
}

func TestForestMargin(t *testing.T) {
	m := &gradientBoostModel{
		BaseScore:    0.25,
		FeatureNames: []string{"a", "b"},
		Trees: []tree{
			{Nodes: []treeNode{{Leaf: true, Value: 0.5}}},
			{Nodes: []treeNode{
				{Feature: 0, Threshold: 0, Left: 1, Right: 2},
				{Leaf: true, Value: -0.25},
				{Leaf: true, Value: 0.75},
			}},
		},
	}
	if err := m.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if got := m.margin([]float64{1, 0}); got != 1.5 {
		t.Fatalf("margin = %v, want 1.5", got)
	}
	if got := m.margin([]float64{-1, 0}); got != 0.5 {
		t.Fatalf("margin = %v, want 0.5", got)
	}
}

func TestGradientBoostValidate(t *testing.T) {
	cases := []struct {
		name  string
		model gradientBoostModel
	}{
		{
			"no trees",
			gradientBoostModel{FeatureNames: []string{"a"}},
		},
		{
			"no feature names",
			gradientBoostModel{Trees: []tree{{Nodes: []treeNode{{Leaf: true}}}}},
		},
		{
			"feature out of range",
			gradientBoostModel{
				FeatureNames: []string{"a"},
				Trees: []tree{{Nodes: []treeNode{
					{Feature: 3, Threshold: 0, Left: 1, Right: 2},
					{Leaf: true},
					{Leaf: true},
				}}},
			},
		},
		{
			"child references parent",
			gradientBoostModel{
				FeatureNames: []string{"a"},
				Trees: []tree{{Nodes: []treeNode{
					{Feature: 0, Threshold: 0, Left: 0, Right: 1},
					{Leaf: true},
				}}},
			},
		},
		{
			"child out of range",
			gradientBoostModel{
				FeatureNames: []string{"a"},
				Trees: []tree{{Nodes: []treeNode{
					{Feature: 0, Threshold: 0, Left: 1, Right: 5},
					{Leaf: true},
				}}},
			},
		},
		{
			"empty tree",
			gradientBoostModel{
				FeatureNames: []string{"a"},
				Trees:        []tree{{}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.model.validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
