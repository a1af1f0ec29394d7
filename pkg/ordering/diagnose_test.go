package ordering

import (
	"slices"
	"testing"
)

func TestCycles_ExampleIsAcyclic(t *testing.T) {
	r := exampleRelation(t)
	if got := Cycles(r); len(got) != 0 {
		t.Errorf("Cycles() = %v, want none", got)
	}
}

func TestCycles(t *testing.T) {
	tests := []struct {
		name  string
		rules [][2]int
		want  []Pair
	}{
		{
			name:  "triangle",
			rules: [][2]int{{1, 2}, {2, 3}, {3, 1}},
			want:  []Pair{{3, 1}},
		},
		{
			name:  "two page cycle",
			rules: [][2]int{{1, 2}, {2, 1}},
			want:  []Pair{{2, 1}},
		},
		{
			name:  "self loop",
			rules: [][2]int{{4, 4}},
			want:  []Pair{{4, 4}},
		},
		{
			name:  "diamond",
			rules: [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}},
			want:  nil,
		},
		{
			name:  "empty",
			rules: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRules()
			for _, p := range tt.rules {
				r.Add(p[0], p[1])
			}
			if got := Cycles(r); !slices.Equal(got, tt.want) {
				t.Errorf("Cycles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIncomparable(t *testing.T) {
	r := exampleRelation(t)

	if got := Incomparable(Sequence{75, 47, 61, 53, 29}, r); len(got) != 0 {
		t.Errorf("Incomparable() = %v, want none", got)
	}

	got := Incomparable(Sequence{75, 99, 13}, r)
	want := []Pair{{75, 99}, {99, 13}}
	if !slices.Equal(got, want) {
		t.Errorf("Incomparable() = %v, want %v", got, want)
	}

	if got := Incomparable(Sequence{5, 5}, r); len(got) != 0 {
		t.Errorf("Incomparable() on duplicates = %v, want none", got)
	}
}

func TestContradictions(t *testing.T) {
	r := NewRules()
	r.Add(1, 2)
	r.Add(2, 1)
	r.Add(2, 3)

	got := Contradictions(Sequence{2, 3, 1}, r)
	want := []Pair{{2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Contradictions() = %v, want %v", got, want)
	}

	if got := Contradictions(Sequence{75, 47}, exampleRelation(t)); len(got) != 0 {
		t.Errorf("Contradictions() = %v, want none", got)
	}
}
