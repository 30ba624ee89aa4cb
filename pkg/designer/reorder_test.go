package designer

import (
	"reflect"
	"testing"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		list []string
		from int
		to   int
		want []string
	}{
		{"forward", []string{"a", "b", "c", "d"}, 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", []string{"a", "b", "c", "d"}, 3, 0, []string{"d", "a", "b", "c"}},
		{"adjacent down", []string{"a", "b", "c"}, 0, 1, []string{"b", "a", "c"}},
		{"adjacent up", []string{"a", "b", "c"}, 2, 1, []string{"a", "c", "b"}},
		{"identity", []string{"a", "b", "c"}, 1, 1, []string{"a", "b", "c"}},
		{"single", []string{"a"}, 0, 0, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Move(tt.list, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Move failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Move(%v, %d, %d) = %v, want %v", tt.list, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMoveOutOfRange(t *testing.T) {
	list := []string{"a", "b", "c"}
	cases := []struct{ from, to int }{
		{-1, 0},
		{3, 0},
		{0, -1},
		{0, 3},
	}
	for _, c := range cases {
		if _, err := Move(list, c.from, c.to); err == nil {
			t.Errorf("Move(%d, %d) should fail", c.from, c.to)
		}
	}
	// A failed move leaves the input untouched.
	if !reflect.DeepEqual(list, []string{"a", "b", "c"}) {
		t.Errorf("input mutated by failed move: %v", list)
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	list := []string{"a", "b", "c", "d"}
	if _, err := Move(list, 0, 3); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !reflect.DeepEqual(list, []string{"a", "b", "c", "d"}) {
		t.Errorf("input mutated: %v", list)
	}
}
