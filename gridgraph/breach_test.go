// File: gridgraph/breach_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestBreach_BasicLine tests a 1×3 line with a single wall between two walkable cells.
// Grid: [. # .]
// Expected: must clear the middle cell at cost 1, path indices [0,1,2].
func TestBreach_BasicLine(t *testing.T) {
	gg, err := Parse([]string{".#."}, Conn8)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	path, cost, err := gg.Breach(0, 2)
	if err != nil {
		t.Fatalf("Breach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBreach_MediumRow tests a 1×5 line where three walls separate the ends.
func TestBreach_MediumRow(t *testing.T) {
	gg, _ := Parse([]string{".###."}, Conn8)
	path, cost, err := gg.Breach(0, 4)
	if err != nil {
		t.Fatalf("Breach error: %v", err)
	}
	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestBreach_Connected reports zero cost when the cells already share an island.
func TestBreach_Connected(t *testing.T) {
	gg, _ := Parse([]string{
		".#",
		"#.",
	}, Conn8)
	path, cost, err := gg.Breach(0, 3)
	if err != nil {
		t.Fatalf("Breach error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if want := []int{0, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBreach_EnclosedGoal counts a single wall around a fully enclosed cell.
func TestBreach_EnclosedGoal(t *testing.T) {
	gg, _ := Parse([]string{
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	}, Conn8)
	path, cost, err := gg.Breach(0, 12)
	if err != nil {
		t.Fatalf("Breach error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if path[0] != 0 || path[len(path)-1] != 12 {
		t.Errorf("path = %v; want endpoints 0 and 12", path)
	}
	walls := 0
	for _, i := range path {
		if !gg.WalkableAt(i) {
			walls++
		}
	}
	if walls != cost {
		t.Errorf("walls on path = %d; want %d", walls, cost)
	}
}

// TestBreach_InvalidIndices ensures invalid indices yield ErrIndex.
func TestBreach_InvalidIndices(t *testing.T) {
	gg, _ := Parse([]string{".#."}, Conn8)

	if _, _, err := gg.Breach(-1, 1); !errors.Is(err, ErrIndex) {
		t.Errorf("from=-1: got %v; want ErrIndex", err)
	}
	if _, _, err := gg.Breach(0, 3); !errors.Is(err, ErrIndex) {
		t.Errorf("to=3: got %v; want ErrIndex", err)
	}
}
