package model

import "testing"

func TestStructuralKeyOrderIndependent(t *testing.T) {
	a := Candidate{Elements: []CombinationElement{
		{ControllerID: "c1", ActionID: "a1", Provided: true},
		{ControllerID: "c2", ActionID: "a2", Provided: false},
	}}
	b := Candidate{Elements: []CombinationElement{
		{ControllerID: "c2", ActionID: "a2", Provided: false},
		{ControllerID: "c1", ActionID: "a1", Provided: true},
	}}

	if StructuralKey(a) != StructuralKey(b) {
		t.Errorf("keys differ for reordered elements: %q vs %q", StructuralKey(a), StructuralKey(b))
	}
}

func TestStructuralKeyDistinguishesProvided(t *testing.T) {
	provided := Candidate{Elements: []CombinationElement{
		{ControllerID: "c1", ActionID: "a1", Provided: true},
		{ControllerID: "c2", ActionID: "a2", Provided: true},
	}}
	withheld := Candidate{Elements: []CombinationElement{
		{ControllerID: "c1", ActionID: "a1", Provided: false},
		{ControllerID: "c2", ActionID: "a2", Provided: true},
	}}

	if StructuralKey(provided) == StructuralKey(withheld) {
		t.Error("provided and withheld variants share a key")
	}
}

func TestStructuralKeyIncludesCount(t *testing.T) {
	two := Candidate{Elements: []CombinationElement{
		{ControllerID: "c1", ActionID: "a1", Provided: true},
		{ControllerID: "c2", ActionID: "a2", Provided: true},
	}}
	three := Candidate{Elements: []CombinationElement{
		{ControllerID: "c1", ActionID: "a1", Provided: true},
		{ControllerID: "c2", ActionID: "a2", Provided: true},
		{ControllerID: "c3", ActionID: "a3", Provided: true},
	}}

	if StructuralKey(two) == StructuralKey(three) {
		t.Error("keys collide across element counts")
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The pilot fails to arm the spoilers.")

	for _, want := range []string{"pilot", "fails", "spoilers"} {
		if !tokens[want] {
			t.Errorf("missing token %q", want)
		}
	}
	for _, short := range []string{"the", "to", "arm"} {
		if tokens[short] {
			t.Errorf("short word %q should be dropped", short)
		}
	}
}

func TestTextSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "pilot withholds brake command", "pilot withholds brake command", 1.0, 1.0},
		{"disjoint", "pilot withholds brake command", "ground crew signals departure", 0.0, 0.0},
		{"partial", "pilot withholds brake command", "pilot provides brake command", 0.3, 0.9},
		{"empty", "", "pilot withholds brake command", 0.0, 0.0},
	}

	for _, tt := range tests {
		got := TextSimilarity(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("%s: TextSimilarity = %v, want in [%v,%v]", tt.name, got, tt.min, tt.max)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}

	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInterchangeCanonical(t *testing.T) {
	r := NewInterchangeRelation([][]string{{"captain", "first_officer"}})

	if got := r.Canonical("first_officer"); got != "captain" {
		t.Errorf("Canonical(first_officer) = %q, want captain", got)
	}
	if got := r.Canonical("captain"); got != "captain" {
		t.Errorf("Canonical(captain) = %q, want captain", got)
	}
	if got := r.Canonical("atc"); got != "atc" {
		t.Errorf("Canonical(atc) = %q, want atc", got)
	}

	if !r.Interchangeable("captain", "first_officer") {
		t.Error("captain and first_officer should be interchangeable")
	}
	if r.Interchangeable("captain", "atc") {
		t.Error("captain and atc should not be interchangeable")
	}
}
