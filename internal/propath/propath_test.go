package propath

import "testing"

func TestCompareNumericOverLexicographic(t *testing.T) {
	// A lexicographic sort would put "10" before "2"; Compare must not.
	ten := Path{Int(0), Int(10)}
	two := Path{Int(0), Int(2)}
	if !Less(two, ten) {
		t.Fatalf("expected path at index 2 to sort before index 10")
	}
}

func TestCompareMixedKinds(t *testing.T) {
	intPath := Path{Int(0)}
	strPath := Path{Str("$1")}
	if !Less(intPath, strPath) {
		t.Fatalf("expected int-keyed path to sort before string-keyed path")
	}
}

func TestCompareShorterPrefix(t *testing.T) {
	short := Path{Int(0), Str("$1")}
	long := Path{Int(0), Str("$1"), Str("$2")}
	if !Less(short, long) {
		t.Fatalf("expected shorter path to sort before its own extension")
	}
}

func TestStringJoinsWithDot(t *testing.T) {
	p := Path{Int(1), Str("$1"), Str("x")}
	if got, want := p.String(), "1.$1.x"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAppendDoesNotAliasTail(t *testing.T) {
	base := Path{Int(0)}
	a := base.Append(Str("a"))
	b := base.Append(Str("b"))
	if a.String() == b.String() {
		t.Fatalf("expected independent appends, got aliased tails: %v %v", a, b)
	}
}
