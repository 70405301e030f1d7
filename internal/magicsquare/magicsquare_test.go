package magicsquare

import "testing"

func TestNewProducesValidSquare(t *testing.T) {
	for _, n := range []int{3, 5, 7} {
		sq, err := New(n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		ok, sum := Verify(sq)
		if !ok {
			t.Fatalf("New(%d) produced an invalid magic square", n)
		}
		if sum != MagicSum(n) {
			t.Fatalf("New(%d) sum = %d; want %d", n, sum, MagicSum(n))
		}
	}
}

func TestNewRejectsEvenAndSmallSizes(t *testing.T) {
	if _, err := New(4); err == nil {
		t.Fatalf("New(4) should reject an even size")
	}
	if _, err := New(2); err == nil {
		t.Fatalf("New(2) should reject a size below 3")
	}
}

func TestRotate90PreservesMagicProperty(t *testing.T) {
	sq, err := New(5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rotated := Rotate90(sq)
	ok, sum := Verify(rotated)
	if !ok || sum != MagicSum(5) {
		t.Fatalf("Rotate90 broke the magic property: ok=%v sum=%d", ok, sum)
	}
}

func TestReflectHorizontalPreservesMagicProperty(t *testing.T) {
	sq, err := New(5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	reflected := ReflectHorizontal(sq)
	ok, sum := Verify(reflected)
	if !ok || sum != MagicSum(5) {
		t.Fatalf("ReflectHorizontal broke the magic property: ok=%v sum=%d", ok, sum)
	}
}

func TestComposedSymmetriesPreserveMagicProperty(t *testing.T) {
	sq, err := New(5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	transforms := map[string]func(Square) Square{
		"Rotate180":           Rotate180,
		"Rotate270":           Rotate270,
		"ReflectVertical":     ReflectVertical,
		"ReflectMainDiagonal": ReflectMainDiagonal,
		"ReflectAntiDiagonal": ReflectAntiDiagonal,
	}
	for name, transform := range transforms {
		out := transform(sq)
		ok, sum := Verify(out)
		if !ok || sum != MagicSum(5) {
			t.Fatalf("%s broke the magic property: ok=%v sum=%d", name, ok, sum)
		}
	}
}

func TestRotate270IsInverseOfRotate90(t *testing.T) {
	sq, err := New(5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	roundTrip := Rotate270(Rotate90(sq))
	for r := range sq {
		for c := range sq[r] {
			if roundTrip[r][c] != sq[r][c] {
				t.Fatalf("Rotate270(Rotate90(sq)) != sq at (%d,%d): got %d want %d", r, c, roundTrip[r][c], sq[r][c])
			}
		}
	}
}

func TestVerifyRejectsNonSquareInput(t *testing.T) {
	bad := Square{{1, 2}, {3}}
	if ok, _ := Verify(bad); ok {
		t.Fatalf("Verify should reject a ragged grid")
	}
}
