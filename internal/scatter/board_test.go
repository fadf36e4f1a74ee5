package scatter

import "testing"

func TestBoard_CaptureCountMatchesSamples(t *testing.T) {
	b := NewBoard()
	changes := 0
	b.OnChange(func() { changes++ })

	b.PointerMove(5, 5) // not drawing yet
	b.PointerDown(10, 10)
	for i := 0; i < 7; i++ {
		b.PointerMove(float64(20+i), 30)
	}
	b.PointerUp()
	b.PointerMove(50, 50) // after release
	b.PointerDown(100, 100)
	b.PointerMove(101, 101)
	b.PointerLeave()
	b.PointerMove(102, 102)

	if got, want := b.Len(), 1+7+1+1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if changes != b.Len() {
		t.Fatalf("expected one change notification per point, got %d", changes)
	}
}

func TestBoard_StateTransitions(t *testing.T) {
	b := NewBoard()
	if b.State() != Idle {
		t.Fatalf("new board should be idle")
	}
	b.PointerDown(1, 1)
	if b.State() != Drawing || !b.Drawing() {
		t.Fatalf("expected drawing after pointer down")
	}
	b.PointerMove(2, 2)
	if b.State() != Drawing {
		t.Fatalf("move should keep drawing")
	}
	b.PointerUp()
	if b.State() != Idle {
		t.Fatalf("expected idle after pointer up")
	}
	b.PointerDown(3, 3)
	b.PointerLeave()
	if b.State() != Idle {
		t.Fatalf("expected idle after pointer leave")
	}
	if b.Len() != 3 {
		t.Fatalf("up/leave must not capture; got %d points", b.Len())
	}
}

func TestBoard_IgnoresOutsideCanvas(t *testing.T) {
	b := NewBoard()
	b.PointerDown(-1, 10)
	if b.Drawing() || b.Len() != 0 {
		t.Fatalf("down outside canvas should be ignored")
	}
	b.PointerDown(10, 10)
	b.PointerMove(400, 0)
	if b.Len() != 2 {
		t.Fatalf("edge of canvas should be captured")
	}
	b.PointerMove(401, 10)
	if b.Len() != 2 {
		t.Fatalf("move outside canvas captured: %d points", b.Len())
	}
	if b.Drawing() {
		t.Fatalf("leaving the canvas should end the stroke")
	}
	b.PointerMove(10, 10)
	if b.Len() != 2 {
		t.Fatalf("moves after leaving must not capture")
	}
}

func TestBoard_YInversion(t *testing.T) {
	b := NewBoard()
	b.PointerDown(12.5, 40)
	p := b.Points()[0]
	if p.X != 12.5 || p.Y != 360 {
		t.Fatalf("stored %+v, want x=12.5 y=360", p)
	}
	px, py := p.Pixel()
	if px != 12.5 || py != 40 {
		t.Fatalf("pixel round-trip = (%v,%v), want (12.5,40)", px, py)
	}
}

func TestBoard_ColorChangeDoesNotRewriteHistory(t *testing.T) {
	b := NewBoard()
	if b.Color() != Blue {
		t.Fatalf("default color = %v, want blue", b.Color())
	}
	b.PointerDown(1, 1)
	b.SetColor(Red)
	b.PointerMove(2, 2)
	b.SetColor(Green)
	b.PointerMove(3, 3)
	b.SetColor(Color(42))
	if b.Color() != Green {
		t.Fatalf("invalid color should be rejected")
	}
	want := []Color{Blue, Red, Green}
	for i, p := range b.Points() {
		if p.Color != want[i] {
			t.Fatalf("point %d color = %v, want %v", i, p.Color, want[i])
		}
	}
}

func TestBoard_ResetAndReplace(t *testing.T) {
	b := NewBoard()
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("reset on empty board should stay empty")
	}
	b.PointerDown(1, 1)
	b.PointerMove(2, 2)
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("reset left %d points", b.Len())
	}

	src := []Point{{X: 1, Y: 2, Color: Red}, {X: 3, Y: 4, Color: Green}}
	b.Replace(src)
	src[0].X = 99
	got := b.Points()
	if len(got) != 2 || got[0].X != 1 {
		t.Fatalf("Replace should copy input, got %+v", got)
	}
	got[1].Y = -1
	if b.Points()[1].Y != 4 {
		t.Fatalf("Points() must return a copy")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"blue", Blue, false},
		{" Red ", Red, false},
		{"GREEN", Green, false},
		{"black", Blue, true},
		{"", Blue, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("ParseColor(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
		}
		if err == nil && got != c.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, c := range Colors {
		back, err := ParseColor(c.String())
		if err != nil || back != c {
			t.Fatalf("String/Parse mismatch for %v", c)
		}
	}
	if Red.Label() != "Red" {
		t.Fatalf("Label() = %q", Red.Label())
	}
}
