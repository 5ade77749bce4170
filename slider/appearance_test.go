package slider

import (
	"image"
	"testing"
)

func TestParseTint(t *testing.T) {
	c, err := ParseTint("#FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("got %+v. want opaque red", c)
	}
	if _, err := ParseTint("00ff00"); err != nil {
		t.Errorf("tint without # should parse: %v", err)
	}
	for _, bad := range []string{"#12345", "#GG0000", "red", ""} {
		if _, err := ParseTint(bad); err == nil {
			t.Errorf("expected error for tint %q", bad)
		}
	}
}

func TestThumbImageFitsThumb(t *testing.T) {
	s := newTestSlider(t)
	a := s.Appearance()
	if a.ThumbUsesImage() {
		t.Fatal("no thumb image set yet")
	}
	s.SetThumbImage(image.NewRGBA(image.Rect(0, 0, 64, 48)))
	if !a.ThumbUsesImage() {
		t.Fatal("thumb image should take precedence over tint")
	}
	want := 2 * int(s.Frame().ThumbRadius)
	if b := a.ThumbImage().Bounds(); b.Dx() != want || b.Dy() != want {
		t.Errorf("thumb image size got %v. want %dx%d", b.Size(), want, want)
	}

	f := s.Frame()
	f.ThumbRadius = 15
	if err := s.SetFrame(f); err != nil {
		t.Fatal(err)
	}
	if b := a.ThumbImage().Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Errorf("resized thumb image got %v. want 30x30", b.Size())
	}

	s.SetThumbImage(nil)
	if a.ThumbUsesImage() || a.ThumbImage() != nil {
		t.Error("nil thumb image should restore the tinted thumb")
	}
}

func TestSetTints(t *testing.T) {
	s := newTestSlider(t)
	red, _ := ParseTint("#f00")
	s.SetMinimumTrackTint(red)
	s.SetMaximumTrackTint(red)
	s.SetThumbTint(red)
	a := s.Appearance()
	if a.MinimumTrackTint != red || a.MaximumTrackTint != red || a.ThumbTint != red {
		t.Errorf("tints not applied: %+v", a)
	}
}
