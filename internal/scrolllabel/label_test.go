package scrolllabel

import "testing"

func TestForOffset(t *testing.T) {
	anchors := Anchors{Work: 1000, About: 2000, Contact: 3000}

	tests := []struct {
		offset float64
		want   string
	}{
		{0, LabelDefault},
		{700, LabelDefault},
		{799, LabelDefault},
		{800, LabelWork}, // work boundary minus look-ahead
		{1750, LabelWork},
		{1799, LabelWork},
		{1800, LabelAbout},
		{2500, LabelAbout},
		{2800, LabelContact},
		{3600, LabelContact},
	}
	for _, tt := range tests {
		if got := ForOffset(tt.offset, anchors); got != tt.want {
			t.Errorf("ForOffset(%v) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestForOffsetNegative(t *testing.T) {
	anchors := Anchors{Work: 1000, About: 2000, Contact: 3000}
	if got := ForOffset(-50, anchors); got != LabelDefault {
		t.Errorf("negative offset should yield the default label, got %q", got)
	}
}
