package model

import (
	"errors"
	"testing"
)

func TestDisposition_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		current   Disposition
		submitted Disposition
		want      Disposition
		wantErr   error
	}{
		{"none + like", DispositionNone, DispositionLike, DispositionLike, nil},
		{"none + dislike", DispositionNone, DispositionDislike, DispositionDislike, nil},
		{"like + like inverts to none", DispositionLike, DispositionLike, DispositionNone, nil},
		{"like + dislike flips", DispositionLike, DispositionDislike, DispositionDislike, nil},
		{"dislike + dislike inverts to none", DispositionDislike, DispositionDislike, DispositionNone, nil},
		{"dislike + like flips", DispositionDislike, DispositionLike, DispositionLike, nil},
		{"none is not submittable", DispositionLike, DispositionNone, DispositionNone, ErrInvalidDisposition},
		{"unknown disposition rejected", DispositionNone, Disposition("meh"), DispositionNone, ErrInvalidDisposition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.current.Toggle(tt.submitted)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Toggle() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Toggle() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Toggle() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDisposition_ToggleTwiceReturnsToNone(t *testing.T) {
	for _, d := range []Disposition{DispositionLike, DispositionDislike} {
		first, err := DispositionNone.Toggle(d)
		if err != nil {
			t.Fatalf("Toggle() unexpected error = %v", err)
		}
		second, err := first.Toggle(d)
		if err != nil {
			t.Fatalf("Toggle() unexpected error = %v", err)
		}
		if second != DispositionNone {
			t.Errorf("toggling %s twice = %s, want none", d, second)
		}
	}
}

func TestDisposition_IsValid(t *testing.T) {
	valid := []Disposition{DispositionNone, DispositionLike, DispositionDislike}
	for _, d := range valid {
		if !d.IsValid() {
			t.Errorf("expected %s to be valid", d)
		}
	}
	if Disposition("LIKE").IsValid() {
		t.Error("expected case-sensitive dispositions")
	}
}
