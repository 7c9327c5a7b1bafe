package classify

import (
	"testing"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
)

func TestFromTPPartition(t *testing.T) {
	b := bundle.New()

	cases := []struct {
		name   string
		tK, pB float64
		want   Region
	}{
		{"region1 compressed liquid", 300, 30, Region1},
		{"region2 low pressure steam", 300, 0.035, Region2},
		{"region2 above T13 below b23", 700, 1, Region2},
		{"region3 above T13 above b23", 650, 250, Region3},
		{"region2 above T32", 900, 50, Region2},
		{"region5 high temperature", 1500, 500, Region5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromTP(b, tc.tK, tc.pB)
			if err != nil {
				t.Fatalf("FromTP(%g, %g) error: %v", tc.tK, tc.pB, err)
			}
			if got != tc.want {
				t.Fatalf("FromTP(%g, %g) = %v, want %v", tc.tK, tc.pB, got, tc.want)
			}
		})
	}
}

func TestFromTPArrayMatchesFromTPAndMasks(t *testing.T) {
	b := bundle.New()

	tKs := []float64{300, 700, 650, 1500}
	pBs := []float64{30, 1, 250, 500}
	want := []Region{Region1, Region2, Region3, Region5}

	regions, masks, err := FromTPArray(b, tKs, pBs)
	if err != nil {
		t.Fatalf("FromTPArray error: %v", err)
	}
	for i, w := range want {
		if regions[i] != w {
			t.Fatalf("regions[%d] = %v, want %v", i, regions[i], w)
		}
		got, err := FromTP(b, tKs[i], pBs[i])
		if err != nil || got != w {
			t.Fatalf("FromTP(%g,%g) = %v, %v; want %v, nil", tKs[i], pBs[i], got, err, w)
		}
	}

	checkMask := func(name string, mask []int, want []int) {
		if len(mask) != len(want) {
			t.Fatalf("%s mask = %v, want %v", name, mask, want)
		}
		for i := range mask {
			if mask[i] != want[i] {
				t.Fatalf("%s mask = %v, want %v", name, mask, want)
			}
		}
	}
	checkMask("region1", masks.Region1, []int{0})
	checkMask("region2", masks.Region2, []int{1})
	checkMask("region3", masks.Region3, []int{2})
	checkMask("region5", masks.Region5, []int{3})
}

func TestFromTPArrayContinuesPastInvalidElement(t *testing.T) {
	b := bundle.New()

	tKs := []float64{300, 400, 3000}
	pBs := []float64{30, -1, 10}

	regions, masks, err := FromTPArray(b, tKs, pBs)
	if err == nil {
		t.Fatal("expected an error for the invalid elements, got none")
	}
	if regions[0] != Region1 {
		t.Fatalf("regions[0] = %v, want Region1", regions[0])
	}
	if regions[1] != RegionInvalid {
		t.Fatalf("regions[1] = %v, want RegionInvalid", regions[1])
	}
	if regions[2] != RegionInvalid {
		t.Fatalf("regions[2] = %v, want RegionInvalid", regions[2])
	}
	if len(masks.Region1) != 1 || masks.Region1[0] != 0 {
		t.Fatalf("masks.Region1 = %v, want [0]", masks.Region1)
	}
}

func TestFromTPRejectsInvalidInputs(t *testing.T) {
	b := bundle.New()

	cases := []struct {
		name   string
		tK, pB float64
	}{
		{"negative pressure", 400, -1},
		{"temperature above ceiling", 3000, 10},
		{"temperature below floor", 100, 10},
		{"region5 pressure ceiling exceeded", 1500, 600},
		{"overall pressure ceiling exceeded", 700, 1200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromTP(b, tc.tK, tc.pB); err == nil {
				t.Fatalf("FromTP(%g, %g) expected an error, got none", tc.tK, tc.pB)
			}
		})
	}
}
