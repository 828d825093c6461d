package geo

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Al Barsha", "al barsha"},
		{"AL-BARSHA!!", "al barsha"},
		{"  Jumeirah   Lake   Towers ", "jumeirah lake towers"},
		{"Za'abeel", "za abeel"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveExactMatch(t *testing.T) {
	got := Resolve("Dubai Marina", "Dubai")
	want := areaCoordinates["Dubai Marina"]
	if got != want {
		t.Errorf("exact match gave %+v, want %+v", got, want)
	}
}

func TestResolveNormalizedMatch(t *testing.T) {
	got := Resolve("dubai-marina", "Dubai")
	want := areaCoordinates["Dubai Marina"]
	if got != want {
		t.Errorf("normalized match gave %+v, want %+v", got, want)
	}
}

func TestResolvePrefixMatch(t *testing.T) {
	got := Resolve("Al Barsha 2", "Dubai")
	want := areaCoordinates["Al Barsha"]
	if got != want {
		t.Errorf("prefix match gave %+v, want %+v", got, want)
	}
}

func TestResolveSubstringMatch(t *testing.T) {
	got := Resolve("Opposite Festival City Mall", "Dubai")
	want := areaCoordinates["Festival City"]
	if got != want {
		t.Errorf("substring match gave %+v, want %+v", got, want)
	}
}

func TestResolveExactBeatsFuzzy(t *testing.T) {
	// "Al Barsha 1" is its own table entry; the prefix rule toward
	// "Al Barsha" must not fire first.
	got := Resolve("Al Barsha 1", "Dubai")
	want := areaCoordinates["Al Barsha 1"]
	if got != want {
		t.Errorf("exact entry lost to a fuzzy rule: %+v", got)
	}
}

func TestResolveFallbackDeterministic(t *testing.T) {
	first := Resolve("Totally Unknown Area XYZ", "Dubai")
	second := Resolve("Totally Unknown Area XYZ", "Dubai")
	if first != second {
		t.Fatalf("fallback not deterministic: %+v vs %+v", first, second)
	}

	centroid := cityCentroids["dubai"]
	if first.Lng <= centroid.Lng {
		t.Errorf("fallback must move east of the centroid, got lng %v vs %v", first.Lng, centroid.Lng)
	}
	if first.Lat > centroid.Lat {
		t.Errorf("fallback must not move north, got lat %v vs %v", first.Lat, centroid.Lat)
	}
}

func TestResolveFallbackUsesCityCentroid(t *testing.T) {
	got := Resolve("Nowhere In Particular Qqq", "Sharjah")
	sharjah := cityCentroids["sharjah"]
	if got.Lng <= sharjah.Lng || got.Lng > sharjah.Lng+0.06 {
		t.Errorf("expected offset near Sharjah centroid, got %+v", got)
	}
}

func TestResolveUnknownCityDefaultsToDubai(t *testing.T) {
	got := Resolve("Nowhere In Particular Qqq", "Atlantis")
	dubai := cityCentroids["dubai"]
	if got.Lng <= dubai.Lng || got.Lng > dubai.Lng+0.06 {
		t.Errorf("expected Dubai fallback, got %+v", got)
	}
}

func TestKnownAreasSorted(t *testing.T) {
	areas := KnownAreas()
	if len(areas) < 100 {
		t.Fatalf("reference table suspiciously small: %d entries", len(areas))
	}
	for i := 1; i < len(areas); i++ {
		if areas[i-1] > areas[i] {
			t.Fatalf("areas not sorted at %d: %q > %q", i, areas[i-1], areas[i])
		}
	}
}
