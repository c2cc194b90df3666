package matching

import "testing"

func TestCalculateLocationMatch_RemoteShortCircuits(t *testing.T) {
	res := CalculateLocationMatch(Location{}, nil, true)
	if res.Type != LocationMatchRemote || res.Score != 100 {
		t.Fatalf("expected remote/100, got %s/%d", res.Type, res.Score)
	}

	res = CalculateLocationMatch(
		Location{City: "Berlin", Country: "Germany"},
		[]Location{{City: "Tokyo", Country: "Japan"}},
		true,
	)
	if res.Type != LocationMatchRemote || res.Score != 100 {
		t.Fatalf("remote must ignore locations, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateLocationMatch_Tiers(t *testing.T) {
	candidate := Location{City: "Austin", State: "TX", Country: "USA"}

	res := CalculateLocationMatch(candidate, []Location{{City: " austin ", State: "tx", Country: "usa"}}, false)
	if res.Type != LocationMatchExact || res.Score != 100 {
		t.Fatalf("expected exact/100, got %s/%d", res.Type, res.Score)
	}

	res = CalculateLocationMatch(candidate, []Location{{City: "Dallas", State: "TX", Country: "USA"}}, false)
	if res.Type != LocationMatchSameState || res.Score != 80 {
		t.Fatalf("expected same_state/80, got %s/%d", res.Type, res.Score)
	}

	res = CalculateLocationMatch(candidate, []Location{{City: "Seattle", State: "WA", Country: "USA"}}, false)
	if res.Type != LocationMatchSameCountry || res.Score != 60 {
		t.Fatalf("expected same_country/60, got %s/%d", res.Type, res.Score)
	}

	res = CalculateLocationMatch(candidate, []Location{{City: "Toronto", State: "ON", Country: "Canada"}}, false)
	if res.Type != LocationMatchNone || res.Score != 30 {
		t.Fatalf("expected no_match/30, got %s/%d", res.Type, res.Score)
	}
}

func TestCalculateLocationMatch_SameStateNeedsBothStates(t *testing.T) {
	res := CalculateLocationMatch(
		Location{City: "Austin", Country: "USA"},
		[]Location{{City: "Dallas", State: "TX", Country: "USA"}},
		false,
	)
	if res.Type != LocationMatchSameCountry {
		t.Fatalf("expected same_country when candidate state empty, got %s", res.Type)
	}
}

func TestCalculateLocationMatch_FirstExactWins(t *testing.T) {
	candidate := Location{City: "Austin", State: "TX", Country: "USA"}
	res := CalculateLocationMatch(candidate, []Location{
		{City: "Dallas", State: "TX", Country: "USA"},
		{City: "Austin", State: "TX", Country: "USA"},
	}, false)
	if res.Type != LocationMatchExact {
		t.Fatalf("expected exact to beat earlier same_state, got %s", res.Type)
	}
}

func TestCalculateLocationMatch_EmptyJobLocations(t *testing.T) {
	res := CalculateLocationMatch(Location{City: "Austin", Country: "USA"}, nil, false)
	if res.Type != LocationMatchNone || res.Score != 30 {
		t.Fatalf("expected no_match floor, got %s/%d", res.Type, res.Score)
	}
}

func TestEstimateDistanceKm_Buckets(t *testing.T) {
	candidate := Location{City: "Austin", State: "TX", Country: "USA"}

	cases := []struct {
		jobs   []Location
		remote bool
		want   int
	}{
		{[]Location{{City: "Austin", State: "TX", Country: "USA"}}, false, 0},
		{nil, true, 0},
		{[]Location{{City: "Dallas", State: "TX", Country: "USA"}}, false, 100},
		{[]Location{{City: "Seattle", State: "WA", Country: "USA"}}, false, 500},
		{[]Location{{City: "Tokyo", Country: "Japan"}}, false, 5000},
	}
	for i, c := range cases {
		if got := EstimateDistanceKm(candidate, c.jobs, c.remote); got != c.want {
			t.Fatalf("case %d: got %d, want %d", i, got, c.want)
		}
	}
}
