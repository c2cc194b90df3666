package matching

import (
	"fmt"
	"strings"
)

type LocationMatchType string

const (
	LocationMatchExact       LocationMatchType = "exact"
	LocationMatchSameState   LocationMatchType = "same_state"
	LocationMatchSameCountry LocationMatchType = "same_country"
	LocationMatchRemote      LocationMatchType = "remote"
	LocationMatchNone        LocationMatchType = "no_match"
)

type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.State, l.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

type LocationMatchResult struct {
	CandidateLocation Location          `json:"candidate_location"`
	JobLocations      []Location        `json:"job_locations,omitempty"`
	RemoteOK          bool              `json:"remote_ok"`
	Type              LocationMatchType `json:"type"`
	Score             int               `json:"score"`
	Explanation       string            `json:"explanation"`
}

// CalculateLocationMatch is categorical: remote short-circuits everything,
// otherwise job locations are checked in order for the best tier.
func CalculateLocationMatch(candidate Location, jobLocations []Location, remoteOK bool) LocationMatchResult {
	res := LocationMatchResult{
		CandidateLocation: candidate,
		JobLocations:      jobLocations,
		RemoteOK:          remoteOK,
	}

	if remoteOK {
		res.Type = LocationMatchRemote
		res.Score = 100
		res.Explanation = "Position is remote-friendly"
		return res
	}

	for _, jl := range jobLocations {
		if sameLocationPart(candidate.City, jl.City) && sameLocationPart(candidate.State, jl.State) && sameLocationPart(candidate.Country, jl.Country) {
			res.Type = LocationMatchExact
			res.Score = 100
			res.Explanation = fmt.Sprintf("Candidate is located in %s", jl)
			return res
		}
	}

	for _, jl := range jobLocations {
		if candidate.State == "" || jl.State == "" {
			continue
		}
		if sameLocationPart(candidate.State, jl.State) && sameLocationPart(candidate.Country, jl.Country) {
			res.Type = LocationMatchSameState
			res.Score = 80
			res.Explanation = fmt.Sprintf("Candidate is in the same state as %s", jl)
			return res
		}
	}

	for _, jl := range jobLocations {
		if sameLocationPart(candidate.Country, jl.Country) {
			res.Type = LocationMatchSameCountry
			res.Score = 60
			res.Explanation = fmt.Sprintf("Candidate is in the same country as %s", jl)
			return res
		}
	}

	res.Type = LocationMatchNone
	res.Score = 30
	res.Explanation = "Candidate is outside the job's locations"
	return res
}

// EstimateDistanceKm returns a coarse bucket by match tier. There is no
// geocoding; this is a placeholder until a real distance source exists.
func EstimateDistanceKm(candidate Location, jobLocations []Location, remoteOK bool) int {
	switch CalculateLocationMatch(candidate, jobLocations, remoteOK).Type {
	case LocationMatchRemote, LocationMatchExact:
		return 0
	case LocationMatchSameState:
		return 100
	case LocationMatchSameCountry:
		return 500
	default:
		return 5000
	}
}

func sameLocationPart(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
