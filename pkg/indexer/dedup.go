package indexer

import (
	"strings"

	"github.com/mfonda/simhash"
)

type Duplicate struct {
	First    *Profile
	Second   *Profile
	Distance uint8
}

func Fingerprint(profile *Profile) uint64 {
	text := strings.Join(profile.Freqs.Expand(), " ")
	return simhash.Simhash(simhash.NewWordFeatureSet([]byte(text)))
}

// FindNearDuplicates pairs up profiles whose fingerprints differ in at most
// maxDistance bits. Profiles without words are ignored.
func FindNearDuplicates(profiles []*Profile, maxDistance uint8) []Duplicate {
	type entry struct {
		profile *Profile
		hash    uint64
	}

	entries := make([]entry, 0, len(profiles))
	for _, profile := range profiles {
		if len(profile.Freqs) == 0 {
			continue
		}
		entries = append(entries, entry{profile: profile, hash: Fingerprint(profile)})
	}

	var dups []Duplicate
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			distance := simhash.Compare(entries[i].hash, entries[j].hash)
			if distance <= maxDistance {
				dups = append(dups, Duplicate{
					First:    entries[i].profile,
					Second:   entries[j].profile,
					Distance: distance,
				})
			}
		}
	}
	return dups
}
