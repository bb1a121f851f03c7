package accuracy

import (
	"fmt"
	"strings"
)

// Profile selects which dimensions are grouped and which are required.
type Profile struct {
	Name       string
	Dimensions []Dimension
	Required   []Dimension
}

var (
	// ProfileFull groups on every dimension; split is optional.
	ProfileFull = Profile{
		Name:       "full",
		Dimensions: Dimensions,
		Required:   []Dimension{DimQuestionType, DimDifficulty, DimMovementType, DimFrameCount},
	}
	// ProfileCounting matches the object counting benchmark metadata.
	ProfileCounting = Profile{
		Name:       "counting",
		Dimensions: []Dimension{DimQuestionType, DimDifficulty, DimMovementType, DimFrameCount},
		Required:   []Dimension{DimQuestionType, DimDifficulty, DimMovementType, DimFrameCount},
	}
	// ProfilePerspective matches the perspective-taking benchmark metadata.
	ProfilePerspective = Profile{
		Name:       "perspective",
		Dimensions: []Dimension{DimQuestionType, DimSplit},
		Required:   []Dimension{DimQuestionType, DimSplit},
	}
)

var profiles = []Profile{ProfileFull, ProfileCounting, ProfilePerspective}

// LookupProfile returns a built-in profile by name.
func LookupProfile(name string) (Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ProfileFull, nil
	}
	names := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		if profile.Name == normalized {
			return profile, nil
		}
		names = append(names, profile.Name)
	}
	return Profile{}, fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(names, ", "))
}

// Groups reports whether the profile groups on dim.
func (p Profile) Groups(dim Dimension) bool {
	return containsDim(p.Dimensions, dim)
}

// Requires reports whether the profile requires dim on every item.
func (p Profile) Requires(dim Dimension) bool {
	return containsDim(p.Required, dim)
}

func containsDim(dims []Dimension, dim Dimension) bool {
	for _, candidate := range dims {
		if candidate == dim {
			return true
		}
	}
	return false
}
