package domain

import "strings"

// ShotIdentity names the show, shot and artist a tree is built for. Values are
// used verbatim as path segments.
type ShotIdentity struct {
	Show   string
	Shot   string
	Artist string
}

func NewShotIdentity(show, shot, artist string) ShotIdentity {
	return ShotIdentity{
		Show:   strings.TrimSpace(show),
		Shot:   strings.TrimSpace(shot),
		Artist: strings.TrimSpace(artist),
	}
}

func (identity ShotIdentity) Missing() []string {
	missing := []string{}
	if strings.TrimSpace(identity.Show) == "" {
		missing = append(missing, FieldShow)
	}
	if strings.TrimSpace(identity.Shot) == "" {
		missing = append(missing, FieldShot)
	}
	if strings.TrimSpace(identity.Artist) == "" {
		missing = append(missing, FieldArtist)
	}
	return missing
}

func (identity ShotIdentity) Validate() error {
	if missing := identity.Missing(); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
