package models

import "fmt"

// TargetKind names the kind of row a favorite points at.
type TargetKind string

const (
	TargetPlanet TargetKind = "planet"
	TargetPeople TargetKind = "people"
)

// FavoriteTarget is the single thing a favorite bookmarks: one planet or one person.
type FavoriteTarget struct {
	Kind TargetKind
	ID   uint
}

func PlanetTarget(id uint) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPlanet, ID: id}
}

func PeopleTarget(id uint) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPeople, ID: id}
}

func (t FavoriteTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

// Column returns the favorite column holding the target id.
func (t FavoriteTarget) Column() string {
	if t.Kind == TargetPlanet {
		return "planet_id"
	}
	return "people_id"
}

// Favorite matches the favorite table. Exactly one of PlanetID and PeopleID is set;
// the check constraint enforces it in the database and NewFavorite enforces it in Go.
type Favorite struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	UserID   uint  `gorm:"not null;index;uniqueIndex:idx_favorite_user_planet;uniqueIndex:idx_favorite_user_people" json:"user_id"`
	PlanetID *uint `gorm:"uniqueIndex:idx_favorite_user_planet;check:chk_favorite_single_target,(planet_id IS NULL) <> (people_id IS NULL)" json:"planet_id"`
	PeopleID *uint `gorm:"uniqueIndex:idx_favorite_user_people" json:"people_id"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Planet *Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
	People *People `gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string {
	return "favorite"
}

func NewFavorite(userID uint, target FavoriteTarget) (*Favorite, error) {
	id := target.ID
	fav := &Favorite{UserID: userID}
	switch target.Kind {
	case TargetPlanet:
		fav.PlanetID = &id
	case TargetPeople:
		fav.PeopleID = &id
	default:
		return nil, fmt.Errorf("unknown favorite target kind %q", target.Kind)
	}
	return fav, nil
}

// Target reports what the favorite points at. ok is false for a row that violates
// the single-target rule.
func (f *Favorite) Target() (target FavoriteTarget, ok bool) {
	switch {
	case f.PlanetID != nil && f.PeopleID == nil:
		return PlanetTarget(*f.PlanetID), true
	case f.PeopleID != nil && f.PlanetID == nil:
		return PeopleTarget(*f.PeopleID), true
	}
	return FavoriteTarget{}, false
}
