package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{ID: 7, Email: "luke@rebellion.org", Password: "secret", IsActive: true}

	raw, err := json.Marshal(u.Serialize())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":7,"email":"luke@rebellion.org","is_active":true}`, string(raw))
	assert.NotContains(t, string(raw), "secret")
}

func TestPeopleAndPlanetSerializeFieldOrder(t *testing.T) {
	p := People{ID: 1, Name: "Luke", Height: "172", Gender: "male"}
	raw, err := json.Marshal(p.Serialize())
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"name":"Luke","height":"172","gender":"male"}`, string(raw))

	pl := Planet{ID: 2, Name: "Tatooine", Population: "200000", Terrain: "desert"}
	raw, err = json.Marshal(pl.Serialize())
	require.NoError(t, err)
	assert.Equal(t, `{"id":2,"name":"Tatooine","population":"200000","terrain":"desert"}`, string(raw))
}

func TestFavoriteSerializeNestsPlanet(t *testing.T) {
	planet := &Planet{ID: 3, Name: "Hoth", Population: "unknown", Terrain: "tundra"}
	fav, err := NewFavorite(1, PlanetTarget(planet.ID))
	require.NoError(t, err)
	fav.ID = 10
	fav.Planet = planet

	out := fav.Serialize()

	require.NotNil(t, out.Planet)
	assert.Equal(t, planet.Serialize(), *out.Planet)
	assert.Nil(t, out.People)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 10,
		"user_id": 1,
		"planet": {"id":3,"name":"Hoth","population":"unknown","terrain":"tundra"},
		"people": null
	}`, string(raw))
}

func TestFavoriteSerializeWithoutPlanetIsNull(t *testing.T) {
	person := &People{ID: 4, Name: "Leia", Height: "150", Gender: "female"}
	fav, err := NewFavorite(2, PeopleTarget(person.ID))
	require.NoError(t, err)
	fav.People = person

	raw, err := json.Marshal(fav.Serialize())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "planet")
	assert.Nil(t, decoded["planet"])
	assert.Equal(t, "Leia", decoded["people"].(map[string]any)["name"])
}

func TestNewFavoriteSetsExactlyOneTarget(t *testing.T) {
	fav, err := NewFavorite(1, PlanetTarget(5))
	require.NoError(t, err)
	require.NotNil(t, fav.PlanetID)
	assert.Equal(t, uint(5), *fav.PlanetID)
	assert.Nil(t, fav.PeopleID)

	target, ok := fav.Target()
	assert.True(t, ok)
	assert.Equal(t, PlanetTarget(5), target)

	fav, err = NewFavorite(1, PeopleTarget(6))
	require.NoError(t, err)
	assert.Nil(t, fav.PlanetID)
	target, ok = fav.Target()
	assert.True(t, ok)
	assert.Equal(t, "people_id", target.Column())

	_, err = NewFavorite(1, FavoriteTarget{Kind: "starship", ID: 1})
	assert.Error(t, err)
}

func TestFavoriteTargetRejectsAmbiguousRows(t *testing.T) {
	one, two := uint(1), uint(2)

	_, ok := (&Favorite{PlanetID: &one, PeopleID: &two}).Target()
	assert.False(t, ok)

	_, ok = (&Favorite{}).Target()
	assert.False(t, ok)
}

func TestSerializeListsNeverNil(t *testing.T) {
	assert.NotNil(t, SerializeFavorites(nil))
	assert.Len(t, SerializePeople([]People{{ID: 1}, {ID: 2}}), 2)

	raw, err := json.Marshal(SerializeUsers(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestSessionTTL(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	assert.Equal(t, time.Minute, s.TTL(now))

	s.ExpiresAt = now.Add(-time.Minute)
	assert.Equal(t, time.Duration(0), s.TTL(now))
}
