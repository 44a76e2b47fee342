package models

// The JSON shapes below are the public representation of each table. Field order is
// the order clients see.

type UserJSON struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type PeopleJSON struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Height string `json:"height"`
	Gender string `json:"gender"`
}

type PlanetJSON struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Population string `json:"population"`
	Terrain    string `json:"terrain"`
}

// FavoriteJSON embeds the bookmarked row instead of its id. The side that is not
// bookmarked is an explicit null.
type FavoriteJSON struct {
	ID     uint        `json:"id"`
	UserID uint        `json:"user_id"`
	Planet *PlanetJSON `json:"planet"`
	People *PeopleJSON `json:"people"`
}

// Password is never part of the serialized user.
func (u *User) Serialize() UserJSON {
	return UserJSON{ID: u.ID, Email: u.Email, IsActive: u.IsActive}
}

func (p *People) Serialize() PeopleJSON {
	return PeopleJSON{ID: p.ID, Name: p.Name, Height: p.Height, Gender: p.Gender}
}

func (p *Planet) Serialize() PlanetJSON {
	return PlanetJSON{ID: p.ID, Name: p.Name, Population: p.Population, Terrain: p.Terrain}
}

// Serialize expects Planet and People to be preloaded when their ids are set.
func (f *Favorite) Serialize() FavoriteJSON {
	out := FavoriteJSON{ID: f.ID, UserID: f.UserID}
	if f.Planet != nil {
		planet := f.Planet.Serialize()
		out.Planet = &planet
	}
	if f.People != nil {
		person := f.People.Serialize()
		out.People = &person
	}
	return out
}

func SerializeUsers(users []User) []UserJSON {
	out := make([]UserJSON, 0, len(users))
	for i := range users {
		out = append(out, users[i].Serialize())
	}
	return out
}

func SerializePeople(people []People) []PeopleJSON {
	out := make([]PeopleJSON, 0, len(people))
	for i := range people {
		out = append(out, people[i].Serialize())
	}
	return out
}

func SerializePlanets(planets []Planet) []PlanetJSON {
	out := make([]PlanetJSON, 0, len(planets))
	for i := range planets {
		out = append(out, planets[i].Serialize())
	}
	return out
}

func SerializeFavorites(favorites []Favorite) []FavoriteJSON {
	out := make([]FavoriteJSON, 0, len(favorites))
	for i := range favorites {
		out = append(out, favorites[i].Serialize())
	}
	return out
}
