package models

// PlayerSeed is the caller-supplied part of a player at game creation;
// the engine fills in the rest.
type PlayerSeed struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Avatar string `json:"avatar,omitempty"`
}

type Player struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Avatar    string `json:"avatar,omitempty"`
	Position  int    `json:"position"`
	Money     int    `json:"money"`
	InJail    bool   `json:"inJail"`
	JailTurns int    `json:"jailTurns"`
	IsActive  bool   `json:"isActive"`
	JailCards int    `json:"jailCards"`
}
