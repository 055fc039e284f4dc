package leaderboard

import (
	"strconv"
	"strings"
	"unicode"
)

// Team is the roster a player belongs to ("M" or "W").
type Team string

// Country is the national side ("Canada" or "USA").
type Country string

// Position is the playing position ("Goalie", "Defence" or "Forward").
type Position string

// Player is one leaderboard row.
type Player struct {
	ID          int
	Team        Team
	Country     Country
	FirstName   string
	LastName    string
	Weight      float64
	Height      float64
	DateOfBirth string // YYYY-MM-DD
	Hometown    string
	Province    string
	Position    Position
	Age         int
	HeightFt    float64
	Htln        float64
	BMI         float64
}

// FullName joins first and last name.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type fieldSetter func(p *Player, v string)

var playerColumns = map[string]fieldSetter{
	"id":          func(p *Player, v string) { p.ID = atoi(v) },
	"team":        func(p *Player, v string) { p.Team = Team(v) },
	"country":     func(p *Player, v string) { p.Country = Country(v) },
	"firstname":   func(p *Player, v string) { p.FirstName = v },
	"lastname":    func(p *Player, v string) { p.LastName = v },
	"weight":      func(p *Player, v string) { p.Weight = atof(v) },
	"height":      func(p *Player, v string) { p.Height = atof(v) },
	"dateofbirth": func(p *Player, v string) { p.DateOfBirth = v },
	"hometown":    func(p *Player, v string) { p.Hometown = v },
	"province":    func(p *Player, v string) { p.Province = v },
	"position":    func(p *Player, v string) { p.Position = Position(v) },
	"age":         func(p *Player, v string) { p.Age = atoi(v) },
	"heightft":    func(p *Player, v string) { p.HeightFt = atof(v) },
	"htln":        func(p *Player, v string) { p.Htln = atof(v) },
	"bmi":         func(p *Player, v string) { p.BMI = atof(v) },
}

// DecodePlayers maps rows onto players using the first row as the header.
// Unknown columns are ignored, blank rows skipped and malformed numbers
// decode as zero.
func DecodePlayers(rows [][]string) []Player {
	if len(rows) < 2 {
		return nil
	}

	setters := make([]fieldSetter, len(rows[0]))
	for i, header := range rows[0] {
		setters[i] = playerColumns[normalizeHeader(header)]
	}

	var players []Player
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		var p Player
		for i, cell := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](&p, strings.TrimSpace(cell))
			}
		}
		players = append(players, p)
	}
	return players
}

// normalizeHeader lowercases a header and drops everything but letters and
// digits, so "First Name" and "firstName" both become "firstname".
func normalizeHeader(h string) string {
	var sb strings.Builder
	for _, r := range h {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Spreadsheet integers sometimes arrive as "12.0"
	return int(atof(s))
}

func atof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
