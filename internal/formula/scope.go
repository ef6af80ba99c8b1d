package formula

import "StatLabApi/internal/data"

// AllTimeLabel is the request sentinel selecting all-time scope.
const AllTimeLabel = "all-time"

type scopeKind int

const (
	scopeSingleSeason scopeKind = iota
	scopeAllTime
)

// Scope decides which (player, season record) pairs a calculation walks.
type Scope struct {
	kind   scopeKind
	season string
}

func SingleSeason(label string) Scope {
	return Scope{kind: scopeSingleSeason, season: label}
}

func AllTime() Scope {
	return Scope{kind: scopeAllTime}
}

// ScopeFor maps the request-level season value onto a scope: absent or the
// all-time sentinel selects all-time, anything else selects that season.
func ScopeFor(season string) Scope {
	if season == "" || season == AllTimeLabel {
		return AllTime()
	}
	return SingleSeason(season)
}

func (s Scope) IsAllTime() bool {
	return s.kind == scopeAllTime
}

// Entry is one unit of evaluation work: a player, the season record to evaluate
// against, and the label identifying that season.
type Entry struct {
	Player *data.Player
	Record *data.SeasonRecord
	Season string
}

// Iterate expands players into evaluation entries.
//
// Single-season scope emits at most one entry per player: the record whose
// season label matches; players without that season are skipped. All-time scope
// emits one entry per recorded season and team stint; a player with no season
// history contributes their aggregate record once, labeled with their current
// season. No filtering happens here.
func (s Scope) Iterate(players []*data.Player) []Entry {
	entries := make([]Entry, 0, len(players))

	for _, p := range players {
		switch s.kind {
		case scopeSingleSeason:
			for i := range p.Seasons {
				if p.Seasons[i].Season == s.season {
					entries = append(entries, Entry{
						Player: p,
						Record: &p.Seasons[i],
						Season: p.Seasons[i].Season,
					})
				}
			}
		case scopeAllTime:
			if !p.HasSeasonHistory() {
				entries = append(entries, Entry{
					Player: p,
					Record: &p.Current,
					Season: p.CurrentSeason,
				})
				continue
			}
			for i := range p.Seasons {
				entries = append(entries, Entry{
					Player: p,
					Record: &p.Seasons[i],
					Season: p.Seasons[i].Season,
				})
			}
		}
	}

	return entries
}
