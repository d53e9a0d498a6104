package source

// QualifiedTeam is one row of the qualification table.
type QualifiedTeam struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	SortValue string `json:"sort_value"`
}

// Team is the fully assembled view of a qualified side, combining the
// qualification table, the ranking table, team pages and curated data.
type Team struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Flag          string  `json:"flag"`
	FIFARank      int     `json:"fifa_rank"`
	FIFAPoints    int     `json:"fifa_points"`
	WorldCupWins  int     `json:"world_cup_wins"`
	LastWorldCup  string  `json:"last_world_cup"`
	HomeAdvantage bool    `json:"home_advantage"`
	Confederation string  `json:"confederation"`
	OverallRating float64 `json:"ovr_rating"`
}

// TeamInfo is the summary scraped from a national team page.
type TeamInfo struct {
	Name    string `json:"name"`
	Flag    string `json:"flag"`
	Extract string `json:"extract"`
}

// RankingRow is one entry parsed from the world ranking table.
type RankingRow struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
}

// RankingEntry is a ranking row joined with team presentation data. It is
// the payload shape returned by the fetch-rankings operation.
type RankingEntry struct {
	Rank          int    `json:"rank"`
	Team          string `json:"team"`
	Points        int    `json:"points"`
	Confederation string `json:"confederation"`
	Crest         string `json:"crest"`
	ShortName     string `json:"shortName"`
}

// TournamentResult holds the podium of one World Cup edition.
type TournamentResult struct {
	Winner      string `json:"winner"`
	RunnerUp    string `json:"runner_up"`
	Third       string `json:"third"`
	Fourth      string `json:"fourth"`
	Host        string `json:"host"`
	GoldenBall  string `json:"golden_ball"`
	GoldenGlove string `json:"golden_glove"`
}

// Player is a squad member with the stats the award scorers consume.
// Zero stats mean "unknown"; scoring applies its own defaults.
type Player struct {
	Name        string   `json:"name"`
	Team        string   `json:"team"`
	Position    string   `json:"position,omitempty"`
	Goals       int      `json:"goals"`
	Assists     int      `json:"assists"`
	Rating      float64  `json:"rating"`
	CleanSheets int      `json:"clean_sheets"`
	Saves       int      `json:"saves"`
	Age         int      `json:"age"`
	Caps        int      `json:"caps"`
	Honours     []string `json:"honours,omitempty"`
	Crest       string   `json:"crest"`
}

// PlayerInfo is what a player biography page yields after parsing.
// Goals and caps are pointers so "absent from the page" stays
// distinguishable from an actual zero.
type PlayerInfo struct {
	NationalGoals  *int     `json:"national_goals"`
	NationalCaps   *int     `json:"national_caps"`
	Position       string   `json:"position,omitempty"`
	Honours        []string `json:"honours"`
	RatingEstimate float64  `json:"rating_estimate"`
}
