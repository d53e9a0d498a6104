package source

// Static data used when the live fetch or parse yields nothing usable.
// Values mirror the encyclopedia tables as of the 2026 qualification cycle.

// hosts2026 are the co-host nations, which receive the home-advantage factor.
var hosts2026 = map[string]bool{"USA": true, "Mexico": true, "Canada": true}

// confederationByTeam covers the qualified sides across the 2026 zones.
var confederationByTeam = map[string]string{
	"Argentina": "CONMEBOL", "Brazil": "CONMEBOL", "Uruguay": "CONMEBOL", "Colombia": "CONMEBOL",
	"Ecuador": "CONMEBOL", "Paraguay": "CONMEBOL", "USA": "CONCACAF", "Mexico": "CONCACAF",
	"Canada": "CONCACAF", "Panama": "CONCACAF", "Haiti": "CONCACAF", "Curaçao": "CONCACAF",
	"France": "UEFA", "England": "UEFA", "Spain": "UEFA", "Germany": "UEFA", "Netherlands": "UEFA",
	"Portugal": "UEFA", "Belgium": "UEFA", "Croatia": "UEFA", "Norway": "UEFA", "Austria": "UEFA",
	"Switzerland": "UEFA", "Scotland": "UEFA", "Italy": "UEFA",
	"Japan": "AFC", "South Korea": "AFC", "Australia": "AFC", "Iran": "AFC", "Uzbekistan": "AFC",
	"Jordan": "AFC", "Saudi Arabia": "AFC", "Qatar": "AFC", "New Zealand": "OFC",
	"Morocco": "CAF", "Senegal": "CAF", "Tunisia": "CAF", "Egypt": "CAF", "Algeria": "CAF",
	"Ghana": "CAF", "Cape Verde": "CAF", "South Africa": "CAF", "Ivory Coast": "CAF",
}

// worldCupWins counts titles per nation.
var worldCupWins = map[string]int{
	"Brazil": 5, "Germany": 4, "Italy": 4, "Argentina": 3, "France": 2, "Uruguay": 2,
	"England": 1, "Spain": 1,
}

// knownWorldCups holds curated podium results for the last three tournaments.
var knownWorldCups = map[int]TournamentResult{
	2022: {Winner: "Argentina", RunnerUp: "France", Third: "Croatia", Fourth: "Morocco", Host: "Qatar", GoldenBall: "Lionel Messi", GoldenGlove: "Emiliano Martinez"},
	2018: {Winner: "France", RunnerUp: "Croatia", Third: "Belgium", Fourth: "England", Host: "Russia", GoldenBall: "Luka Modric", GoldenGlove: "Thibaut Courtois"},
	2014: {Winner: "Germany", RunnerUp: "Argentina", Third: "Netherlands", Fourth: "Brazil", Host: "Brazil", GoldenBall: "Lionel Messi", GoldenGlove: "Manuel Neuer"},
}

// qualifiedFallback lists hosts plus likely qualifiers for when the
// qualification page parse returns empty.
var qualifiedFallback = []QualifiedTeam{
	{Name: "USA", Code: "USA", SortValue: "united states"},
	{Name: "Mexico", Code: "MEX", SortValue: "mexico"},
	{Name: "Canada", Code: "CAN", SortValue: "canada"},
	{Name: "Argentina", Code: "ARG", SortValue: "argentina"},
	{Name: "Brazil", Code: "BRA", SortValue: "brazil"},
	{Name: "Uruguay", Code: "URU", SortValue: "uruguay"},
	{Name: "Colombia", Code: "COL", SortValue: "colombia"},
	{Name: "Ecuador", Code: "ECU", SortValue: "ecuador"},
	{Name: "France", Code: "FRA", SortValue: "france"},
	{Name: "England", Code: "ENG", SortValue: "england"},
	{Name: "Spain", Code: "ESP", SortValue: "spain"},
	{Name: "Germany", Code: "GER", SortValue: "germany"},
	{Name: "Netherlands", Code: "NED", SortValue: "netherlands"},
	{Name: "Portugal", Code: "POR", SortValue: "portugal"},
	{Name: "Belgium", Code: "BEL", SortValue: "belgium"},
	{Name: "Croatia", Code: "CRO", SortValue: "croatia"},
	{Name: "Japan", Code: "JPN", SortValue: "japan"},
	{Name: "South Korea", Code: "KOR", SortValue: "south korea"},
	{Name: "Australia", Code: "AUS", SortValue: "australia"},
	{Name: "Morocco", Code: "MAR", SortValue: "morocco"},
	{Name: "Senegal", Code: "SEN", SortValue: "senegal"},
}

// rankingFallbackNames orders teams by their typical FIFA rank; points decay
// linearly with a floor so derived scores stay plausible.
var rankingFallbackNames = []string{
	"Argentina", "France", "Brazil", "England", "Belgium", "Portugal", "Netherlands", "Spain",
	"Italy", "Croatia", "USA", "Morocco", "Mexico", "Switzerland", "Uruguay", "Germany",
	"Colombia", "Senegal", "Japan", "Iran", "Denmark", "South Korea", "Australia", "Ukraine",
}

func rankingFallback() []RankingRow {
	rows := make([]RankingRow, 0, len(rankingFallbackNames))
	for i, name := range rankingFallbackNames {
		points := 1850 - i*25
		if points < 1200 {
			points = 1200
		}
		rows = append(rows, RankingRow{Rank: i + 1, Team: name, Points: points})
	}
	return rows
}

// nameBySortValue maps the qualification table's data-sort-value to a display name.
var nameBySortValue = map[string]string{
	"canada": "Canada", "mexico": "Mexico", "united states": "United States", "usa": "United States",
	"japan": "Japan", "new zealand": "New Zealand", "iran": "Iran", "argentina": "Argentina",
	"uzbekistan": "Uzbekistan", "south korea": "South Korea", "jordan": "Jordan", "australia": "Australia",
	"brazil": "Brazil", "ecuador": "Ecuador", "uruguay": "Uruguay", "colombia": "Colombia",
	"paraguay": "Paraguay", "morocco": "Morocco", "tunisia": "Tunisia", "egypt": "Egypt",
	"algeria": "Algeria", "ghana": "Ghana", "cape verde": "Cape Verde", "south africa": "South Africa",
	"qatar": "Qatar", "england": "England", "saudi arabia": "Saudi Arabia", "ivory coast": "Ivory Coast",
	"senegal": "Senegal", "france": "France", "croatia": "Croatia", "portugal": "Portugal",
	"norway": "Norway", "germany": "Germany", "netherlands": "Netherlands", "belgium": "Belgium",
	"austria": "Austria", "switzerland": "Switzerland", "spain": "Spain", "scotland": "Scotland",
	"panama": "Panama", "haiti": "Haiti", "curacao": "Curaçao",
}

// flagByCode holds Wikimedia Commons flag thumbnails by FIFA code.
var flagByCode = map[string]string{
	"ARG": "https://upload.wikimedia.org/wikipedia/commons/thumb/1/1a/Flag_of_Argentina.svg/50px-Flag_of_Argentina.svg.png",
	"FRA": "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c3/Flag_of_France.svg/50px-Flag_of_France.svg.png",
	"BRA": "https://upload.wikimedia.org/wikipedia/commons/thumb/0/05/Flag_of_Brazil.svg/50px-Flag_of_Brazil.svg.png",
	"ENG": "https://upload.wikimedia.org/wikipedia/commons/thumb/b/be/Flag_of_England.svg/50px-Flag_of_England.svg.png",
	"ESP": "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9a/Flag_of_Spain.svg/50px-Flag_of_Spain.svg.png",
	"GER": "https://upload.wikimedia.org/wikipedia/commons/thumb/b/ba/Flag_of_Germany.svg/50px-Flag_of_Germany.svg.png",
	"NED": "https://upload.wikimedia.org/wikipedia/commons/thumb/2/20/Flag_of_the_Netherlands.svg/50px-Flag_of_the_Netherlands.svg.png",
	"POR": "https://upload.wikimedia.org/wikipedia/commons/thumb/5/5c/Flag_of_Portugal.svg/50px-Flag_of_Portugal.svg.png",
	"BEL": "https://upload.wikimedia.org/wikipedia/commons/thumb/6/65/Flag_of_Belgium.svg/50px-Flag_of_Belgium.svg.png",
	"CRO": "https://upload.wikimedia.org/wikipedia/commons/thumb/1/17/Flag_of_Croatia.svg/50px-Flag_of_Croatia.svg.png",
	"URU": "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fe/Flag_of_Uruguay.svg/50px-Flag_of_Uruguay.svg.png",
	"USA": "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a4/Flag_of_the_United_States.svg/50px-Flag_of_the_United_States.svg.png",
	"MEX": "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fc/Flag_of_Mexico.svg/50px-Flag_of_Mexico.svg.png",
	"JPN": "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9e/Flag_of_Japan.svg/50px-Flag_of_Japan.svg.png",
	"KOR": "https://upload.wikimedia.org/wikipedia/commons/thumb/0/09/Flag_of_South_Korea.svg/50px-Flag_of_South_Korea.svg.png",
	"MAR": "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2c/Flag_of_Morocco.svg/50px-Flag_of_Morocco.svg.png",
	"SEN": "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fd/Flag_of_Senegal.svg/50px-Flag_of_Senegal.svg.png",
	"COL": "https://upload.wikimedia.org/wikipedia/commons/thumb/2/27/Flag_of_Colombia.svg/50px-Flag_of_Colombia.svg.png",
	"AUS": "https://upload.wikimedia.org/wikipedia/commons/thumb/8/88/Flag_of_Australia_%28converted%29.svg/50px-Flag_of_Australia_%28converted%29.svg.png",
	"CAN": "https://upload.wikimedia.org/wikipedia/commons/thumb/c/cf/Flag_of_Canada.svg/50px-Flag_of_Canada.svg.png",
	"ECU": "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e8/Flag_of_Ecuador.svg/50px-Flag_of_Ecuador.svg.png",
	"PAR": "https://upload.wikimedia.org/wikipedia/commons/thumb/2/27/Flag_of_Paraguay.svg/50px-Flag_of_Paraguay.svg.png",
	"TUN": "https://upload.wikimedia.org/wikipedia/commons/thumb/c/ce/Flag_of_Tunisia.svg/50px-Flag_of_Tunisia.svg.png",
	"EGY": "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fe/Flag_of_Egypt.svg/50px-Flag_of_Egypt.svg.png",
	"ALG": "https://upload.wikimedia.org/wikipedia/commons/thumb/7/77/Flag_of_Algeria.svg/50px-Flag_of_Algeria.svg.png",
	"GHA": "https://upload.wikimedia.org/wikipedia/commons/thumb/1/19/Flag_of_Ghana.svg/50px-Flag_of_Ghana.svg.png",
	"CPV": "https://upload.wikimedia.org/wikipedia/commons/thumb/3/38/Flag_of_Cape_Verde.svg/50px-Flag_of_Cape_Verde.svg.png",
	"RSA": "https://upload.wikimedia.org/wikipedia/commons/thumb/a/af/Flag_of_South_Africa.svg/50px-Flag_of_South_Africa.svg.png",
	"QAT": "https://upload.wikimedia.org/wikipedia/commons/thumb/6/65/Flag_of_Qatar.svg/50px-Flag_of_Qatar.svg.png",
	"KSA": "https://upload.wikimedia.org/wikipedia/commons/thumb/0/0d/Flag_of_Saudi_Arabia.svg/50px-Flag_of_Saudi_Arabia.svg.png",
	"CIV": "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fe/Flag_of_Côte_d%27Ivoire.svg/50px-Flag_of_Côte_d%27Ivoire.svg.png",
	"IRN": "https://upload.wikimedia.org/wikipedia/commons/thumb/c/ca/Flag_of_Iran.svg/50px-Flag_of_Iran.svg.png",
	"UZB": "https://upload.wikimedia.org/wikipedia/commons/thumb/8/84/Flag_of_Uzbekistan.svg/50px-Flag_of_Uzbekistan.svg.png",
	"JOR": "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c0/Flag_of_Jordan.svg/50px-Flag_of_Jordan.svg.png",
	"NZL": "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3e/Flag_of_New_Zealand.svg/50px-Flag_of_New_Zealand.svg.png",
	"NOR": "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d9/Flag_of_Norway.svg/50px-Flag_of_Norway.svg.png",
	"AUT": "https://upload.wikimedia.org/wikipedia/commons/thumb/4/41/Flag_of_Austria.svg/50px-Flag_of_Austria.svg.png",
	"SUI": "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f3/Flag_of_Switzerland.svg/50px-Flag_of_Switzerland.svg.png",
	"SCO": "https://upload.wikimedia.org/wikipedia/commons/thumb/1/10/Flag_of_Scotland.svg/50px-Flag_of_Scotland.svg.png",
	"PAN": "https://upload.wikimedia.org/wikipedia/commons/thumb/a/ab/Flag_of_Panama.svg/50px-Flag_of_Panama.svg.png",
	"HAI": "https://upload.wikimedia.org/wikipedia/commons/thumb/5/56/Flag_of_Haiti.svg/50px-Flag_of_Haiti.svg.png",
	"CUW": "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b1/Flag_of_Curaçao.svg/50px-Flag_of_Curaçao.svg.png",
}

// knownBallers carries honours and international stats for elite Golden Ball
// candidates, keyed by page title variants.
var knownBallers = map[string]PlayerInfo{
	"Lionel Messi":      {Honours: []string{"Ballon d'Or winner", "World Cup Golden Ball", "World Cup winner"}, NationalGoals: intPtr(108), NationalCaps: intPtr(180), RatingEstimate: 95},
	"Kylian Mbappé":     {Honours: []string{"Golden Boot", "World Cup winner"}, NationalGoals: intPtr(51), NationalCaps: intPtr(78), RatingEstimate: 93},
	"Kylian Mbappe":     {Honours: []string{"Golden Boot", "World Cup winner"}, NationalGoals: intPtr(51), NationalCaps: intPtr(78), RatingEstimate: 93},
	"Jude Bellingham":   {Honours: []string{"Champions League winner", "UEFA Best Player"}, NationalGoals: intPtr(5), NationalCaps: intPtr(32), RatingEstimate: 91},
	"Vinícius Júnior":   {Honours: []string{"Champions League winner", "Ballon d'Or"}, NationalGoals: intPtr(4), NationalCaps: intPtr(30), RatingEstimate: 91},
	"Vinicius Jr":       {Honours: []string{"Champions League winner", "Ballon d'Or"}, NationalGoals: intPtr(4), NationalCaps: intPtr(30), RatingEstimate: 91},
	"Harry Kane":        {Honours: []string{"Golden Boot"}, NationalGoals: intPtr(65), NationalCaps: intPtr(97), RatingEstimate: 90},
	"Kevin De Bruyne":   {Honours: []string{"Champions League winner", "UEFA Best Player"}, NationalGoals: intPtr(27), NationalCaps: intPtr(102), RatingEstimate: 90},
	"Rodri":             {Honours: []string{"Champions League winner", "UEFA Best Player"}, NationalGoals: intPtr(3), NationalCaps: intPtr(55), RatingEstimate: 89},
	"Phil Foden":        {Honours: []string{"Champions League winner"}, NationalGoals: intPtr(4), NationalCaps: intPtr(38), RatingEstimate: 88},
	"Luka Modrić":       {Honours: []string{"Ballon d'Or winner", "World Cup Golden Ball"}, NationalGoals: intPtr(24), NationalCaps: intPtr(175), RatingEstimate: 88},
	"Luka Modric":       {Honours: []string{"Ballon d'Or winner", "World Cup Golden Ball"}, NationalGoals: intPtr(24), NationalCaps: intPtr(175), RatingEstimate: 88},
	"Bruno Fernandes":   {Honours: []string{}, NationalGoals: intPtr(20), NationalCaps: intPtr(66), RatingEstimate: 87},
	"Antoine Griezmann": {Honours: []string{"World Cup winner"}, NationalGoals: intPtr(44), NationalCaps: intPtr(131), RatingEstimate: 87},
	"Julian Alvarez":    {Honours: []string{"World Cup winner", "Champions League winner"}, NationalGoals: intPtr(14), NationalCaps: intPtr(32), RatingEstimate: 87},
	"Bernardo Silva":    {Honours: []string{"Champions League winner"}, NationalGoals: intPtr(11), NationalCaps: intPtr(92), RatingEstimate: 86},
	"Pedri":             {Honours: []string{}, NationalGoals: intPtr(2), NationalCaps: intPtr(22), RatingEstimate: 86},
	"Lamine Yamal":      {Honours: []string{}, NationalGoals: intPtr(2), NationalCaps: intPtr(10), RatingEstimate: 85},
	"Jamal Musiala":     {Honours: []string{"Champions League winner"}, NationalGoals: intPtr(6), NationalCaps: intPtr(32), RatingEstimate: 88},
	"Florian Wirtz":     {Honours: []string{}, NationalGoals: intPtr(2), NationalCaps: intPtr(20), RatingEstimate: 86},
	"Federico Valverde": {Honours: []string{"Champions League winner"}, NationalGoals: intPtr(7), NationalCaps: intPtr(58), RatingEstimate: 86},
	"Darwin Núñez":      {Honours: []string{}, NationalGoals: intPtr(12), NationalCaps: intPtr(25), RatingEstimate: 85},
	"Darwin Nunez":      {Honours: []string{}, NationalGoals: intPtr(12), NationalCaps: intPtr(25), RatingEstimate: 85},
	"Cristiano Ronaldo": {Honours: []string{"Ballon d'Or winner", "UEFA Best Player"}, NationalGoals: intPtr(130), NationalCaps: intPtr(212), RatingEstimate: 88},
	"Son Heung-min":     {Honours: []string{}, NationalGoals: intPtr(42), NationalCaps: intPtr(122), RatingEstimate: 85},
	"Christian Pulisic": {Honours: []string{"Champions League winner"}, NationalGoals: intPtr(29), NationalCaps: intPtr(69), RatingEstimate: 84},
}

// keeperStats holds curated goalkeeper numbers for Golden Glove enrichment.
type keeperStats struct {
	CleanSheets    int
	Saves          int
	RatingEstimate float64
	NationalCaps   int
}

var knownKeepers = map[string]keeperStats{
	"Emiliano Martinez":     {CleanSheets: 18, Saves: 95, RatingEstimate: 90, NationalCaps: 35},
	"Thibaut Courtois":      {CleanSheets: 20, Saves: 102, RatingEstimate: 91, NationalCaps: 102},
	"Alisson Becker":        {CleanSheets: 19, Saves: 98, RatingEstimate: 90, NationalCaps: 65},
	"Gianluigi Donnarumma":  {CleanSheets: 16, Saves: 88, RatingEstimate: 88, NationalCaps: 62},
	"Marc-Andre ter Stegen": {CleanSheets: 17, Saves: 85, RatingEstimate: 88, NationalCaps: 45},
	"Dominik Livakovic":     {CleanSheets: 14, Saves: 82, RatingEstimate: 86, NationalCaps: 52},
	"Jordan Pickford":       {CleanSheets: 15, Saves: 80, RatingEstimate: 85, NationalCaps: 58},
	"Mike Maignan":          {CleanSheets: 18, Saves: 90, RatingEstimate: 89, NationalCaps: 18},
	"Unai Simon":            {CleanSheets: 14, Saves: 78, RatingEstimate: 84, NationalCaps: 42},
	"Diogo Costa":           {CleanSheets: 16, Saves: 86, RatingEstimate: 86, NationalCaps: 22},
}

// youngStats holds curated U21 numbers for Young Player enrichment.
type youngStats struct {
	Age            int
	Goals          int
	Assists        int
	RatingEstimate float64
}

var knownYoungPlayers = map[string]youngStats{
	"Lamine Yamal":       {Age: 18, Goals: 2, Assists: 8, RatingEstimate: 86},
	"Pau Cubarsi":        {Age: 18, Goals: 0, Assists: 2, RatingEstimate: 83},
	"Warren Zaire-Emery": {Age: 19, Goals: 2, Assists: 6, RatingEstimate: 85},
	"Endrick":            {Age: 19, Goals: 6, Assists: 4, RatingEstimate: 84},
	"Alejandro Garnacho": {Age: 20, Goals: 2, Assists: 4, RatingEstimate: 83},
	"Jude Bellingham":    {Age: 21, Goals: 5, Assists: 8, RatingEstimate: 91},
	"Jamal Musiala":      {Age: 21, Goals: 6, Assists: 6, RatingEstimate: 88},
	"Florian Wirtz":      {Age: 21, Goals: 2, Assists: 10, RatingEstimate: 86},
	"Pedri":              {Age: 21, Goals: 2, Assists: 6, RatingEstimate: 86},
	"Gavi":               {Age: 20, Goals: 1, Assists: 5, RatingEstimate: 85},
	"Eduardo Camavinga":  {Age: 21, Goals: 1, Assists: 4, RatingEstimate: 84},
	"Nico Williams":      {Age: 22, Goals: 4, Assists: 8, RatingEstimate: 84},
}

// Fallback candidate rosters per award, substituted when fewer than five
// live candidates survive filtering. Only entries whose team qualified are used.
var goldenBallFallbackNames = [][2]string{
	{"Lionel Messi", "Argentina"}, {"Kylian Mbappe", "France"}, {"Jude Bellingham", "England"},
	{"Vinicius Jr", "Brazil"}, {"Harry Kane", "England"}, {"Kevin De Bruyne", "Belgium"},
	{"Rodri", "Spain"}, {"Phil Foden", "England"}, {"Luka Modric", "Croatia"},
	{"Bruno Fernandes", "Portugal"}, {"Antoine Griezmann", "France"}, {"Julian Alvarez", "Argentina"},
	{"Jamal Musiala", "Germany"}, {"Pedri", "Spain"}, {"Cristiano Ronaldo", "Portugal"},
}

var goldenBootFallbackNames = [][2]string{
	{"Cristiano Ronaldo", "Portugal"}, {"Lionel Messi", "Argentina"}, {"Harry Kane", "England"},
	{"Kylian Mbappe", "France"}, {"Romelu Lukaku", "Belgium"}, {"Darwin Nunez", "Uruguay"},
	{"Julian Alvarez", "Argentina"}, {"Son Heung-min", "South Korea"}, {"Christian Pulisic", "USA"},
	{"Cody Gakpo", "Netherlands"}, {"Memphis Depay", "Netherlands"}, {"Alvaro Morata", "Spain"},
}

var goldenGloveFallbackNames = [][2]string{
	{"Emiliano Martinez", "Argentina"}, {"Thibaut Courtois", "Belgium"}, {"Alisson Becker", "Brazil"},
	{"Mike Maignan", "France"}, {"Dominik Livakovic", "Croatia"}, {"Jordan Pickford", "England"},
	{"Gianluigi Donnarumma", "Italy"}, {"Marc-Andre ter Stegen", "Germany"}, {"Diogo Costa", "Portugal"},
	{"Unai Simon", "Spain"},
}

var youngPlayerFallbackNames = [][2]string{
	{"Lamine Yamal", "Spain"}, {"Jude Bellingham", "England"}, {"Jamal Musiala", "Germany"},
	{"Warren Zaire-Emery", "France"}, {"Endrick", "Brazil"}, {"Pau Cubarsi", "Spain"},
	{"Florian Wirtz", "Germany"}, {"Pedri", "Spain"}, {"Alejandro Garnacho", "Argentina"},
	{"Gavi", "Spain"}, {"Eduardo Camavinga", "France"}, {"Nico Williams", "Spain"},
}

func intPtr(v int) *int { return &v }
