package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"

	readability "github.com/go-shiori/go-readability"

	"github.com/mohammad-safakhou/mundial/config"
	"github.com/mohammad-safakhou/mundial/internal/helpers"
)

const maxRosterSize = 30

// maxRecoveredExtract caps the readable text recovered from rendered pages
// when the plain-text extract is missing, roughly the intro of an article.
const maxRecoveredExtract = 2000

// Client fetches tournament facts from the MediaWiki API. Every accessor
// resolves through the same chain: cache, live fetch and parse, static
// fallback. Callers never see fetch errors, only data.
type Client struct {
	apiURL    string
	userAgent string
	http      *http.Client
	cache     Cache
	renderer  *Renderer
	observer  Observer
	logger    *log.Logger

	mu     sync.Mutex
	built  bool
	list   []Team
	byName map[string]Team
}

// Observer receives cache and fetch outcomes. Implementations must be safe
// for concurrent use.
type Observer interface {
	CacheLookup(hit bool)
	FetchOutcome(subject string, ok bool)
}

// Observe installs an outcome observer. Call before the client is shared
// between goroutines.
func (c *Client) Observe(o Observer) { c.observer = o }

func (c *Client) noteCache(hit bool) {
	if c.observer != nil {
		c.observer.CacheLookup(hit)
	}
}

func (c *Client) noteFetch(subject string, ok bool) {
	if c.observer != nil {
		c.observer.FetchOutcome(subject, ok)
	}
}

func NewClient(cfg config.SourcesConfig, cache Cache) *Client {
	c := &Client{
		apiURL:    cfg.APIURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout()},
		cache:     cache,
		logger:    log.New(log.Writer(), "[SOURCE] ", log.LstdFlags),
	}
	if cfg.RenderEnabled {
		c.renderer = NewRenderer(cfg.UserAgent, cfg.RenderTimeout())
	}
	return c
}

// resolve is the shared three-tier lookup: cache, live fetch, static
// fallback. Fetch results are cached only when non-empty, so a transient
// empty parse does not pin the fallback for a whole TTL.
func resolve[T any](ctx context.Context, c *Client, key string, fetch func(context.Context) (T, error), empty func(T) bool, fallback T) T {
	if raw, ok := c.cache.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil && !empty(v) {
			c.noteCache(true)
			return v
		}
	}
	c.noteCache(false)
	v, err := fetch(ctx)
	if err != nil {
		c.noteFetch(key, false)
		c.logger.Printf("fetch %s: %v (using fallback data)", key, err)
		return fallback
	}
	if empty(v) {
		c.noteFetch(key, false)
		return fallback
	}
	c.noteFetch(key, true)
	if raw, err := json.Marshal(v); err == nil {
		c.cache.Set(ctx, key, raw)
	}
	return v
}

// Response shapes for the MediaWiki API with formatversion=2, where pages
// come back as an array and parsed text as a plain string.
type apiResponse struct {
	Query *apiQuery `json:"query"`
	Parse *apiParse `json:"parse"`
}

type apiQuery struct {
	Pages  []apiPage   `json:"pages"`
	Search []apiSearch `json:"search"`
}

type apiPage struct {
	Title     string        `json:"title"`
	Missing   bool          `json:"missing"`
	Extract   string        `json:"extract"`
	Thumbnail *apiThumbnail `json:"thumbnail"`
	Revisions []apiRevision `json:"revisions"`
}

type apiThumbnail struct {
	Source string `json:"source"`
}

type apiRevision struct {
	Slots map[string]apiSlot `json:"slots"`
}

type apiSlot struct {
	Content string `json:"content"`
}

type apiSearch struct {
	Title string `json:"title"`
}

type apiParse struct {
	Sections []apiSection `json:"sections"`
	Text     string       `json:"text"`
}

type apiSection struct {
	Line  string `json:"line"`
	Index string `json:"index"`
}

func (c *Client) api(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("format", "json")
	params.Set("formatversion", "2")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	raw, err := helpers.ReadAllAndClose(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wiki api status %d", resp.StatusCode)
	}
	var out apiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode wiki response: %w", err)
	}
	return &out, nil
}

func (c *Client) pageWikitext(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvslots", "main")
	out, err := c.api(ctx, params)
	if err != nil {
		return "", err
	}
	if out.Query == nil || len(out.Query.Pages) == 0 {
		return "", nil
	}
	page := out.Query.Pages[0]
	if page.Missing || len(page.Revisions) == 0 {
		return "", nil
	}
	return page.Revisions[0].Slots["main"].Content, nil
}

func (c *Client) pageSections(ctx context.Context, title string) ([]apiSection, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("prop", "sections")
	out, err := c.api(ctx, params)
	if err != nil {
		return nil, err
	}
	if out.Parse == nil {
		return nil, nil
	}
	return out.Parse.Sections, nil
}

func (c *Client) sectionText(ctx context.Context, title, index string) (string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("prop", "text")
	if index != "" {
		params.Set("section", index)
	}
	out, err := c.api(ctx, params)
	if err != nil {
		return "", err
	}
	if out.Parse == nil {
		return "", nil
	}
	return out.Parse.Text, nil
}

// TeamPageTitle maps a team name to its national team page. The US and
// Canada pages use "soccer" rather than "football".
func TeamPageTitle(team string) string {
	if strings.EqualFold(team, "USA") || strings.EqualFold(team, "United States") {
		return "United States men's national soccer team"
	}
	if strings.EqualFold(team, "Canada") {
		return "Canada men's national soccer team"
	}
	return team + " national football team"
}

// QualifiedTeams returns the sides qualified for 2026, from the
// qualification page or the static hosts-plus-likely-qualifiers list.
func (c *Client) QualifiedTeams(ctx context.Context) []QualifiedTeam {
	return resolve(ctx, c, "qualified_teams_2026", func(ctx context.Context) ([]QualifiedTeam, error) {
		content, err := c.pageWikitext(ctx, qualificationPage)
		if err != nil {
			return nil, err
		}
		return parseQualifiedTeams(content), nil
	}, func(v []QualifiedTeam) bool { return len(v) == 0 }, qualifiedFallback)
}

// TeamInfo returns the flag thumbnail and intro extract of a team page.
func (c *Client) TeamInfo(ctx context.Context, team string) TeamInfo {
	key := "team_info_" + strings.ReplaceAll(team, " ", "_")
	return resolve(ctx, c, key, func(ctx context.Context) (TeamInfo, error) {
		params := url.Values{}
		params.Set("action", "query")
		params.Set("titles", TeamPageTitle(team))
		params.Set("prop", "pageimages|extracts|pageprops")
		params.Set("exintro", "1")
		params.Set("explaintext", "1")
		params.Set("exsentences", "3")
		params.Set("piprop", "thumbnail")
		params.Set("pithumbsize", "50")
		out, err := c.api(ctx, params)
		if err != nil {
			return TeamInfo{}, err
		}
		info := TeamInfo{Name: team}
		if out.Query == nil || len(out.Query.Pages) == 0 {
			return info, nil
		}
		page := out.Query.Pages[0]
		if page.Missing {
			return info, nil
		}
		if page.Thumbnail != nil {
			info.Flag = page.Thumbnail.Source
		}
		info.Extract = truncateRunes(page.Extract, 500)
		return info, nil
	}, func(v TeamInfo) bool { return v.Name == "" }, TeamInfo{Name: team})
}

// RosterWithPositions returns the current squad of a team. Positions come
// from the squad subsection headings; when the page has a flat squad list,
// positions are assigned by list index.
func (c *Client) RosterWithPositions(ctx context.Context, team string) []Player {
	key := "roster_pos_" + strings.ReplaceAll(team, " ", "_")
	return resolve(ctx, c, key, func(ctx context.Context) ([]Player, error) {
		title := TeamPageTitle(team)
		sections, err := c.pageSections(ctx, title)
		if err != nil {
			return nil, err
		}
		squadIdx := squadSectionIndex(sections)
		if squadIdx == "" {
			return nil, nil
		}
		full, err := c.sectionText(ctx, title, squadIdx)
		if err != nil {
			return nil, err
		}
		var out []Player
		for _, s := range sections {
			if s.Index != squadIdx && !strings.HasPrefix(s.Index, squadIdx+".") {
				continue
			}
			pos := positionFromHeading(s.Line)
			if pos == "" {
				continue
			}
			markup, err := c.sectionText(ctx, title, s.Index)
			if err != nil {
				continue
			}
			for _, p := range extractPlayerLinks(markup, team) {
				p.Position = pos
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			if len(out) > maxRosterSize {
				out = out[:maxRosterSize]
			}
			return out, nil
		}
		players := extractPlayerLinks(full, team)
		if len(players) > maxRosterSize {
			players = players[:maxRosterSize]
		}
		for i := range players {
			players[i].Position = positionByIndex(i)
		}
		return players, nil
	}, func(v []Player) bool { return len(v) == 0 }, nil)
}

func squadSectionIndex(sections []apiSection) string {
	for _, s := range sections {
		line := strings.ToLower(s.Line)
		if strings.Contains(line, "current squad") || (strings.Contains(line, "squad") && strings.Contains(line, "current")) {
			return s.Index
		}
	}
	return ""
}

var positionHeadings = []struct{ key, name string }{
	{"goalkeeper", "Goalkeeper"},
	{"defender", "Defender"},
	{"midfielder", "Midfielder"},
	{"forward", "Forward"},
}

func positionFromHeading(line string) string {
	l := strings.ToLower(line)
	for _, ph := range positionHeadings {
		if strings.Contains(l, ph.key) && (strings.HasPrefix(l, ph.key) || strings.Contains(l, "("+ph.key)) {
			return ph.name
		}
	}
	return ""
}

func positionByIndex(i int) string {
	switch {
	case i < 3:
		return "Goalkeeper"
	case i < 12:
		return "Defender"
	case i < 21:
		return "Midfielder"
	default:
		return "Forward"
	}
}

// WorldCup returns the podium of a past edition. The page intro carries
// nothing the curated table does not, so this stays local.
func (c *Client) WorldCup(year int) TournamentResult {
	return knownWorldCups[year]
}

// FIFARankings returns the world ranking table, trying wikitext first, the
// rendered page second (when rendering is enabled), and the static order
// last.
func (c *Client) FIFARankings(ctx context.Context) []RankingRow {
	return resolve(ctx, c, "fifa_rankings", func(ctx context.Context) ([]RankingRow, error) {
		content, err := c.pageWikitext(ctx, rankingPage)
		if err != nil {
			return nil, err
		}
		rows := parseRankingRows(content)
		if len(rows) == 0 && c.renderer != nil {
			text, err := c.renderer.PageText(ctx, wikiPageURL(rankingPage))
			if err != nil {
				c.logger.Printf("render %s: %v", rankingPage, err)
				return nil, nil
			}
			rows = parseRenderedRanking(text)
		}
		return rows, nil
	}, func(v []RankingRow) bool { return len(v) == 0 }, rankingFallback())
}

var playerKeyRe = regexp.MustCompile(`[^a-z0-9]`)

func playerCacheKey(name string) string {
	k := playerKeyRe.ReplaceAllString(strings.ToLower(name), "_")
	if len(k) > 80 {
		k = k[:80]
	}
	return "player_" + k
}

// PlayerInfo returns biography data for one player. Known elite players
// short-circuit to the curated table; everything else goes through the
// resolve chain against the player's page, retried once via title search
// when the exact page is missing.
func (c *Client) PlayerInfo(ctx context.Context, name string) PlayerInfo {
	if known, ok := knownBallers[name]; ok {
		return known
	}
	return resolve(ctx, c, playerCacheKey(name), func(ctx context.Context) (PlayerInfo, error) {
		return c.fetchPlayerInfo(ctx, name)
	}, func(v PlayerInfo) bool { return v.RatingEstimate == 0 }, playerInfoFallback(name))
}

func playerInfoFallback(name string) PlayerInfo {
	for known, info := range knownBallers {
		if strings.EqualFold(known, name) {
			return info
		}
	}
	return PlayerInfo{Honours: []string{}, RatingEstimate: 80}
}

func (c *Client) fetchPlayerInfo(ctx context.Context, name string) (PlayerInfo, error) {
	title := name
	page, err := c.playerPage(ctx, title)
	if err != nil {
		return PlayerInfo{}, err
	}
	if page == nil {
		found, err := c.searchTitle(ctx, name+" footballer")
		if err != nil {
			return PlayerInfo{}, err
		}
		if found == "" {
			return PlayerInfo{}, fmt.Errorf("no page for player %q", name)
		}
		title = found
		page, err = c.playerPage(ctx, title)
		if err != nil {
			return PlayerInfo{}, err
		}
		if page == nil {
			return PlayerInfo{}, fmt.Errorf("no page for player %q", name)
		}
	}
	extract := page.Extract
	var wikitext string
	if len(page.Revisions) > 0 {
		wikitext = page.Revisions[0].Slots["main"].Content
	}
	if extract == "" {
		extract = c.recoverExtract(ctx, title)
	}
	return parsePlayerPage(extract, wikitext), nil
}

// recoverExtract rebuilds readable intro text from the rendered page when
// the extracts prop returns nothing, which happens on some redirect and
// media-heavy pages.
func (c *Client) recoverExtract(ctx context.Context, title string) string {
	html, err := c.sectionText(ctx, title, "")
	if err != nil || html == "" {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(html), mustParseURL(wikiPageURL(title)))
	if err != nil {
		return ""
	}
	text := helpers.SanitizeHTMLStrict(article.TextContent)
	return truncateRunes(text, maxRecoveredExtract)
}

func (c *Client) playerPage(ctx context.Context, title string) (*apiPage, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "extracts|revisions")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsentences", "20")
	params.Set("rvprop", "content")
	params.Set("rvslots", "main")
	out, err := c.api(ctx, params)
	if err != nil {
		return nil, err
	}
	if out.Query == nil || len(out.Query.Pages) == 0 {
		return nil, nil
	}
	page := out.Query.Pages[0]
	if page.Missing {
		return nil, nil
	}
	return &page, nil
}

func (c *Client) searchTitle(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "1")
	out, err := c.api(ctx, params)
	if err != nil {
		return "", err
	}
	if out.Query == nil || len(out.Query.Search) == 0 {
		return "", nil
	}
	return out.Query.Search[0].Title, nil
}

func wikiPageURL(title string) string {
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
