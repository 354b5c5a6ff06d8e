// Package teams holds the static NBA team reference data: display names and
// the custom Discord emoji for each team id. The mapping is fixed at build
// time and never mutated at runtime.
package teams

// UnknownName is substituted for any team id we don't recognize.
const UnknownName = "Unknown Team"

var names = map[string]string{
	"1610612737": "Atlanta Hawks",
	"1610612738": "Boston Celtics",
	"1610612739": "Cleveland Cavaliers",
	"1610612740": "New Orleans Pelicans",
	"1610612741": "Chicago Bulls",
	"1610612742": "Dallas Mavericks",
	"1610612743": "Denver Nuggets",
	"1610612744": "Golden State Warriors",
	"1610612745": "Houston Rockets",
	"1610612746": "LA Clippers",
	"1610612747": "Los Angeles Lakers",
	"1610612748": "Miami Heat",
	"1610612749": "Milwaukee Bucks",
	"1610612750": "Minnesota Timberwolves",
	"1610612751": "Brooklyn Nets",
	"1610612752": "New York Knicks",
	"1610612753": "Orlando Magic",
	"1610612754": "Indiana Pacers",
	"1610612755": "Philadelphia 76ers",
	"1610612756": "Phoenix Suns",
	"1610612757": "Portland Trail Blazers",
	"1610612758": "Sacramento Kings",
	"1610612759": "San Antonio Spurs",
	"1610612760": "Oklahoma City Thunder",
	"1610612761": "Toronto Raptors",
	"1610612762": "Utah Jazz",
	"1610612763": "Memphis Grizzlies",
	"1610612764": "Washington Wizards",
	"1610612765": "Detroit Pistons",
	"1610612766": "Charlotte Hornets",
}

var emojis = map[string]string{
	"1610612737": "<:1900hawks:1357071341202968647>",
	"1610612738": "<:1609celtics:1357071309019811912>",
	"1610612739": "<:9460cavaliers:1357072065315999988>",
	"1610612740": "<:2128pelicans:1357071377932353576>",
	"1610612741": "<:7199bulls:1357071780069642480>",
	"1610612742": "<:6534mavericks:1357071705855492106>",
	"1610612743": "<:7985nuggets:1357071806221127740>",
	"1610612744": "<:7061warriors:1357071734314106900>",
	"1610612745": "<:4635rockets:1357071513466962120>",
	"1610612746": "<:6452clippers:1357071052814946545>",
	"1610612747": "<:3503lakers:1357071439613923418>",
	"1610612748": "<:5463heat:1357071596887736592>",
	"1610612749": "<:3434bucks:1357071076454306012>",
	"1610612750": "<:1338timberwolves:1357071297246400702>",
	"1610612751": "<:8159nets:1357071827511283722>",
	"1610612752": "<:8941knicks:1357071086537150494>",
	"1610612753": "<:3090magic:1357071393132642575>",
	"1610612754": "<:9445pacers:1357072041726972155>",
	"1610612755": "<:207676ers:1357071358646947860>",
	"1610612756": "<:3754suns:1357071463588298895>",
	"1610612757": "<:8613trailblazers:1357071136080400495>",
	"1610612758": "<:1758kings:1357071323301675029>",
	"1610612759": "<:1274spurs:1357071270004654141>",
	"1610612760": "<:1338thunder:1357071285116735559>",
	"1610612761": "<:8831raptors:1357071997712203916>",
	"1610612762": "<:8173jazz:1357071854900088932>",
	"1610612763": "<:4737grizzlies:1357071121471770674>",
	"1610612764": "<:4963wizards:1357071540889456682>",
	"1610612765": "<:6534pistons:1357071103142658239>",
	"1610612766": "<:4070hornets:1357071486149464316>",
}

// Name returns the display name for a team id, or UnknownName.
func Name(id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return UnknownName
}

// Emoji returns the Discord emoji token for a team id, or "" when the team
// is unknown.
func Emoji(id string) string {
	return emojis[id]
}
