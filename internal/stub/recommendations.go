package stub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hoanghai1803/bookden/internal/models"
)

// cannedRecommendations pairs genre keywords with static suggestion sets;
// the first keyword match wins. Each set mixes titles that exist in the fixture
// catalog with external ones, so the reconciler produces both matched and
// unmatched results offline.
var cannedRecommendations = []struct {
	keyword string
	recs    []models.Recommendation
}{
	{
		keyword: "science fiction",
		recs: []models.Recommendation{
			{
				Title:       "Dune",
				Author:      "F. Herbert",
				Description: "Political intrigue and ecology on a desert planet.",
				Reason:      "A cornerstone of the genre with the world-building you asked for.",
			},
			{
				Title:       "Project Hail Mary",
				Author:      "Andy Weir",
				Description: "A science teacher wakes up alone on an interstellar rescue mission.",
				Reason:      "Problem-solving hard sci-fi with a lot of heart.",
			},
			{
				Title:       "A Fire Upon the Deep",
				Author:      "Vernor Vinge",
				Description: "A galaxy-spanning space opera about zones of thought.",
				Reason:      "Expands the space-opera side of your interests.",
			},
		},
	},
	{
		keyword: "fantasy",
		recs: []models.Recommendation{
			{
				Title:       "The Name of the Wind",
				Author:      "Patrick Rothfuss",
				Description: "A gifted young man grows into a legend, told in his own words.",
				Reason:      "Lyrical prose and a magic system with real rules.",
			},
			{
				Title:       "The Fifth Season",
				Author:      "N.K. Jemisin",
				Description: "A world wracked by apocalyptic seismic seasons.",
				Reason:      "Award-winning and unlike anything else on your shelf.",
			},
		},
	},
	{
		keyword: "mystery",
		recs: []models.Recommendation{
			{
				Title:       "Murder on the Orient Express",
				Author:      "Agatha Christie",
				Description: "Poirot untangles a murder on a snowbound train.",
				Reason:      "The definitive locked-room puzzle.",
			},
			{
				Title:       "The Maltese Falcon",
				Author:      "Dashiell Hammett",
				Description: "Sam Spade chases a jewel-encrusted bird and a web of lies.",
				Reason:      "Hard-boiled counterpoint to the classic whodunit.",
			},
		},
	},
}

// defaultRecommendations is served when no genre keyword matches.
var defaultRecommendations = []models.Recommendation{
	{
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Description: "A reluctant burglar, thirteen dwarves and a dragon.",
		Reason:      "A warm entry point whatever your usual genre.",
	},
	{
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Description: "Small changes, remarkable results.",
		Reason:      "Practical and widely loved outside fiction.",
	},
	{
		Title:       "The Midnight Library",
		Author:      "Matt Haig",
		Description: "A library between life and death holds every life you could have lived.",
		Reason:      "Gentle speculative fiction with broad appeal.",
	},
}

// getRecommendations handles GET /api/recommendations?userId=&genre=&limit=.
// Suggestions are canned rather than AI-generated, which is enough to
// exercise the reconciliation pass end to end.
func getRecommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genre := strings.ToLower(r.URL.Query().Get("genre"))
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit <= 0 {
			limit = 5
		}

		recs := defaultRecommendations
		for _, set := range cannedRecommendations {
			if strings.Contains(genre, set.keyword) {
				recs = set.recs
				break
			}
		}
		if len(recs) > limit {
			recs = recs[:limit]
		}

		writeJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
	}
}
