package recommend

import "github.com/vibeflow-io/web-api/services/gemini"

// responseSchema describes one batch of recommendations. The schema language
// cannot express "trailer_url required only for movies and TV shows", so that
// constraint is handled after parsing instead.
var responseSchema = &gemini.Schema{
	Type: gemini.TypeArray,
	Items: &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"title": {
				Type:        gemini.TypeString,
				Description: "The title of the entertainment item.",
			},
			"type": {
				Type:        gemini.TypeString,
				Description: "The type of entertainment. Must be one of: 'Movie', 'TV Show', 'Book', 'Game'.",
			},
			"year": {
				Type:        gemini.TypeInteger,
				Description: "The year the item was released.",
			},
			"genres": {
				Type:        gemini.TypeArray,
				Items:       &gemini.Schema{Type: gemini.TypeString},
				Description: "A list of 2-3 relevant genres for the item.",
			},
			"rating": {
				Type:        gemini.TypeNumber,
				Description: "A rating out of 10, e.g., 8.5.",
			},
			"short_description": {
				Type:        gemini.TypeString,
				Description: "A brief, one or two sentence summary of the item.",
			},
			"personalization_reason": {
				Type: gemini.TypeString,
				Description: "A detailed, 2-3 sentence explanation of why this specific recommendation " +
					"fits the user's provided mood and preferences, written in an engaging and persuasive tone.",
			},
			"poster_url": {
				Type:        gemini.TypeString,
				Description: "A publicly accessible URL for the official poster or cover art of the item.",
			},
			"trailer_url": {
				Type:        gemini.TypeString,
				Description: "A YouTube URL of the official trailer. Only for movies and TV shows.",
			},
		},
	},
}
