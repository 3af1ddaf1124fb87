package recommend

import (
	"fmt"
	"strings"
)

const batchSize = 9

const promptPreamble = "Act as an expert Entertainment Concierge. " +
	"Please recommend %d high-quality and diverse entertainment items " +
	"(a mix of movies, TV shows, books, and video games)"

const promptTrailer = "For each recommendation, provide all the requested information " +
	"in the JSON schema. It is critically important that you find and include a valid, " +
	"publicly accessible URL for its official poster or cover art in the 'poster_url' field. " +
	"Do not use placeholder images. For movies and TV shows include a YouTube trailer URL " +
	"in the 'trailer_url' field. Ensure the personalization reason is compelling and " +
	"directly relates to the user's input. The rating should be a realistic reflection " +
	"of general critic/user consensus."

// buildPrompt embeds exactly the non-empty preference fields.
func buildPrompt(p Preferences) string {
	var parts []string
	if mood := strings.TrimSpace(p.Mood); mood != "" {
		parts = append(parts, fmt.Sprintf("I'm in the mood for something %s.", mood))
	}
	if genres := strings.TrimSpace(p.Genres); genres != "" {
		parts = append(parts, fmt.Sprintf("I enjoy these genres: %s.", genres))
	}
	if likeThis := strings.TrimSpace(p.LikeThis); likeThis != "" {
		parts = append(parts, fmt.Sprintf("I recently enjoyed %q and want something similar.", likeThis))
	}
	return fmt.Sprintf(promptPreamble, batchSize) +
		" based on the following user preferences:\n" +
		strings.Join(parts, " ") + "\n\n" + promptTrailer
}

// buildSurprisePrompt ignores all preference text.
func buildSurprisePrompt() string {
	return fmt.Sprintf(promptPreamble, batchSize) +
		" spanning a broad range of moods, genres and eras. Surprise me.\n\n" +
		promptTrailer
}
