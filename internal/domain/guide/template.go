package guide

// Template is a starter layout a guide can be created from.
// The catalog is fixed and shipped with the service.
type Template struct {
	Key             string
	Name            string
	Category        Category
	StarterMarkdown string
}

// Templates returns the built-in template catalog
func Templates() []Template {
	return []Template{
		{
			Key:      "itinerary_table",
			Name:     "Trip itinerary",
			Category: CategoryTravel,
			StarterMarkdown: "# Trip itinerary\n\n" +
				"| Day | Place | Transport | Notes |\n" +
				"| --- | ----- | --------- | ----- |\n" +
				"| 1 |  |  |  |\n" +
				"| 2 |  |  |  |\n\n" +
				"## Budget\n\n## Tips\n",
		},
		{
			Key:      "study_plan",
			Name:     "Study plan",
			Category: CategoryStudy,
			StarterMarkdown: "# Study plan\n\n" +
				"## Goal\n\n" +
				"## Weekly schedule\n\n" +
				"- Week 1: \n- Week 2: \n\n" +
				"## Resources\n",
		},
		{
			Key:      "game_build",
			Name:     "Game build",
			Category: CategoryGame,
			StarterMarkdown: "# Build guide\n\n" +
				"## Core setup\n\n" +
				"## Leveling order\n\n" +
				"## Matchups\n",
		},
	}
}

// TemplateByKey returns the template with the given key, if any
func TemplateByKey(key string) (Template, bool) {
	for _, t := range Templates() {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}
