package summary

import (
	"fmt"
	"strings"

	"github.com/yourorg/property-insight-api/internal/property"
)

const outputInstructions = `Return the response **only as valid HTML**, without Markdown or code blocks.
- Include a short introductory ` + "`<p>`" + ` paragraph summarizing the property.
- Follow the introduction with a ` + "`<ul>`" + ` list of key features using ` + "`<li>`" + ` tags.
- **Do not wrap the output in triple backticks (` + "` ``` `" + `).**
- The response should be directly insertable into an HTML page without modification.`

// BuildPrompt renders p into the completion instruction. Empty fields render as N/A.
func BuildPrompt(p property.SimplifiedProperty) string {
	na := func(t property.Text) string { return t.Or(property.NA) }

	parts := []string{
		"Generate a detailed, engaging real estate property overview based on",
		"the following details:",
		"",
		fmt.Sprintf("Address: %s", na(p.Address)),
		fmt.Sprintf("City: %s, %s", na(p.City), na(p.State)),
		fmt.Sprintf("Zipcode: %s", na(p.Zipcode)),
		fmt.Sprintf("Country: %s", na(p.Country)),
		fmt.Sprintf("Home Type: %s", na(p.HomeType)),
		fmt.Sprintf("Size: %s", na(p.Size)),
		fmt.Sprintf("Bedrooms: %s", na(p.Bedrooms)),
		fmt.Sprintf("Bathrooms: %s", na(p.Bathrooms)),
		fmt.Sprintf("Year Built: %s", na(p.YearBuilt)),
		fmt.Sprintf("Price: %s", na(p.Price)),
		fmt.Sprintf("Price per sqft: %s", na(p.PricePerSqft)),
		fmt.Sprintf("Lot Size: %s", na(p.LotSize)),
		fmt.Sprintf("Description: %s", na(p.Description)),
		fmt.Sprintf("Listing: %s", na(p.ZillowURL)),
		fmt.Sprintf("Photo: %s", na(p.ImageURL)),
		"",
		"Nearby Schools:",
		SchoolsLine(p.Schools),
		"",
		outputInstructions,
	}
	return strings.Join(parts, "\n")
}

// SchoolsLine renders schools as "<name> (<rating>/10) - <distance>" joined by ", ".
// Empty school fields render as N/A.
func SchoolsLine(schools []property.School) string {
	out := make([]string, 0, len(schools))
	for _, s := range schools {
		out = append(out, fmt.Sprintf("%s (%s/10) - %s",
			s.Name.Or(property.NA), s.Rating.Or(property.NA), s.Distance.Or(property.NA)))
	}
	return strings.Join(out, ", ")
}
