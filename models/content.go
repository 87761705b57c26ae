package models

// SiteContent is the editable site copy (hero, advantages, testimonials, ...).
// The document is round-tripped opaquely: the admin panel sends the whole
// thing back and it is persisted in full, so new sections need no code change.
type SiteContent map[string]any

// SetHeroImage points hero.backgroundImage at path, creating the hero section
// if the document lacks one.
func (sc SiteContent) SetHeroImage(path string) {
	hero, ok := sc["hero"].(map[string]any)
	if !ok {
		hero = map[string]any{}
		sc["hero"] = hero
	}
	hero["backgroundImage"] = path
}
