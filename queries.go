package personmatch

// Queries builds the search queries issued for a name, in priority order.
// LinkedIn profile paths come first because their slugs are the most
// extractable identity handles; equal-score results surface in this order.
func Queries(name string) []string {
	quoted := `"` + name + `"`
	return []string{
		quoted + ` site:linkedin.com/in/`,
		quoted + ` site:linkedin.com/pub/`,
		quoted + ` "linkedin"`,
		quoted + ` site:facebook.com`,
		quoted + ` "facebook"`,
		quoted + ` "facebook profile"`,
		quoted + ` site:instagram.com`,
		quoted + ` "instagram"`,
		quoted + ` "instagram profile"`,
	}
}
