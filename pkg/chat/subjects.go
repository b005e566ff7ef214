package chat

import "regexp"

type subjectPattern struct {
	pattern *regexp.Regexp
	name    string
}

// studySubjects is the coarse list used when building custom study blocks.
var studySubjects = []subjectPattern{
	{regexp.MustCompile(`(?i)english`), "English"},
	{regexp.MustCompile(`(?i)math|maths|mathematics`), "Mathematics"},
	{regexp.MustCompile(`(?i)science|physics|chemistry|biology`), "Science"},
	{regexp.MustCompile(`(?i)programming|coding|c\s+language|java|python`), "Programming"},
	{regexp.MustCompile(`(?i)history`), "History"},
	{regexp.MustCompile(`(?i)geography`), "Geography"},
}

// examSubjects is the finer list used when parsing exam announcements.
// Two patterns map to C Programming; matches are deduplicated by name.
var examSubjects = []subjectPattern{
	{regexp.MustCompile(`(?i)english`), "English"},
	{regexp.MustCompile(`(?i)c programming|c-programming|programming`), "C Programming"},
	{regexp.MustCompile(`(?i)\bc\b.*program`), "C Programming"},
	{regexp.MustCompile(`(?i)java`), "Java"},
	{regexp.MustCompile(`(?i)python`), "Python"},
	{regexp.MustCompile(`(?i)math|maths|mathematics`), "Mathematics"},
	{regexp.MustCompile(`(?i)physics`), "Physics"},
	{regexp.MustCompile(`(?i)chemistry`), "Chemistry"},
	{regexp.MustCompile(`(?i)biology`), "Biology"},
	{regexp.MustCompile(`(?i)history`), "History"},
	{regexp.MustCompile(`(?i)geography`), "Geography"},
	{regexp.MustCompile(`(?i)economics`), "Economics"},
	{regexp.MustCompile(`(?i)data structures|\bds\b|\bdsa\b`), "Data Structures"},
	{regexp.MustCompile(`(?i)database|dbms`), "Database"},
	{regexp.MustCompile(`(?i)\bweb\b|html|css`), "Web Development"},
}

func matchSubjects(list []subjectPattern, message string) []string {
	var names []string
	seen := map[string]bool{}
	for _, s := range list {
		if !s.pattern.MatchString(message) || seen[s.name] {
			continue
		}
		seen[s.name] = true
		names = append(names, s.name)
	}
	return names
}
