package knowledge

import (
	"fmt"
	"strings"
)

// validateSet checks a folded set and returns every problem found.
func validateSet(s Set) []error {
	var errs []error

	if len(s.entries) == 0 {
		errs = append(errs, fmt.Errorf("knowledge: at least one entry is required"))
	}
	seen := make(map[string]int, len(s.entries))
	for i, e := range s.entries {
		errs = append(errs, validateEntry(i, e)...)
		if e.Key == "" {
			continue
		}
		if first, dup := seen[e.Key]; dup {
			errs = append(errs, fmt.Errorf("knowledge[%d].key %q duplicates knowledge[%d]", i, e.Key, first))
			continue
		}
		seen[e.Key] = i
	}

	triggers := make(map[string]bool, len(s.synonyms))
	for i, syn := range s.synonyms {
		if syn.Trigger == "" {
			errs = append(errs, fmt.Errorf("synonyms[%d].trigger is required", i))
			continue
		}
		if triggers[syn.Trigger] {
			errs = append(errs, fmt.Errorf("synonyms[%d].trigger %q is duplicated", i, syn.Trigger))
		}
		triggers[syn.Trigger] = true
	}

	if len(s.templates) == 0 {
		errs = append(errs, fmt.Errorf("fallback_templates: at least one template is required"))
	}
	for i, t := range s.templates {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, fmt.Errorf("fallback_templates[%d] is empty", i))
		}
	}

	return errs
}

func validateEntry(i int, e Entry) []error {
	var errs []error

	if e.Key == "" {
		errs = append(errs, fmt.Errorf("knowledge[%d].key is required", i))
	}
	if strings.TrimSpace(e.Answer) == "" {
		errs = append(errs, fmt.Errorf("knowledge[%d].answer is required", i))
	}
	if e.Score < 0 || e.Score > 1 {
		errs = append(errs, fmt.Errorf("knowledge[%d].score must be between 0 and 1, got %g", i, e.Score))
	}
	if !e.Verdict.Valid() {
		errs = append(errs, fmt.Errorf("knowledge[%d].verdict: invalid value %q", i, string(e.Verdict)))
	}

	return errs
}
