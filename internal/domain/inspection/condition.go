package inspection

import "strings"

const standardCondition = "Standard cleaning and care recommended based on material type and general condition."

var conditionRules = []struct {
	keywords []string
	finding  string
}{
	{keywords: []string{"stain"}, finding: "visible staining"},
	{keywords: []string{"odor", "urine"}, finding: "odor contamination"},
	{keywords: []string{"repair", "fringe"}, finding: "structural concerns"},
	{keywords: []string{"protection", "scotchgard"}, finding: "fiber vulnerability"},
}

// ConditionSummary describes the rug condition implied by its services.
func ConditionSummary(services []Service) string {
	var findings []string
	for _, r := range conditionRules {
		if anyServiceMentions(services, r.keywords) {
			findings = append(findings, r.finding)
		}
	}
	if len(findings) == 0 {
		return standardCondition
	}
	return "Assessment indicates " + strings.Join(findings, ", ") + ". Services outlined below address identified conditions."
}

func anyServiceMentions(services []Service, keywords []string) bool {
	for _, s := range services {
		lower := strings.ToLower(s.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
