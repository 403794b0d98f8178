package passx

import (
	"fmt"
	"regexp"
	"strings"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// getAllVars returns names of all variables referenced in a pattern,
// in order of first appearance, without duplicates.
func getAllVars(pattern string) []string {
	var values []string
	seen := map[string]struct{}{}
	for _, v := range varRegex.FindAllStringSubmatch(pattern, -1) {
		if len(v) >= 2 {
			if _, ok := seen[v[1]]; ok {
				continue
			}
			seen[v[1]] = struct{}{}
			values = append(values, v[1])
		}
	}
	return values
}

// getSampleMap returns a sample map containing all payload variables
// that have at least one value
func getSampleMap(payloadVars map[string][]string) map[string]interface{} {
	sMap := map[string]interface{}{}
	for k, v := range payloadVars {
		if k != "" && len(v) > 0 {
			sMap[k] = "temp"
		}
	}
	return sMap
}

// checkMissing checks if all variables/placeholders of a pattern can be
// replaced, if not an error is returned with a description
func checkMissing(pattern string, data map[string]interface{}) error {
	got := Replace(pattern, data)
	if res := varRegex.FindAllString(got, -1); len(res) > 0 {
		return fmt.Errorf("values of `%v` variables not found", strings.Join(res, ","))
	}
	return nil
}
