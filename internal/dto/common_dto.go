package dto

import (
	"encoding/json"
	"strings"
)

// TagList accepts either an already-split JSON array or a single
// comma-separated string, and always normalizes to a trimmed list.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*t = trimTags(asList)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	if asString == "" {
		*t = TagList{}
		return nil
	}
	*t = trimTags(strings.Split(asString, ","))
	return nil
}

func trimTags(tags []string) TagList {
	out := make(TagList, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
