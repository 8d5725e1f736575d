package visitor

import "strings"

type jsonTag struct {
	Name      string
	OmitEmpty bool
	Explicit  bool
	Transient bool
}

func parseJSONTag(defaultName string, raw string) jsonTag {
	if raw == "" {
		return jsonTag{Name: defaultName}
	}
	if raw == "-" {
		return jsonTag{Name: defaultName, Transient: true}
	}
	parts := strings.Split(raw, ",")
	tag := jsonTag{Name: parts[0], Explicit: parts[0] != ""}
	if !tag.Explicit {
		tag.Name = defaultName
	}
	for _, option := range parts[1:] {
		if option == "omitempty" {
			tag.OmitEmpty = true
		}
	}
	return tag
}
