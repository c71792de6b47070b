package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Annotation holds a parsed @bitfield annotation
type Annotation struct {
	Strategy string // "capability" or "index"; empty means use the tool default
}

// ParseAnnotation parses a @bitfield annotation from comment text
//
// Expected format:
//
//	// @bitfield
//	// @bitfield strategy=capability
//	// @bitfield strategy=index
//
// Params are space-separated key=value pairs. Strategy is optional and
// overrides the tool-wide backend for this record only.
func ParseAnnotation(comment string) (*Annotation, error) {
	re := regexp.MustCompile(`@bitfield(?:\s+(.+))?`)
	matches := re.FindStringSubmatch(comment)
	if len(matches) < 1 {
		return nil, fmt.Errorf("no @bitfield annotation found")
	}

	// No params: plain annotation, tool defaults apply
	if len(matches) < 2 || matches[1] == "" {
		return &Annotation{}, nil
	}

	return parseBitfieldParams(matches[1])
}

func parseBitfieldParams(params string) (*Annotation, error) {
	anno := &Annotation{}

	// Extract key=value pairs: "strategy=index"
	pairRe := regexp.MustCompile(`(\w+)=([\w-]+)`)
	pairs := pairRe.FindAllStringSubmatch(params, -1)

	if len(pairs) == 0 {
		return anno, nil
	}

	for _, pair := range pairs {
		key := pair[1]
		value := pair[2]

		switch key {
		case "strategy":
			if value != "capability" && value != "index" {
				return nil, fmt.Errorf("strategy must be 'capability' or 'index', got: %s", value)
			}
			anno.Strategy = value

		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return anno, nil
}

// FindAnnotation searches comment lines for a @bitfield annotation.
// Returns (nil, nil) when no line carries one. A line that carries a
// malformed annotation is an error, not a miss: swallowing it would let a
// typo'd record skip validation entirely.
func FindAnnotation(comments []string) (*Annotation, error) {
	for _, comment := range comments {
		if !strings.Contains(comment, "@bitfield") {
			continue
		}
		return ParseAnnotation(comment)
	}
	return nil, nil
}

// CleanComment removes comment markers from a line
// "// @bitfield strategy=index" → "@bitfield strategy=index"
// "/* @bitfield */" → "@bitfield"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	// Remove // prefix
	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		return strings.TrimSpace(line)
	}

	// Remove /* */ wrapper
	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		return strings.TrimSpace(line)
	}

	return line
}
