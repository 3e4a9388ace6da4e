package scanner

import (
	"fmt"

	"github.com/Alia5/modelgen/internal/codegen/model"
)

// Issue is a structural problem that does not stop generation on its own,
// such as a reference to an entity the schema never declares.
type Issue struct {
	Entity   string
	Property string
	Message  string
}

func (i Issue) String() string {
	if i.Property != "" {
		return fmt.Sprintf("%s.%s: %s", i.Entity, i.Property, i.Message)
	}
	return i.Entity + ": " + i.Message
}

// Validate reports dangling parent and destination names and inverted
// relationship bounds. Issues come back in document order.
func Validate(m *model.Model) []Issue {
	var issues []Issue
	for _, e := range m.Entities {
		if !e.IsRoot() {
			if _, ok := m.Entity(e.ParentEntityName); !ok {
				issues = append(issues, Issue{
					Entity:  e.Name,
					Message: fmt.Sprintf("parent entity %q is not declared", e.ParentEntityName),
				})
			}
		}
		for _, r := range e.Relationships {
			if _, ok := m.Entity(r.DestinationEntityName); !ok {
				issues = append(issues, Issue{
					Entity:   e.Name,
					Property: r.Name,
					Message:  fmt.Sprintf("destination entity %q is not declared", r.DestinationEntityName),
				})
			}
			if r.MaxCount != 0 && r.MinCount > r.MaxCount {
				issues = append(issues, Issue{
					Entity:   e.Name,
					Property: r.Name,
					Message:  fmt.Sprintf("minCount %d exceeds maxCount %d", r.MinCount, r.MaxCount),
				})
			}
		}
	}
	return issues
}
