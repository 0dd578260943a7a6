package jsonapi

import "fmt"

// linkBuilder concatenates URL segments onto the configured base URL. The
// base is used exactly as given: no trailing-slash normalization, no query
// escaping (page[limit] brackets stay literal).
type linkBuilder struct {
	base string
}

func (b linkBuilder) collection(resourceType string) string {
	return fmt.Sprintf("%s/%s", b.base, resourceType)
}

func (b linkBuilder) resource(resourceType, id string) string {
	return fmt.Sprintf("%s/%s/%s", b.base, resourceType, id)
}

func (b linkBuilder) relationship(resourceType, id, relation string) string {
	return fmt.Sprintf("%s/%s/%s/relationships/%s", b.base, resourceType, id, relation)
}

func (b linkBuilder) related(resourceType, id, relation string) string {
	return fmt.Sprintf("%s/%s/%s/%s", b.base, resourceType, id, relation)
}

func (b linkBuilder) page(resourceType string, limit, offset int) string {
	return fmt.Sprintf("%s/%s?page[limit]=%d&page[offset]=%d", b.base, resourceType, limit, offset)
}
