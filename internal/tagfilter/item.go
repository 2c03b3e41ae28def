package tagfilter

import "github.com/gruntwork-io/tagexpr/internal/tagexpr"

// Item is a named element carrying a set of tags.
type Item struct {
	Name string   `json:"name" yaml:"name"`
	Tags []string `json:"tags" yaml:"tags"`
}

// NewItem creates a new Item.
func NewItem(name string, tags ...string) Item {
	return Item{Name: name, Tags: tags}
}

// TagSet returns the item tags as a set.
func (item Item) TagSet() tagexpr.TagSet {
	return tagexpr.NewTagSet(item.Tags...)
}

// Items is a list of items.
type Items []Item

// Names returns the names of the items in order.
func (items Items) Names() []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	return names
}
