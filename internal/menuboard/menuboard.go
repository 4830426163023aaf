// Package menuboard holds the Heroic Burgers menu and the ingredient
// popup text for each item.
package menuboard

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenuYAML []byte

// ErrUnknownItem is returned for an item id that is not on the menu.
var ErrUnknownItem = errors.New("menuboard: unknown item")

// Item is one dish on the menu.
type Item struct {
	ID          string `yaml:"id"`
	Ingredients string `yaml:"ingredients"`
}

// Menu is an ordered list of items.
type Menu struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

// Default returns the embedded menu.
func Default() Menu {
	m, err := Parse(defaultMenuYAML)
	if err != nil {
		panic(fmt.Sprintf("menuboard: embedded menu: %v", err))
	}
	return m
}

// Load reads a menu from path. An empty path returns the embedded menu.
func Load(path string) (Menu, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, fmt.Errorf("menuboard: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return Menu{}, fmt.Errorf("menuboard: %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a menu from YAML and checks it for empty or duplicate ids.
func Parse(data []byte) (Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Menu{}, fmt.Errorf("parse menu: %w", err)
	}
	if len(m.Items) == 0 {
		return Menu{}, errors.New("menu has no items")
	}
	seen := make(map[string]bool, len(m.Items))
	for i, it := range m.Items {
		if strings.TrimSpace(it.ID) == "" {
			return Menu{}, fmt.Errorf("item %d has no id", i)
		}
		if seen[it.ID] {
			return Menu{}, fmt.Errorf("duplicate item %q", it.ID)
		}
		seen[it.ID] = true
	}
	return m, nil
}

// Ingredients returns the ingredient text of the item.
func (m Menu) Ingredients(id string) (string, error) {
	for _, it := range m.Items {
		if it.ID == id {
			return it.Ingredients, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// PopupTitle returns the popup heading for an item id: the id with its
// first character upper-cased, followed by " Ingredients".
func PopupTitle(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return id + " Ingredients"
	}
	return string(unicode.ToUpper(r)) + id[size:] + " Ingredients"
}
