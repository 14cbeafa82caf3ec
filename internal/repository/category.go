package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/category-quiz-bot/internal/codec"
	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

var ErrCategoryNotFound = errors.New("category not found")

type categoryFile struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Theme   string          `json:"theme"`
	Quizzes json.RawMessage `json:"quizzes"`
}

// CategoryRepository serves categories from a JSON catalog. Quizzes are
// decoded on every read so callers never share mutable records.
type CategoryRepository struct {
	registry   *codec.Registry
	categories []categoryFile
	byID       map[string]int
}

// NewCategoryRepository loads and validates the catalog at path.
func NewCategoryRepository(path string, registry *codec.Registry) (*CategoryRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCategories(data, registry)
}

// ParseCategories builds a repository from catalog JSON.
func ParseCategories(data []byte, registry *codec.Registry) (*CategoryRepository, error) {
	var wrapper struct {
		Categories []categoryFile `json:"categories"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories JSON: %w", err)
	}
	if len(wrapper.Categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	r := &CategoryRepository{
		registry:   registry,
		categories: wrapper.Categories,
		byID:       make(map[string]int, len(wrapper.Categories)),
	}
	for i, c := range wrapper.Categories {
		if c.ID == "" {
			return nil, fmt.Errorf("category %d has no id", i)
		}
		// Ids travel in callback data, where ':' separates fields.
		if strings.Contains(c.ID, ":") {
			return nil, fmt.Errorf("category id %q must not contain ':'", c.ID)
		}
		if _, ok := r.byID[c.ID]; ok {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}
		r.byID[c.ID] = i

		// Decode once up front so a broken catalog fails at startup.
		if _, err := r.decode(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// GetByID returns a fresh copy of the category with the given id.
func (r *CategoryRepository) GetByID(_ context.Context, id string) (*entities.Category, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return r.decode(r.categories[i])
}

// GetAll returns fresh copies of every category in catalog order.
func (r *CategoryRepository) GetAll(_ context.Context) ([]*entities.Category, error) {
	result := make([]*entities.Category, 0, len(r.categories))
	for _, c := range r.categories {
		category, err := r.decode(c)
		if err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, nil
}

func (r *CategoryRepository) decode(c categoryFile) (*entities.Category, error) {
	theme, err := entities.ParseTheme(c.Theme)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", c.ID, err)
	}
	quizzes, err := r.registry.UnmarshalList(c.Quizzes)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", c.ID, err)
	}
	return &entities.Category{
		ID:      c.ID,
		Name:    c.Name,
		Theme:   theme,
		Quizzes: quizzes,
	}, nil
}
