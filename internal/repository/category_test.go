package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/category-quiz-bot/internal/codec"
	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

const catalog = `{
  "categories": [
    {
      "id": "geography",
      "name": "Geography",
      "theme": "blue",
      "quizzes": [
        {"type": "pick_one", "question": "Capital of Germany?", "options": ["Berlin", "Bonn"], "answer": ["Berlin"]},
        {"type": "true_false", "question": "The Nile is in Africa.", "answer": true}
      ]
    },
    {
      "id": "science",
      "name": "Science",
      "theme": "green",
      "quizzes": [
        {"type": "picker", "question": "Boiling point of water?", "min": 0, "max": 200, "step": 10, "answer": 100}
      ]
    }
  ]
}`

func TestCategoryRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	repo, err := NewCategoryRepository(path, codec.Default())
	require.NoError(t, err)

	ctx := context.Background()
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "geography", all[0].ID)
	assert.Equal(t, entities.ThemeGreen, all[1].Theme)

	geo, err := repo.GetByID(ctx, "geography")
	require.NoError(t, err)
	assert.Equal(t, "Geography", geo.Name)
	require.Len(t, geo.Quizzes, 2)
	assert.Equal(t, entities.TypePickOne, geo.Quizzes[0].Type())

	_, err = repo.GetByID(ctx, "history")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryRepositoryReturnsCopies(t *testing.T) {
	repo, err := ParseCategories([]byte(catalog), codec.Default())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := repo.GetByID(ctx, "geography")
	require.NoError(t, err)
	first.Quizzes[0].SetSolved(true)

	second, err := repo.GetByID(ctx, "geography")
	require.NoError(t, err)
	assert.False(t, second.Quizzes[0].Solved())
}

func TestParseCategoriesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", `{"categories": []}`, nil},
		{"bad theme", `{"categories": [{"id": "a", "name": "A", "theme": "magenta", "quizzes": []}]}`, nil},
		{"colon in id", `{"categories": [{"id": "geo:eu", "theme": "red", "quizzes": []}]}`, nil},
		{"duplicate id", `{"categories": [{"id": "a", "theme": "red", "quizzes": []}, {"id": "a", "theme": "red", "quizzes": []}]}`, nil},
		{"unknown variant", `{"categories": [{"id": "a", "theme": "red", "quizzes": [{"type": "pick_seventeen", "question": "Q", "answer": 1}]}]}`, entities.ErrUnknownVariant},
		{"missing answer", `{"categories": [{"id": "a", "theme": "red", "quizzes": [{"type": "true_false", "question": "Q"}]}]}`, entities.ErrInvalidRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCategories([]byte(tt.data), codec.Default())
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestShippedCatalog(t *testing.T) {
	repo, err := NewCategoryRepository(filepath.Join("..", "..", "assets", "data", "categories.json"), codec.Default())
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, all)

	seen := make(map[entities.QuizType]bool)
	for _, c := range all {
		for _, q := range c.Quizzes {
			assert.True(t, q.HasAnswer(), "%s/%s", c.ID, q.Question())
			seen[q.Type()] = true
		}
	}
	assert.Len(t, seen, len(codec.Default().Types()))
}
