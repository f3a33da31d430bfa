package memory

import (
	"testing"

	"nko-content-assistant/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsStablePerConversation(t *testing.T) {
	repo := NewSessionRepository()

	first := repo.GetOrCreate("conv-a")
	require.NotNil(t, first)
	assert.Equal(t, store.StepIdle, first.Step)

	first.Step = store.StepMainMenu
	repo.Save(first)

	second := repo.GetOrCreate("conv-a")
	assert.Same(t, first, second)
	assert.Equal(t, store.StepMainMenu, second.Step)
}

func TestConversationsAreIsolated(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("conv-a")
	b := repo.GetOrCreate("conv-b")
	a.Answers.Set(store.FieldGoal, "цель")

	assert.False(t, b.Answers.Has(store.FieldGoal))
}

func TestDeleteForgetsSession(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("conv-a")
	s.Step = store.StepReview
	repo.Save(s)

	repo.Delete("conv-a")

	_, found := repo.Get("conv-a")
	assert.False(t, found)

	fresh := repo.GetOrCreate("conv-a")
	assert.Equal(t, store.StepIdle, fresh.Step)
}
